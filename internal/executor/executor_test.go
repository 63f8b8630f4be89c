package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packviz/swatch/internal/executor"
)

func TestExecutor(t *testing.T) {
	t.Run("execute and wait", func(t *testing.T) {
		w := executor.New(func(ctx context.Context) error { return nil })
		w.Execute()
		assert.NoError(t, <-w.Wait())
		assert.True(t, w.IsDone())
	})

	t.Run("error reaches every waiter", func(t *testing.T) {
		boom := errors.New("boom")
		w := executor.New(func(ctx context.Context) error { return boom })
		a, b := w.Wait(), w.Wait()
		w.Execute()
		assert.ErrorIs(t, <-a, boom)
		assert.ErrorIs(t, <-b, boom)
	})

	t.Run("wait after exit", func(t *testing.T) {
		w := executor.New(func(ctx context.Context) error { return nil })
		w.Execute()
		assert.NoError(t, <-w.Wait())
		assert.NoError(t, <-w.Wait())
	})

	t.Run("cancel", func(t *testing.T) {
		started := make(chan struct{})
		w := executor.New(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
		w.Execute()
		<-started
		assert.ErrorIs(t, w.Cancel(), context.Canceled)
		assert.True(t, w.IsDone())
	})

	t.Run("is", func(t *testing.T) {
		a := executor.New(func(ctx context.Context) error { return nil })
		b := executor.New(func(ctx context.Context) error { return nil })
		assert.True(t, a.Is(a))
		assert.False(t, a.Is(b))
	})
}
