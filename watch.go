package swatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/packviz/swatch/internal/watcher"
)

// Watch runs one batch pass over dir, then keeps re-running the batch as
// matching files appear or change, until ctx is canceled. Because
// augmentation is idempotent, the rewrite loop is safe: the events our own
// writes generate find the Color column already present and skip.
func Watch(ctx context.Context, dir string, out io.Writer) error {
	events, stop, err := watcher.Watch(filepath.Join(dir, Pattern))
	if err != nil {
		return err
	}
	defer stop()

	if _, err := Batch(dir, out); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evs, ok := <-events:
			if !ok {
				return nil
			}
			for _, ev := range evs {
				fmt.Fprintf(out, "Changed: %s\n", ev.Path)
			}
			// Files can disappear between passes; an empty
			// directory just means nothing to do right now.
			if _, err := Batch(dir, out); err != nil && !errors.Is(err, ErrNoResults) {
				return err
			}
		}
	}
}
