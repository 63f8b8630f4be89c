package swatch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packviz/swatch/internal/fixtures"
	"github.com/packviz/swatch/internal/safebuffer"
	"github.com/packviz/swatch/internal/seq"
	"github.com/packviz/swatch/internal/watcher"
)

func TestWatch(t *testing.T) {
	watcher.Mock()
	defer watcher.Unmock()

	dir := fixtures.ResultsDir(t, map[string]string{
		"item_placements_1.csv": fixtures.PlacementsCSV,
	})
	watchPath := filepath.Join(dir, Pattern)

	buf := safebuffer.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error)
	go func() { done <- Watch(ctx, dir, buf) }()

	// Dispatch blocks until Watch is back in its select, so the initial
	// pass is complete by the time it returns.
	watcher.Dispatch(watchPath)

	// The second pass finds the Color column we just wrote and skips.
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Color column already exists in item_placements_1.csv")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	bs, err := os.ReadFile(filepath.Join(dir, "item_placements_1.csv"))
	require.NoError(t, err)
	assert.Equal(t, fixtures.AugmentedCSV, string(bs))

	seq.AssertStringContainsSequence(t, buf.String(),
		"Processing: item_placements_1.csv",
		"  - 2 unique ProductIds",
		"Changed: "+watchPath,
		"Processing: item_placements_1.csv",
		"Color column already exists in item_placements_1.csv",
	)
}

func TestWatchNoResults(t *testing.T) {
	watcher.Mock()
	defer watcher.Unmock()

	buf := safebuffer.New()
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "Results"), buf)
	assert.ErrorIs(t, err, ErrNoResults, "the initial pass still requires work to do")
}
