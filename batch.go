package swatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// Pattern matches the result tables the packer writes.
const Pattern = "item_placements_*.csv"

var pattern = glob.MustCompile(Pattern)

// ErrNoResults reports a results directory that is absent or holds no
// matching files. Unlike per-table problems, this one is fatal: there is no
// work to do, and the batch exits nonzero.
var ErrNoResults = errors.New("no results to process")

//go:generate go run golang.org/x/tools/cmd/stringer -type FileStatus -trimprefix Status

// FileStatus is the outcome of one file in a batch.
type FileStatus int

const (
	// StatusAdded files were augmented and written back in place.
	StatusAdded FileStatus = iota
	// StatusExisting files already had a Color column and were left
	// byte-for-byte as they were.
	StatusExisting
	// StatusSkipped files could not be augmented; Err says why.
	StatusSkipped
)

// A FileResult records what the batch did with one file.
type FileResult struct {
	Name    string
	Status  FileStatus
	Summary Summary
	Err     error
}

// IsResultFile reports whether name is a bare filename the packer would
// have written. The CLI and the server share this rule, so what one lists
// is exactly what the other serves.
func IsResultFile(name string) bool {
	return name == filepath.Base(name) && pattern.Match(name)
}

// Matches lists the result tables in dir, sorted by name.
func Matches(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && pattern.Match(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Batch augments every matching table in dir, one at a time, reporting
// progress to out. Per-table problems are reported and skipped; the rest of
// the batch continues. Batch fails only when there is nothing to process at
// all.
func Batch(dir string, out io.Writer) ([]FileResult, error) {
	names, err := Matches(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResults, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoResults, Pattern, dir)
	}

	r := reporter{out}
	r.found(len(names))

	results := make([]FileResult, 0, len(names))
	for _, name := range names {
		r.processing(name)
		results = append(results, processTable(dir, name, r))
		r.blank()
	}
	return results, nil
}

func processTable(dir, name string, r reporter) FileResult {
	path := filepath.Join(dir, name)
	res := FileResult{Name: name}

	skip := func(err error) FileResult {
		res.Status, res.Err = StatusSkipped, err
		r.skipped(name, err)
		return res
	}

	table, err := LoadTable(path)
	if err != nil {
		return skip(err)
	}

	// Each table gets a fresh palette. The color function is what keeps
	// assignments consistent across tables, not shared state.
	palette := NewPalette()
	sum, err := Augment(table, palette)
	if errors.Is(err, ErrAlreadyAugmented) {
		res.Status = StatusExisting
		r.existing(name)
		return res
	} else if err != nil {
		return skip(err)
	}

	if err := table.Save(path); err != nil {
		return skip(err)
	}

	res.Status, res.Summary = StatusAdded, sum
	r.added(path, sum, palette)
	return res
}
