package swatch

import (
	"errors"
	"fmt"
)

// ErrAlreadyAugmented reports a table that already has a Color field. The
// table is left exactly as it was; augmenting twice never duplicates the
// column or rewrites the file.
var ErrAlreadyAugmented = errors.New("color column already present")

// Summary describes one table's augmentation.
type Summary struct {
	Rows     int
	Products int
}

// Augment appends a Color field to every record of t, assigning each
// distinct ProductId its color through p. Field order, row order, and every
// existing value are untouched; the only change is the trailing Color.
//
// The mapping is complete before any row is extended, so every row observes
// the same assignment regardless of where it sits in the table.
func Augment(t *Table, p *Palette) (Summary, error) {
	if t.Schema.Has(FieldColor) {
		return Summary{}, ErrAlreadyAugmented
	}
	idx := t.Schema.Index(FieldProductID)
	if idx < 0 {
		return Summary{}, fmt.Errorf("%w: no %s field", ErrMalformedTable, FieldProductID)
	}
	if len(t.Records) == 0 {
		return Summary{}, fmt.Errorf("%w: no rows", ErrMalformedTable)
	}

	seen := map[string]struct{}{}
	for i, rec := range t.Records {
		if idx >= len(rec) {
			return Summary{}, fmt.Errorf("%w: row %d has no %s", ErrMalformedTable, i+1, FieldProductID)
		}
		p.ColorFor(rec[idx])
		seen[rec[idx]] = struct{}{}
	}

	t.Schema = append(t.Schema, FieldColor)
	for i, rec := range t.Records {
		t.Records[i] = append(rec, p.ColorFor(rec[idx]))
	}

	return Summary{Rows: len(t.Records), Products: len(seen)}, nil
}
