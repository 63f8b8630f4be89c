package swatch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Field names every results table is expected to carry.
const (
	FieldProductID = "ProductId"
	FieldColor     = "Color"
)

// ErrMalformedTable reports a table the pipeline cannot augment: no header,
// no rows, a missing ProductId field, or rows that do not line up with the
// schema. Malformed tables are skipped; the rest of the batch continues.
var ErrMalformedTable = errors.New("malformed table")

// Schema is the ordered set of field names shared by every Record in a
// Table.
type Schema []string

// Index returns the position of the named field, or -1.
func (s Schema) Index(name string) int {
	for i, f := range s {
		if f == name {
			return i
		}
	}
	return -1
}

func (s Schema) Has(name string) bool { return s.Index(name) >= 0 }

// Record is one row of a Table. Values are positional; the Table's Schema
// names them.
type Record []string

// Table is an ordered sequence of Records sharing one Schema. Augmentation
// preserves both orders: fields stay where the packer wrote them, and so do
// rows.
type Table struct {
	Schema  Schema
	Records []Record
}

// Value returns rec's value for the named field.
func (t *Table) Value(rec Record, name string) (string, bool) {
	i := t.Schema.Index(name)
	if i < 0 || i >= len(rec) {
		return "", false
	}
	return rec[i], true
}

// ReadTable parses a comma-delimited UTF-8 table whose first line names the
// fields.
func ReadTable(r io.Reader) (*Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no header", ErrMalformedTable)
	}
	t := &Table{Schema: Schema(rows[0]), Records: make([]Record, len(rows)-1)}
	for i, row := range rows[1:] {
		t.Records[i] = Record(row)
	}
	return t, nil
}

// Write writes the table out, header first, one line per record.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Schema); err != nil {
		return err
	}
	for _, rec := range t.Records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadTable reads the table stored at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// Save writes the table to path, replacing whatever was there.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
