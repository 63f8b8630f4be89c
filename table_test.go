package swatch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placementsCSV = "ItemId,ProductId,X,Y,Z\n" +
	"1,P1,0,0,0\n" +
	"2,P1,120,0,0\n" +
	"3,P2,0,80,0\n"

func TestReadTable(t *testing.T) {
	table, err := ReadTable(strings.NewReader(placementsCSV))
	require.NoError(t, err)

	assert.Equal(t, Schema{"ItemId", "ProductId", "X", "Y", "Z"}, table.Schema)
	require.Len(t, table.Records, 3)
	assert.Equal(t, Record{"2", "P1", "120", "0", "0"}, table.Records[1])

	id, ok := table.Value(table.Records[2], FieldProductID)
	require.True(t, ok)
	assert.Equal(t, "P2", id)

	_, ok = table.Value(table.Records[0], FieldColor)
	assert.False(t, ok)
}

func TestTableRoundTrip(t *testing.T) {
	table, err := ReadTable(strings.NewReader(placementsCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))
	assert.Equal(t, placementsCSV, buf.String())
}

func TestTableQuoting(t *testing.T) {
	in := "ProductId,Note\n" +
		"P1,\"contains, a comma\"\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Record{"P1", "contains, a comma"}, table.Records[0])

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))
	assert.Equal(t, in, buf.String())
}

func TestReadTableMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"empty":      "",
		"ragged row": "ItemId,ProductId\n1\n",
	} {
		_, err := ReadTable(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformedTable, name)
	}
}

func TestSchemaIndex(t *testing.T) {
	s := Schema{"ItemId", "ProductId", "Color"}
	assert.Equal(t, 1, s.Index(FieldProductID))
	assert.Equal(t, -1, s.Index("productid"))
	assert.True(t, s.Has(FieldColor))
	assert.False(t, s.Has("Missing"))
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "item_placements_1.csv")
	require.NoError(t, os.WriteFile(path, []byte(placementsCSV), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.NoError(t, table.Save(path))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, placementsCSV, string(bs))

	_, err = LoadTable(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
