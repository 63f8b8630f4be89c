// Package fixtures builds throwaway results directories for tests.
package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

// PlacementsCSV is a small un-augmented result table.
const PlacementsCSV = "ItemId,ProductId,X,Y,Z\n" +
	"1,P1,0,0,0\n" +
	"2,P1,120,0,0\n" +
	"3,P2,0,80,0\n"

// AugmentedCSV is PlacementsCSV after a Color column has been added.
const AugmentedCSV = "ItemId,ProductId,X,Y,Z,Color\n" +
	"1,P1,0,0,0,#E15037\n" +
	"2,P1,120,0,0,#E15037\n" +
	"3,P2,0,80,0,#E15337\n"

// ResultsDir creates a temp directory holding the given files and returns
// its path. The directory is cleaned up with the test.
func ResultsDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
