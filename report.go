package swatch

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// reporter prints batch progress. The text matches what the packing scripts
// have always printed; color is layered on only where the terminal supports
// it, so piped output is the familiar plain text.
type reporter struct {
	out io.Writer
}

func (r reporter) found(n int) {
	fmt.Fprintf(r.out, "Found %d file(s) to process:\n\n", n)
}

func (r reporter) processing(name string) {
	tinted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFor(name))).Render(name)
	fmt.Fprintf(r.out, "Processing: %s\n", tinted)
}

func (r reporter) added(path string, sum Summary, p *Palette) {
	fmt.Fprintf(r.out, "[OK] Added colors to %s\n", path)
	fmt.Fprintf(r.out, "  - %d items\n", sum.Rows)
	fmt.Fprintf(r.out, "  - %d unique ProductIds\n", sum.Products)

	assignments := p.Assignments()
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID < assignments[j].ID })
	for _, a := range assignments {
		fmt.Fprintf(r.out, "    ProductId %s: %s\n", p.Render(a.ID), swatchCell(a.Color))
	}
}

func (r reporter) existing(path string) {
	fmt.Fprintf(r.out, "Color column already exists in %s\n", path)
}

func (r reporter) skipped(path string, err error) {
	fmt.Fprintf(r.out, "Skipping %s: %v\n", path, err)
}

func (r reporter) blank() {
	fmt.Fprintln(r.out)
}

// swatchCell renders a color value in itself.
func swatchCell(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(color)
}
