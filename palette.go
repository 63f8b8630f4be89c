package swatch

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/packviz/swatch/internal/mutex"
)

// A Palette memoizes color assignments for one run. The color function is
// cheap and pure, so this is purely an optimization for tables with many
// rows per product, but it also remembers the order in which identifiers
// first appeared, which is the order the augmented mapping is built in.
//
// A Palette is safe for concurrent use.
type Palette struct {
	mu      *mutex.Mutex
	colors  map[string]string
	order   []string
	renders map[string]string
}

func NewPalette() *Palette {
	return &Palette{
		mu:      mutex.New("palette"),
		colors:  map[string]string{},
		renders: map[string]string{},
	}
}

// ColorFor returns the color for id, computing it on first use.
func (p *Palette) ColorFor(id string) string {
	defer p.mu.Lock("ColorFor").Unlock()

	if c, ok := p.colors[id]; ok {
		return c
	}
	c := ColorFor(id)
	p.colors[id] = c
	p.order = append(p.order, id)
	return c
}

// Len reports how many distinct identifiers have been colored.
func (p *Palette) Len() int {
	defer p.mu.Lock("Len").Unlock()

	return len(p.colors)
}

// An Assignment pairs an identifier with its color.
type Assignment struct {
	ID    string
	Color string
}

// Assignments returns every assignment made so far, in order of first
// appearance.
func (p *Palette) Assignments() []Assignment {
	defer p.mu.Lock("Assignments").Unlock()

	out := make([]Assignment, len(p.order))
	for i, id := range p.order {
		out[i] = Assignment{ID: id, Color: p.colors[id]}
	}
	return out
}

// Render returns id styled in its own color for terminal output. On
// terminals without color support it is just id.
func (p *Palette) Render(id string) string {
	color := p.ColorFor(id)

	defer p.mu.Lock("Render").Unlock()

	if out, ok := p.renders[id]; ok {
		return out
	}
	p.renders[id] = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(id)
	return p.renders[id]
}
