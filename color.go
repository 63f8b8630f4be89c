package swatch

import (
	"fmt"
	"math"
)

// ColorFor assigns a color to a product identifier. The same identifier
// always yields the same color, in any process, with no shared state: the
// browser visualizer runs this exact computation independently, and the two
// must agree bit for bit. Every detail below is observable in the output,
// including the 32-bit overflow and the channel truncation, so none of it
// can change on its own.
//
// An empty identifier is fine; it hashes to zero and gets a color like any
// other.
func ColorFor(id string) string {
	return hslFor(hashString(id)).rgb().hex()
}

// hashString accumulates h = c + (h<<5 - h) over the identifier's code
// points in a 32-bit signed integer. Overflow wraps; negative hashes are
// expected and carried through to the HSL derivation.
func hashString(s string) int32 {
	var h int32
	for _, c := range s {
		h = c + (h<<5 - h)
	}
	return h
}

// hslFor spreads a hash over the color wheel: any hue, saturation 65-84%,
// lightness 55-69%. The shifts are arithmetic shifts of the signed hash,
// and abs comes after the mod and shifts, not before.
func hslFor(h int32) hsl {
	v := int64(h)
	return hsl{
		h: int(abs(v % 360)),
		s: int(65 + abs(v>>8)%20),
		l: int(55 + abs(v>>16)%15),
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

type rgb struct {
	// [0-255]
	r, g, b int
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

type hsl struct {
	// h in [0-359]; s and l are integer percents
	h, s, l int
}

func (c hsl) rgb() rgb {
	chroma := (1 - math.Abs(float64(2*c.l)/100-1)) * float64(c.s) / 100
	x := chroma * (1 - math.Abs(math.Mod(float64(c.h)/60, 2)-1))
	m := float64(c.l)/100 - chroma/2

	var r, g, b float64
	switch {
	case c.h < 60:
		r, g, b = chroma, x, 0
	case c.h < 120:
		r, g, b = x, chroma, 0
	case c.h < 180:
		r, g, b = 0, chroma, x
	case c.h < 240:
		r, g, b = 0, x, chroma
	case c.h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	// Channels truncate toward zero. The visualizer truncates too, so
	// rounding here would disagree with it on roughly half of all colors.
	return rgb{int((r + m) * 255), int((g + m) * 255), int((b + m) * 255)}
}
