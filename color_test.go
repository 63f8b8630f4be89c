package swatch

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestColorFor(t *testing.T) {
	for _, tc := range []struct {
		id       string
		expected string
	}{
		{"", "#D64141"},
		{"1", "#D6BB41"},
		{"2", "#D6BD41"},
		{"10", "#3ADD4D"},
		{"zzzzzz", "#E0E961"},
	} {
		got := ColorFor(tc.id)
		if got != tc.expected {
			t.Errorf(`ColorFor(%q) = %s, want %s`, tc.id, got, tc.expected)
		}
	}
}

func TestHashString(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected int32
	}{
		{"", 0},
		{"1", 49},
		{"10", 1567},
		{"P1", 2529},
		// long enough to wrap negative
		{"zzzzzz", -685785664},
	} {
		if got := hashString(tc.s); got != tc.expected {
			t.Errorf("hashString(%q) = %d, want %d", tc.s, got, tc.expected)
		}
	}
}

func TestHSLFor(t *testing.T) {
	for _, tc := range []struct {
		hash     int32
		expected hsl
	}{
		{0, hsl{0, 65, 55}},
		{49, hsl{49, 65, 55}},
		{1567, hsl{127, 71, 55}},
		{-685785664, hsl{64, 76, 65}},
		{math.MinInt32, hsl{128, 73, 63}},
	} {
		if got := hslFor(tc.hash); got != tc.expected {
			t.Errorf("hslFor(%d) = %+v, want %+v", tc.hash, got, tc.expected)
		}
	}
}

func TestRGB(t *testing.T) {
	for _, tc := range []struct {
		hsl hsl
		rgb rgb
	}{
		{hsl{0, 0, 0}, rgb{0, 0, 0}},
		{hsl{0, 0, 100}, rgb{255, 255, 255}},
		{hsl{49, 65, 55}, rgb{214, 187, 65}},
		{hsl{90, 65, 55}, rgb{140, 214, 65}},
		{hsl{127, 71, 55}, rgb{58, 221, 77}},
		{hsl{180, 65, 55}, rgb{65, 214, 214}},
		{hsl{240, 65, 55}, rgb{65, 65, 214}},
		{hsl{300, 65, 55}, rgb{214, 65, 214}},
		{hsl{64, 76, 65}, rgb{224, 233, 97}},
	} {
		got := tc.hsl.rgb()
		if got != tc.rgb {
			t.Errorf(`rgb(%+v) = %+v, want %+v`, tc.hsl, got, tc.rgb)
		}
	}
}

func TestHex(t *testing.T) {
	for _, tc := range []struct {
		rgb rgb
		hex string
	}{
		{rgb{255, 255, 255}, "#FFFFFF"},
		{rgb{255, 0, 0}, "#FF0000"},
		{rgb{0, 255, 255}, "#00FFFF"},
		{rgb{0, 0, 0}, "#000000"},
		{rgb{214, 187, 65}, "#D6BB41"},
	} {
		got := tc.rgb.hex()
		if got != tc.hex {
			t.Errorf(`hex(%+v) = %s, want %s`, tc.rgb, got, tc.hex)
		}
	}
}

func TestColorProperties(t *testing.T) {
	ids := []string{"", "1", "P1", "widget", "WIDGET", "item-123", "zzzzzz", "日本語", "😀"}
	for i := 0; i < 500; i++ {
		ids = append(ids, strconv.Itoa(i))
	}
	for _, id := range ids {
		c := ColorFor(id)
		if len(c) != 7 || c[0] != '#' {
			t.Fatalf("ColorFor(%q) = %q, want #RRGGBB", id, c)
		}
		if c != strings.ToUpper(c) {
			t.Errorf("ColorFor(%q) = %q, want uppercase hex", id, c)
		}
		if _, err := strconv.ParseUint(c[1:], 16, 32); err != nil {
			t.Errorf("ColorFor(%q) = %q: %s", id, c, err)
		}
		if c != ColorFor(id) {
			t.Errorf("ColorFor(%q) is not deterministic", id)
		}
		v := hslFor(hashString(id))
		if v.h < 0 || v.h > 359 {
			t.Errorf("hue for %q out of range: %d", id, v.h)
		}
		if v.s < 65 || v.s > 84 {
			t.Errorf("saturation for %q out of range: %d", id, v.s)
		}
		if v.l < 55 || v.l > 69 {
			t.Errorf("lightness for %q out of range: %d", id, v.l)
		}
	}
}
