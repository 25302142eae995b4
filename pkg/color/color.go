// Package color provides the RGBA color value used by scene documents and
// its canonical hex form.
//
// The wire form is #AARRGGBB, uppercase. The target format's own documents
// use ARGB ordering, so that is the single canonical ordering here.
package color

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// New clamps each component into [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b), A: clamp(a)}
}

// RGB is New with full opacity.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// FromInt builds a Color from 8-bit components.
func FromInt(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromHex parses "#RRGGBB" or "#RRGGBBAA", with or without the leading '#'.
func FromHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
	var comps [4]uint8
	comps[3] = 0xFF
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		comps[i] = uint8(v)
	}
	return FromInt(comps[0], comps[1], comps[2], comps[3]), nil
}

// MustHex is FromHex that panics on error. Intended for color constants.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Random returns a random opaque color. Useful for quick mockups.
func Random() Color {
	return RGB(rand.Float64(), rand.Float64(), rand.Float64())
}

// WithAlpha returns the color with a replaced alpha component.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp(a)
	return c
}

// String returns the canonical wire form #AARRGGBB, uppercase.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", byteOf(c.A), byteOf(c.R), byteOf(c.G), byteOf(c.B))
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func byteOf(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Named presets.
var (
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	White       = RGB(1, 1, 1)
	Black       = RGB(0, 0, 0)
	Transparent = New(0, 0, 0, 0)
	Lime        = RGB(0, 1, 0)
	Salmon      = RGB(0.98, 0.5, 0.45)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Navy        = RGB(0, 0, 0.5)
	Olive       = RGB(0.5, 0.5, 0)
	Teal        = RGB(0, 0.5, 0.5)
	Maroon      = RGB(0.5, 0, 0)
	Purple      = RGB(0.5, 0, 0.5)
	Gray        = RGB(0.5, 0.5, 0.5)
	Silver      = RGB(0.75, 0.75, 0.75)
	Orange      = RGB(1, 0.65, 0)
	Brown       = RGB(0.65, 0.16, 0.16)
	Pink        = RGB(1, 0.75, 0.8)
	Gold        = RGB(1, 0.84, 0)
)
