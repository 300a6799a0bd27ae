package model

import (
	"image/color"
	"math"
)

// ColorID is an opaque palette color identifier referenced by control points.
type ColorID int64

// NoColor is the sentinel reference meaning "no color assigned"; it resolves to Transparent.
const NoColor ColorID = -1

// Color is a straight-alpha color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is the color every unknown or NoColor reference resolves to.
var Transparent = Color{}

// PaletteColor is a color stored in the palette.
type PaletteColor struct {
	ID     ColorID `json:"id" toml:"id"`
	Red    uint8   `json:"red" toml:"red"`
	Green  uint8   `json:"green" toml:"green"`
	Blue   uint8   `json:"blue" toml:"blue"`
	Alpha  float64 `json:"alpha" toml:"alpha"`
	Preset bool    `json:"preset" toml:"preset"`
}

// NewPaletteColor creates an opaque, non-preset color with no id assigned yet.
func NewPaletteColor(r, g, b uint8) PaletteColor {
	return PaletteColor{ID: NoColor, Red: r, Green: g, Blue: b, Alpha: 1}
}

// RGBA converts the palette color to a float color.
func (pc PaletteColor) RGBA() Color {
	return Color{
		R: float64(pc.Red) / 255,
		G: float64(pc.Green) / 255,
		B: float64(pc.Blue) / 255,
		A: clamp01(pc.Alpha),
	}
}

// Hex returns the color as RRGGBB or, with includeAlpha, AARRGGBB.
func (pc PaletteColor) Hex(includeAlpha bool) string {
	return FormatHex(pc, includeAlpha)
}

// NRGBA converts the color to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Lerp interpolates component-wise between c and o, alpha included.
// Lerp(o, 0) is exactly c and Lerp(o, 1) is exactly o.
func (c Color) Lerp(o Color, t float64) Color {
	u := 1 - t
	return Color{
		R: c.R*u + o.R*t,
		G: c.G*u + o.G*t,
		B: c.B*u + o.B*t,
		A: c.A*u + o.A*t,
	}
}

// Over composites c over dst using source-over with straight alpha.
func (c Color) Over(dst Color) Color {
	a := c.A + dst.A*(1-c.A)
	if a <= 0 {
		return Transparent
	}
	blend := func(s, d float64) float64 {
		return (s*c.A + d*dst.A*(1-c.A)) / a
	}
	return Color{R: blend(c.R, dst.R), G: blend(c.G, dst.G), B: blend(c.B, dst.B), A: a}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
