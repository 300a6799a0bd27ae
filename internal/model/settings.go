package model

import (
	"fmt"
	"strings"
)

// Editor bounds
const (
	MinGridSize       = 2
	MaxGridSize       = 10
	DefaultRows       = 3
	DefaultCols       = 4
	DefaultResolution = 10
	MinResolution     = 1
	MaxResolution     = 64
	MaxBlurLevel      = 40
)

// DimensionMode tells whether a canvas dimension is fixed or fills the window
type DimensionMode int

const (
	DimensionFill DimensionMode = iota
	DimensionFixed
)

// String returns the serialized name of the mode
func (m DimensionMode) String() string {
	switch m {
	case DimensionFixed:
		return "Fixed"
	default:
		return "Fill"
	}
}

// Toggle returns the other mode
func (m DimensionMode) Toggle() DimensionMode {
	if m == DimensionFixed {
		return DimensionFill
	}
	return DimensionFixed
}

// MarshalText implements encoding.TextMarshaler
func (m DimensionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *DimensionMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "fill", "":
		*m = DimensionFill
	case "fixed":
		*m = DimensionFixed
	default:
		return fmt.Errorf("unknown dimension mode: %q", text)
	}
	return nil
}

// CanvasSettings holds the per-document canvas and grid configuration
type CanvasSettings struct {
	WidthMode         DimensionMode `json:"widthMode"`
	Width             int           `json:"width"`
	HeightMode        DimensionMode `json:"heightMode"`
	Height            int           `json:"height"`
	Resolution        int           `json:"resolution"`
	BlurLevel         float64       `json:"blurLevel"`
	Rows              int           `json:"rows"`
	Cols              int           `json:"cols"`
	BackgroundColorID ColorID       `json:"backgroundColorId"`
}

// DefaultCanvasSettings returns the settings of a new document
func DefaultCanvasSettings() CanvasSettings {
	return CanvasSettings{
		WidthMode:         DimensionFill,
		HeightMode:        DimensionFill,
		Resolution:        DefaultResolution,
		Rows:              DefaultRows,
		Cols:              DefaultCols,
		BackgroundColorID: NoColor,
	}
}

// Normalize returns a copy with every field clamped to its editor bounds
func (s CanvasSettings) Normalize() CanvasSettings {
	s.Rows = ClampGridSize(s.Rows)
	s.Cols = ClampGridSize(s.Cols)
	s.Resolution = clampInt(s.Resolution, MinResolution, MaxResolution)
	s.BlurLevel = ClampBlur(s.BlurLevel)
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// ClampGridSize clamps a row or column count to [MinGridSize, MaxGridSize]
func ClampGridSize(n int) int {
	return clampInt(n, MinGridSize, MaxGridSize)
}

// ClampBlur clamps a blur level to [0, MaxBlurLevel]
func ClampBlur(level float64) float64 {
	if level < 0 || level != level {
		return 0
	}
	if level > MaxBlurLevel {
		return MaxBlurLevel
	}
	return level
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
