package model

import "errors"

// Error kinds shared by the mesh, palette, interpolation and document layers.
var (
	// ErrIndexOutOfRange is returned when a grid is addressed outside its bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrShapeMismatch is returned when a flat point sequence disagrees with rows*cols.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrPaletteEmpty is returned when a grid must be generated with no colors available.
	ErrPaletteEmpty = errors.New("palette is empty")

	// ErrInsufficientGrid is returned when interpolation is requested on a grid smaller than 2x2.
	ErrInsufficientGrid = errors.New("grid must be at least 2x2")

	// ErrInvalidFormat is returned for malformed hex color strings.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrDanglingColorReference marks a point that references a color no longer in the palette.
	// It is only used for diagnostics: rendering resolves such points to transparent.
	ErrDanglingColorReference = errors.New("dangling color reference")
)
