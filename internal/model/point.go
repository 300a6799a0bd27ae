package model

// Position is a location normalized to the canvas unit square.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ControlPoint is a colored vertex of the mesh grid.
type ControlPoint struct {
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	ColorID ColorID `json:"colorId"`
}

// Position returns the point's normalized location.
func (p ControlPoint) Position() Position {
	return Position{X: p.X, Y: p.Y}
}

// WithPosition returns a copy of p moved to pos.
func (p ControlPoint) WithPosition(pos Position) ControlPoint {
	p.X, p.Y = pos.X, pos.Y
	return p
}

// HasColor reports whether the point references a palette color.
func (p ControlPoint) HasColor() bool {
	return p.ColorID != NoColor
}

// Clamp01 returns pos with both coordinates clamped to [0, 1].
func (pos Position) Clamp01() Position {
	return Position{X: clamp01(pos.X), Y: clamp01(pos.Y)}
}

// Add returns pos translated by (dx, dy).
func (pos Position) Add(dx, dy float64) Position {
	return Position{X: pos.X + dx, Y: pos.Y + dy}
}
