package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/mesh-designer/internal/model"
)

// viewport maps unit-square mesh coordinates onto the part of the canvas
// widget the gradient occupies
type viewport struct {
	origin fyne.Position
	size   fyne.Size
}

// fitViewport centers a canvasW x canvasH gradient inside area, shrinking
// it to fit while keeping its aspect ratio
func fitViewport(area fyne.Size, canvasW, canvasH float32) viewport {
	if canvasW <= 0 || canvasH <= 0 || area.Width <= 0 || area.Height <= 0 {
		return viewport{size: area}
	}
	scale := min(area.Width/canvasW, area.Height/canvasH, 1)
	size := fyne.NewSize(canvasW*scale, canvasH*scale)
	return viewport{
		origin: fyne.NewPos((area.Width-size.Width)/2, (area.Height-size.Height)/2),
		size:   size,
	}
}

// toCanvas returns the widget position of a mesh position
func (v viewport) toCanvas(p model.Position) fyne.Position {
	return fyne.NewPos(
		v.origin.X+float32(p.X)*v.size.Width,
		v.origin.Y+float32(p.Y)*v.size.Height,
	)
}

// toMesh returns the mesh position under a widget position, unclamped
func (v viewport) toMesh(p fyne.Position) model.Position {
	if v.size.Width <= 0 || v.size.Height <= 0 {
		return model.Position{}
	}
	return model.Position{
		X: float64((p.X - v.origin.X) / v.size.Width),
		Y: float64((p.Y - v.origin.Y) / v.size.Height),
	}
}

// hitTest returns the control point closest to at within radius pixels
func hitTest(points []model.ControlPoint, v viewport, at fyne.Position, radius float32) (model.ControlPoint, bool) {
	var (
		best  model.ControlPoint
		found bool
		bestD = radius * radius
	)
	for _, p := range points {
		c := v.toCanvas(p.Position())
		dx, dy := c.X-at.X, c.Y-at.Y
		if d := dx*dx + dy*dy; d <= bestD {
			best, bestD, found = p, d, true
		}
	}
	return best, found
}

// dragState tracks the handle being dragged by mouse or touch. A gesture
// that did not start on a handle is missed and never picks one up later.
type dragState struct {
	active   bool
	missed   bool
	row, col int
}

func (d *dragState) start(row, col int) {
	d.active = true
	d.row, d.col = row, col
}

func (d *dragState) miss() {
	d.missed = true
}

// stop ends the gesture and reports whether a handle was being dragged
func (d *dragState) stop() bool {
	was := d.active
	d.active = false
	d.missed = false
	return was
}
