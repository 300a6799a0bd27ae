package session

import (
	"github.com/ytget/mesh-designer/internal/export"
	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/palette"
)

// RenderSnapshot is an immutable copy of everything needed to draw the
// mesh. It can be used on any goroutine while the session keeps changing.
type RenderSnapshot struct {
	Revision   uint64
	Name       string
	Grid       *mesh.Grid
	Palette    *palette.Snapshot
	Settings   model.CanvasSettings
	ShowPoints bool
}

// Snapshot captures the current render state
func (s *Session) Snapshot() RenderSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return RenderSnapshot{
		Revision:   s.revision,
		Name:       s.name,
		Grid:       s.grid.Clone(),
		Palette:    s.palette.Snapshot(),
		Settings:   s.settings,
		ShowPoints: s.showPoints,
	}
}

// Field interpolates the snapshot at its resolution
func (r RenderSnapshot) Field() (*interp.Field, error) {
	res := r.Settings.Resolution
	return interp.Interpolate(r.Grid, r.Palette, res, res)
}

// Background resolves the canvas background; NoColor is transparent
func (r RenderSnapshot) Background() model.Color {
	return r.Palette.Resolve(r.Settings.BackgroundColorID)
}

// CanvasSize returns the canvas size in pixels for a view of viewW x viewH.
// Fill dimensions follow the view, Fixed ones use the stored size.
func (r RenderSnapshot) CanvasSize(viewW, viewH int) (int, int) {
	w, h := viewW, viewH
	if r.Settings.WidthMode == model.DimensionFixed && r.Settings.Width > 0 {
		w = r.Settings.Width
	}
	if r.Settings.HeightMode == model.DimensionFixed && r.Settings.Height > 0 {
		h = r.Settings.Height
	}
	return max(w, 1), max(h, 1)
}

// RenderOptions returns the preview options for a canvas of width x height
func (r RenderSnapshot) RenderOptions(width, height int) interp.RenderOptions {
	return interp.RenderOptions{
		Width:      width,
		Height:     height,
		Background: r.Background(),
		BlurLevel:  r.Settings.BlurLevel,
	}
}

// Code renders the grid as source code in the given format
func (r RenderSnapshot) Code(format export.Format) (string, error) {
	return export.Code(export.CodePointsFromGrid(r.Grid, r.Palette), format)
}

// ExportJob prepares a PNG export of the snapshot into dir. viewW and viewH
// are used for dimensions in Fill mode.
func (r RenderSnapshot) ExportJob(dir string, scale, viewW, viewH int) (export.Job, error) {
	f, err := r.Field()
	if err != nil {
		return export.Job{}, err
	}
	w, h := r.CanvasSize(viewW, viewH)
	return export.Job{
		Name:  r.Name,
		Field: f,
		Dir:   dir,
		Options: export.ImageOptions{
			Width:      w,
			Height:     h,
			Scale:      scale,
			Background: r.Background(),
			BlurLevel:  r.Settings.BlurLevel,
			ShowPoints: r.ShowPoints,
		},
	}, nil
}

// Field interpolates the current state
func (s *Session) Field() (*interp.Field, error) {
	return s.Snapshot().Field()
}

// Code renders the current grid as source code
func (s *Session) Code(format export.Format) (string, error) {
	return s.Snapshot().Code(format)
}
