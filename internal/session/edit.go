package session

import (
	"errors"
	"fmt"

	"github.com/ytget/mesh-designer/internal/history"
	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
)

var (
	// ErrLastColor is returned when removing the only color left in the palette
	ErrLastColor = errors.New("cannot remove the last color")

	// ErrUnknownColor is returned for ids that are not in the palette
	ErrUnknownColor = errors.New("unknown color")
)

// mutate applies fn to copies of the grid and settings. Only when fn
// succeeds is the previous state recorded for undo (if record is set) and
// the copies installed; on error nothing changes.
func (s *Session) mutate(record bool, fn func(g *mesh.Grid, st *model.CanvasSettings) error) error {
	s.mu.Lock()
	g := s.grid.Clone()
	st := s.settings
	if err := fn(g, &st); err != nil {
		s.mu.Unlock()
		return err
	}
	if record {
		s.history.Push(s.snapshotLocked())
	}
	s.grid = g
	s.settings = st
	s.dirty = true
	s.revision++
	s.mu.Unlock()

	s.changed()
	return nil
}

func (s *Session) snapshotLocked() history.Snapshot {
	return history.Snapshot{
		Rows:     s.grid.Rows(),
		Cols:     s.grid.Cols(),
		Points:   s.grid.Flatten(),
		Settings: s.settings,
	}
}

// SetRows regenerates the grid with the given number of rows, clamped to
// [MinGridSize, MaxGridSize]. Point positions are reset to the lattice.
func (s *Session) SetRows(rows int) error {
	return s.resize(rows, -1)
}

// SetCols regenerates the grid with the given number of columns
func (s *Session) SetCols(cols int) error {
	return s.resize(-1, cols)
}

func (s *Session) resize(rows, cols int) error {
	colors := s.palette.IDs()
	return s.mutateIfChanged(func(g *mesh.Grid, st *model.CanvasSettings) (bool, error) {
		if rows < 0 {
			rows = g.Rows()
		}
		if cols < 0 {
			cols = g.Cols()
		}
		rows, cols = model.ClampGridSize(rows), model.ClampGridSize(cols)
		if rows == g.Rows() && cols == g.Cols() {
			return false, nil
		}
		if err := g.Resize(rows, cols, colors); err != nil {
			return false, err
		}
		st.Rows, st.Cols = g.Rows(), g.Cols()
		return true, nil
	})
}

var errUnchanged = errors.New("unchanged")

// mutateIfChanged is mutate for edits that may turn out to be no-ops
func (s *Session) mutateIfChanged(fn func(g *mesh.Grid, st *model.CanvasSettings) (bool, error)) error {
	err := s.mutate(true, func(g *mesh.Grid, st *model.CanvasSettings) error {
		changed, err := fn(g, st)
		if err != nil {
			return err
		}
		if !changed {
			return errUnchanged
		}
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	return err
}

// UpdatePoint moves a control point, keeping its color. The position is
// clamped to the unit square and, with edge constraints on, boundary points
// stay on their edge. saveForUndo is false for the intermediate steps of a
// drag started with BeginDrag.
func (s *Session) UpdatePoint(row, col int, pos model.Position, saveForUndo bool) error {
	constrain := s.ConstrainEdges()
	return s.mutate(saveForUndo, func(g *mesh.Grid, _ *model.CanvasSettings) error {
		p, err := g.Point(row, col)
		if err != nil {
			return err
		}
		return g.UpdatePoint(row, col, pos.Clamp01(), p.ColorID, constrain)
	})
}

// BeginDrag records a single undo step for the drag that follows
func (s *Session) BeginDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragging {
		return
	}
	s.history.Push(s.snapshotLocked())
	s.dragging = true
}

// DragPoint moves a point during a drag without recording undo steps
func (s *Session) DragPoint(row, col int, pos model.Position) error {
	return s.UpdatePoint(row, col, pos, false)
}

// EndDrag finishes the current drag
func (s *Session) EndDrag() {
	s.mu.Lock()
	s.dragging = false
	s.mu.Unlock()
}

// SetPointColor assigns a palette color to a control point
func (s *Session) SetPointColor(row, col int, id model.ColorID) error {
	if id != model.NoColor && !s.palette.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownColor, id)
	}
	return s.mutate(true, func(g *mesh.Grid, _ *model.CanvasSettings) error {
		p, err := g.Point(row, col)
		if err != nil {
			return err
		}
		return g.UpdatePoint(row, col, p.Position(), id, false)
	})
}

// DistributeEvenly moves every point back onto the lattice
func (s *Session) DistributeEvenly() {
	_ = s.mutate(true, func(g *mesh.Grid, _ *model.CanvasSettings) error {
		g.DistributeEvenly()
		return nil
	})
}

// SetResolution sets the number of subdivisions per patch, clamped to [1, 64]
func (s *Session) SetResolution(res int) {
	_ = s.mutateIfChanged(func(_ *mesh.Grid, st *model.CanvasSettings) (bool, error) {
		res = max(model.MinResolution, min(res, model.MaxResolution))
		if res == st.Resolution {
			return false, nil
		}
		st.Resolution = res
		return true, nil
	})
}

// SetBlurLevel sets the blur radius, clamped to [0, 40]
func (s *Session) SetBlurLevel(level float64) {
	_ = s.mutateIfChanged(func(_ *mesh.Grid, st *model.CanvasSettings) (bool, error) {
		level = model.ClampBlur(level)
		if level == st.BlurLevel {
			return false, nil
		}
		st.BlurLevel = level
		return true, nil
	})
}

// SetBackground sets the canvas background color; NoColor means transparent
func (s *Session) SetBackground(id model.ColorID) error {
	if id != model.NoColor && !s.palette.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownColor, id)
	}
	return s.mutateIfChanged(func(_ *mesh.Grid, st *model.CanvasSettings) (bool, error) {
		if st.BackgroundColorID == id {
			return false, nil
		}
		st.BackgroundColorID = id
		return true, nil
	})
}

// SetCanvasSize sets the fixed canvas dimensions used in Fixed mode
func (s *Session) SetCanvasSize(width, height int) {
	_ = s.mutateIfChanged(func(_ *mesh.Grid, st *model.CanvasSettings) (bool, error) {
		width, height = max(width, 0), max(height, 0)
		if st.Width == width && st.Height == height {
			return false, nil
		}
		st.Width, st.Height = width, height
		return true, nil
	})
}

// ToggleWidthMode switches the width between Fill and Fixed
func (s *Session) ToggleWidthMode() {
	_ = s.mutate(true, func(_ *mesh.Grid, st *model.CanvasSettings) error {
		st.WidthMode = st.WidthMode.Toggle()
		return nil
	})
}

// ToggleHeightMode switches the height between Fill and Fixed
func (s *Session) ToggleHeightMode() {
	_ = s.mutate(true, func(_ *mesh.Grid, st *model.CanvasSettings) error {
		st.HeightMode = st.HeightMode.Toggle()
		return nil
	})
}

// Reset restores the starter mesh and default canvas settings
func (s *Session) Reset() {
	_ = s.mutate(true, func(g *mesh.Grid, st *model.CanvasSettings) error {
		*g = *mesh.Default()
		*st = model.DefaultCanvasSettings()
		return nil
	})
}

// AddColor stores a new palette color and returns its id. Palette changes
// are not part of the undo history.
func (s *Session) AddColor(c model.PaletteColor) model.ColorID {
	id := s.palette.Add(c)
	s.paletteChanged()
	return id
}

// UpdateColor changes the components of an existing palette color. Points
// keep referencing it by id, so they pick up the new color.
func (s *Session) UpdateColor(id model.ColorID, c model.PaletteColor) error {
	if !s.palette.Update(id, c) {
		return fmt.Errorf("%w: %d", ErrUnknownColor, id)
	}
	s.paletteChanged()
	return nil
}

// RemoveColor deletes a palette color. Points and the background that
// referenced it are switched to NoColor first, as one undoable step. The
// last remaining color cannot be removed.
func (s *Session) RemoveColor(id model.ColorID) error {
	if !s.palette.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownColor, id)
	}
	if s.palette.Len() <= 1 {
		return ErrLastColor
	}

	err := s.mutate(true, func(g *mesh.Grid, st *model.CanvasSettings) error {
		g.RemoveColorReferences(id)
		if st.BackgroundColorID == id {
			st.BackgroundColorID = model.NoColor
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.palette.Remove(id)
	s.paletteChanged()
	return nil
}

func (s *Session) paletteChanged() {
	s.mu.Lock()
	s.revision++
	store := s.store
	s.mu.Unlock()

	if store != nil {
		if err := store.Save(s.palette); err != nil {
			s.fail("Failed to save palette", err)
		}
	}
	s.changed()
}

// Undo restores the state before the last recorded edit
func (s *Session) Undo() bool {
	return s.step(s.history.Undo)
}

// Redo re-applies the last undone edit
func (s *Session) Redo() bool {
	return s.step(s.history.Redo)
}

func (s *Session) step(pop func(history.Snapshot) (history.Snapshot, bool)) bool {
	s.mu.Lock()
	target, ok := pop(s.snapshotLocked())
	if !ok {
		s.mu.Unlock()
		return false
	}
	g, err := mesh.FromFlat(target.Points, target.Rows, target.Cols)
	if err != nil {
		// snapshots are always taken from valid grids
		s.mu.Unlock()
		panic(fmt.Sprintf("session: corrupt history snapshot: %v", err))
	}
	s.grid = g
	s.settings = target.Settings
	s.dirty = true
	s.dragging = false
	s.revision++
	s.mu.Unlock()

	s.changed()
	return true
}
