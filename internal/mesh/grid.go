package mesh

import (
	"fmt"

	"github.com/ytget/mesh-designer/internal/model"
)

// Grid is an R x C array of control points addressed by (row, col).
// Every stored point carries its own address in Row/Col.
type Grid struct {
	rows   int
	cols   int
	points []model.ControlPoint
}

// New builds a rows x cols grid on the evenly spaced lattice, assigning
// colors[row % len(colors)] to every point of a row.
func New(rows, cols int, colors []model.ColorID) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: cannot build %dx%d grid", model.ErrInsufficientGrid, rows, cols)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("cannot build %dx%d grid: %w", rows, cols, model.ErrPaletteEmpty)
	}

	g := &Grid{rows: rows, cols: cols, points: make([]model.ControlPoint, rows*cols)}
	for row := 0; row < rows; row++ {
		colorID := colors[row%len(colors)]
		for col := 0; col < cols; col++ {
			pos := LatticePosition(row, col, rows, cols)
			g.points[row*cols+col] = model.ControlPoint{
				Row:     row,
				Col:     col,
				X:       pos.X,
				Y:       pos.Y,
				ColorID: colorID,
			}
		}
	}
	return g, nil
}

// Default returns the starter mesh: a 3x4 grid whose middle row bows downward.
func Default() *Grid {
	rows := [][]model.Position{
		{{X: 0, Y: 0}, {X: .33, Y: 0}, {X: .67, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: .4}, {X: .33, Y: .8}, {X: .67, Y: .8}, {X: 1, Y: .4}},
		{{X: 0, Y: 1}, {X: .33, Y: 1}, {X: .67, Y: 1}, {X: 1, Y: 1}},
	}
	colors := []model.ColorID{1, 2, 3}

	g := &Grid{rows: len(rows), cols: len(rows[0])}
	for row, positions := range rows {
		for col, pos := range positions {
			g.points = append(g.points, model.ControlPoint{
				Row:     row,
				Col:     col,
				X:       pos.X,
				Y:       pos.Y,
				ColorID: colors[row],
			})
		}
	}
	return g
}

// LatticePosition returns the evenly spaced position of (row, col) in a rows x cols grid.
// A single row or column is placed at 0.
func LatticePosition(row, col, rows, cols int) model.Position {
	return model.Position{X: latticeCoord(col, cols), Y: latticeCoord(row, rows)}
}

func latticeCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of control points
func (g *Grid) Len() int { return len(g.points) }

// Point returns the control point at (row, col)
func (g *Grid) Point(row, col int) (model.ControlPoint, error) {
	if err := g.checkIndex(row, col); err != nil {
		return model.ControlPoint{}, err
	}
	return g.points[row*g.cols+col], nil
}

// At returns the control point at (row, col) without bounds reporting.
// Indices outside the grid are clamped to the nearest edge point.
func (g *Grid) At(row, col int) model.ControlPoint {
	row = clamp(row, 0, g.rows-1)
	col = clamp(col, 0, g.cols-1)
	return g.points[row*g.cols+col]
}

// Resize clamps rows and cols to the editor bounds and regenerates the lattice
// from scratch. Previous positions are discarded; colors cycle by row index.
func (g *Grid) Resize(rows, cols int, colors []model.ColorID) error {
	rows = model.ClampGridSize(rows)
	cols = model.ClampGridSize(cols)

	fresh, err := New(rows, cols, colors)
	if err != nil {
		return fmt.Errorf("resize to %dx%d: %w", rows, cols, err)
	}
	*g = *fresh
	return nil
}

// UpdatePoint replaces the point at (row, col). With constrainEdges set,
// boundary columns are pinned to x=0/x=1 and boundary rows to y=0/y=1;
// every other coordinate passes through unmodified.
func (g *Grid) UpdatePoint(row, col int, pos model.Position, colorID model.ColorID, constrainEdges bool) error {
	if err := g.checkIndex(row, col); err != nil {
		return err
	}

	if constrainEdges {
		pos = ConstrainEdge(row, col, g.rows, g.cols, pos)
	}

	p := model.ControlPoint{Row: row, Col: col, ColorID: colorID}
	g.points[row*g.cols+col] = p.WithPosition(pos)
	return nil
}

// ConstrainEdge pins a boundary point of a rows x cols grid to the canvas edge.
func ConstrainEdge(row, col, rows, cols int, pos model.Position) model.Position {
	switch col {
	case 0:
		pos.X = 0
	case cols - 1:
		pos.X = 1
	}
	switch row {
	case 0:
		pos.Y = 0
	case rows - 1:
		pos.Y = 1
	}
	return pos
}

// DistributeEvenly moves every point back to its lattice position, keeping colors.
func (g *Grid) DistributeEvenly() {
	for i := range g.points {
		p := &g.points[i]
		pos := LatticePosition(p.Row, p.Col, g.rows, g.cols)
		p.X, p.Y = pos.X, pos.Y
	}
}

// RemoveColorReferences sets every point referencing id to the NoColor sentinel
// and returns how many points changed. The grid shape is never altered.
func (g *Grid) RemoveColorReferences(id model.ColorID) int {
	return g.ReplaceColorReferences(id, model.NoColor)
}

// ReplaceColorReferences points every reference to from at to instead.
func (g *Grid) ReplaceColorReferences(from, to model.ColorID) int {
	changed := 0
	for i := range g.points {
		if g.points[i].ColorID == from {
			g.points[i].ColorID = to
			changed++
		}
	}
	return changed
}

// ColorIDs returns the distinct color references in row-major first-use order.
func (g *Grid) ColorIDs() []model.ColorID {
	seen := make(map[model.ColorID]bool)
	var ids []model.ColorID
	for _, p := range g.points {
		if !seen[p.ColorID] {
			seen[p.ColorID] = true
			ids = append(ids, p.ColorID)
		}
	}
	return ids
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	points := make([]model.ControlPoint, len(g.points))
	copy(points, g.points)
	return &Grid{rows: g.rows, cols: g.cols, points: points}
}

// Equal reports whether both grids have the same shape and points
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.points {
		if g.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// RowPoints returns a copy of one row of points
func (g *Grid) RowPoints(row int) ([]model.ControlPoint, error) {
	if row < 0 || row >= g.rows {
		return nil, fmt.Errorf("%w: row %d of %d", model.ErrIndexOutOfRange, row, g.rows)
	}
	out := make([]model.ControlPoint, g.cols)
	copy(out, g.points[row*g.cols:(row+1)*g.cols])
	return out, nil
}

func (g *Grid) checkIndex(row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", model.ErrIndexOutOfRange, row, col, g.rows, g.cols)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
