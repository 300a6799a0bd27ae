package mesh

import (
	"fmt"

	"github.com/ytget/mesh-designer/internal/model"
)

// Flatten returns the points in row-major order: index = row*cols + col.
func (g *Grid) Flatten() []model.ControlPoint {
	out := make([]model.ControlPoint, len(g.points))
	copy(out, g.points)
	return out
}

// Nested returns the points as one slice per row.
func (g *Grid) Nested() [][]model.ControlPoint {
	out := make([][]model.ControlPoint, g.rows)
	for row := range out {
		out[row], _ = g.RowPoints(row)
	}
	return out
}

// FromFlat rebuilds a rows x cols grid from a row-major sequence. The length
// must equal rows*cols and every point must carry the address of its index.
func FromFlat(points []model.ControlPoint, rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 || len(points) != rows*cols {
		return nil, fmt.Errorf("%w: %d points for %dx%d grid", model.ErrShapeMismatch, len(points), rows, cols)
	}

	out := make([]model.ControlPoint, len(points))
	for i, p := range points {
		if p.Row != i/cols || p.Col != i%cols {
			return nil, fmt.Errorf("%w: point %d has address (%d,%d), expected (%d,%d)",
				model.ErrShapeMismatch, i, p.Row, p.Col, i/cols, i%cols)
		}
		out[i] = p
	}
	return &Grid{rows: rows, cols: cols, points: out}, nil
}

// InferShape derives the grid shape from max(row)+1 and max(col)+1.
func InferShape(points []model.ControlPoint) (rows, cols int, err error) {
	if len(points) == 0 {
		return 0, 0, fmt.Errorf("%w: no points", model.ErrShapeMismatch)
	}
	for _, p := range points {
		if p.Row < 0 || p.Col < 0 {
			return 0, 0, fmt.Errorf("%w: negative address (%d,%d)", model.ErrShapeMismatch, p.Row, p.Col)
		}
		rows = max(rows, p.Row+1)
		cols = max(cols, p.Col+1)
	}
	return rows, cols, nil
}

// FromPoints rebuilds a grid from points in any order, inferring the shape.
// Every (row, col) address must appear exactly once.
func FromPoints(points []model.ControlPoint) (*Grid, error) {
	rows, cols, err := InferShape(points)
	if err != nil {
		return nil, err
	}
	if len(points) != rows*cols {
		return nil, fmt.Errorf("%w: %d points for inferred %dx%d grid", model.ErrShapeMismatch, len(points), rows, cols)
	}

	ordered := make([]model.ControlPoint, rows*cols)
	filled := make([]bool, rows*cols)
	for _, p := range points {
		i := p.Row*cols + p.Col
		if filled[i] {
			return nil, fmt.Errorf("%w: duplicate point (%d,%d)", model.ErrShapeMismatch, p.Row, p.Col)
		}
		filled[i] = true
		ordered[i] = p
	}
	return FromFlat(ordered, rows, cols)
}
