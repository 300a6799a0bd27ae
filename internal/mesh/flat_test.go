package mesh

import (
	"errors"
	"testing"

	"github.com/ytget/mesh-designer/internal/model"
)

func TestFlatRoundTrip(t *testing.T) {
	for rows := model.MinGridSize; rows <= model.MaxGridSize; rows++ {
		for cols := model.MinGridSize; cols <= model.MaxGridSize; cols++ {
			g := mustNew(t, rows, cols)

			flat := g.Flatten()
			if len(flat) != rows*cols {
				t.Fatalf("Flatten() len = %d, expected %d", len(flat), rows*cols)
			}
			for i, p := range flat {
				if p.Row*cols+p.Col != i {
					t.Fatalf("Flatten()[%d] has address (%d,%d)", i, p.Row, p.Col)
				}
			}

			back, err := FromFlat(flat, rows, cols)
			if err != nil {
				t.Fatalf("FromFlat(%dx%d) returned error: %v", rows, cols, err)
			}
			if !back.Equal(g) {
				t.Errorf("FromFlat(Flatten()) differs for %dx%d", rows, cols)
			}
		}
	}
}

func TestFromFlat_ShapeMismatch(t *testing.T) {
	g := mustNew(t, 3, 4)
	flat := g.Flatten()

	tests := []struct {
		points     []model.ControlPoint
		rows, cols int
	}{
		{flat, 4, 4},
		{flat, 3, 3},
		{flat[:11], 3, 4},
		{nil, 0, 0},
	}

	for _, test := range tests {
		_, err := FromFlat(test.points, test.rows, test.cols)
		if !errors.Is(err, model.ErrShapeMismatch) {
			t.Errorf("FromFlat(%d points, %d, %d) error = %v, expected ErrShapeMismatch", len(test.points), test.rows, test.cols, err)
		}
	}
}

func TestFromFlat_MisorderedPoints(t *testing.T) {
	flat := mustNew(t, 2, 2).Flatten()
	flat[1], flat[2] = flat[2], flat[1]

	if _, err := FromFlat(flat, 2, 2); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("FromFlat with swapped points error = %v, expected ErrShapeMismatch", err)
	}
}

func TestFromFlat_CopiesInput(t *testing.T) {
	flat := mustNew(t, 2, 2).Flatten()
	g, err := FromFlat(flat, 2, 2)
	if err != nil {
		t.Fatalf("FromFlat returned error: %v", err)
	}

	flat[0].X = 0.5
	p, _ := g.Point(0, 0)
	if p.X != 0 {
		t.Error("Grid must not alias the input slice")
	}
}

func TestInferShape(t *testing.T) {
	points := []model.ControlPoint{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}

	rows, cols, err := InferShape(points)
	if err != nil {
		t.Fatalf("InferShape returned error: %v", err)
	}
	if rows != 2 || cols != 3 {
		t.Errorf("InferShape = %dx%d, expected 2x3", rows, cols)
	}

	if _, _, err := InferShape(nil); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("InferShape(nil) error = %v, expected ErrShapeMismatch", err)
	}
}

func TestFromPoints_AnyOrder(t *testing.T) {
	g := mustNew(t, 3, 2)
	flat := g.Flatten()
	shuffled := []model.ControlPoint{flat[5], flat[0], flat[3], flat[1], flat[4], flat[2]}

	back, err := FromPoints(shuffled)
	if err != nil {
		t.Fatalf("FromPoints returned error: %v", err)
	}
	if !back.Equal(g) {
		t.Error("FromPoints should restore row-major order")
	}
}

func TestFromPoints_Errors(t *testing.T) {
	jagged := []model.ControlPoint{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if _, err := FromPoints(jagged); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("FromPoints(jagged) error = %v, expected ErrShapeMismatch", err)
	}

	dup := []model.ControlPoint{{Row: 0, Col: 0}, {Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}
	if _, err := FromPoints(dup); !errors.Is(err, model.ErrShapeMismatch) {
		t.Errorf("FromPoints(duplicate) error = %v, expected ErrShapeMismatch", err)
	}
}

func TestNested(t *testing.T) {
	g := mustNew(t, 3, 4)
	nested := g.Nested()

	if len(nested) != 3 {
		t.Fatalf("Nested() rows = %d, expected 3", len(nested))
	}
	for row, points := range nested {
		if len(points) != 4 {
			t.Errorf("Nested()[%d] len = %d, expected 4", row, len(points))
		}
		for col, p := range points {
			if p.Row != row || p.Col != col {
				t.Errorf("Nested()[%d][%d] has address (%d,%d)", row, col, p.Row, p.Col)
			}
		}
	}
}
