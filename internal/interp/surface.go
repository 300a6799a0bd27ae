package interp

import (
	"fmt"

	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
)

// ColorResolver maps a color reference to a color. Unknown ids must resolve to transparent.
type ColorResolver interface {
	Resolve(id model.ColorID) model.Color
}

// ResolverFunc adapts a plain function to ColorResolver
type ResolverFunc func(id model.ColorID) model.Color

// Resolve calls f(id)
func (f ResolverFunc) Resolve(id model.ColorID) model.Color { return f(id) }

// Sample is one evaluated point of the surface
type Sample struct {
	Pos   model.Position
	Color model.Color
}

// Marker is a control point as drawn on top of the rendered mesh
type Marker struct {
	Row, Col int
	Pos      model.Position
	ColorID  model.ColorID
	Color    model.Color
}

// Field is a dense row-major lattice of samples. Sample (row*ResY, col*ResX)
// is control point (row, col) with its exact position and color.
type Field struct {
	Width   int
	Height  int
	Rows    int
	Cols    int
	ResX    int
	ResY    int
	Samples []Sample
	Markers []Marker
}

// At returns the sample in column i, row j
func (f *Field) At(i, j int) Sample {
	return f.Samples[j*f.Width+i]
}

// Interpolate evaluates the surface of g with resX subdivisions per patch
// horizontally and resY vertically. Resolutions below 1 are treated as 1.
func Interpolate(g *mesh.Grid, colors ColorResolver, resX, resY int) (*Field, error) {
	rows, cols := g.Rows(), g.Cols()
	if rows < model.MinGridSize || cols < model.MinGridSize {
		return nil, fmt.Errorf("interpolate %dx%d grid: %w", rows, cols, model.ErrInsufficientGrid)
	}
	if resX < 1 {
		resX = 1
	}
	if resY < 1 {
		resY = 1
	}

	f := &Field{
		Width:  (cols-1)*resX + 1,
		Height: (rows-1)*resY + 1,
		Rows:   rows,
		Cols:   cols,
		ResX:   resX,
		ResY:   resY,
	}
	f.Samples = make([]Sample, f.Width*f.Height)

	// resolved corner colors, one lookup per control point
	nodeColors := make([]model.Color, rows*cols)
	for _, p := range g.Flatten() {
		nodeColors[p.Row*cols+p.Col] = colors.Resolve(p.ColorID)
	}

	for j := 0; j < f.Height; j++ {
		pr, s := patchCoord(j, resY, rows)
		ws := catmullRom(s)
		for i := 0; i < f.Width; i++ {
			pc, t := patchCoord(i, resX, cols)

			if i%resX == 0 && j%resY == 0 {
				p := g.At(j/resY, i/resX)
				f.Samples[j*f.Width+i] = Sample{Pos: p.Position(), Color: nodeColors[p.Row*cols+p.Col]}
				continue
			}

			f.Samples[j*f.Width+i] = Sample{
				Pos:   surfacePosition(g, pr, pc, ws, catmullRom(t)),
				Color: patchColor(nodeColors, cols, pr, pc, s, t),
			}
		}
	}

	f.Markers = make([]Marker, 0, rows*cols)
	for _, p := range g.Flatten() {
		f.Markers = append(f.Markers, Marker{
			Row:     p.Row,
			Col:     p.Col,
			Pos:     p.Position(),
			ColorID: p.ColorID,
			Color:   nodeColors[p.Row*cols+p.Col],
		})
	}
	return f, nil
}

// patchCoord maps a sample index to its patch and local parameter. The last
// sample belongs to the last patch at parameter 1.
func patchCoord(idx, res, n int) (patch int, t float64) {
	patch = idx / res
	if patch > n-2 {
		patch = n - 2
	}
	return patch, float64(idx-patch*res) / float64(res)
}

// surfacePosition evaluates the tensor-product Catmull-Rom surface of patch
// (pr, pc) over its 4x4 neighborhood. Neighbors past the grid edge repeat the
// edge point.
func surfacePosition(g *mesh.Grid, pr, pc int, ws, wt [4]float64) model.Position {
	var pos model.Position
	for a := 0; a < 4; a++ {
		if ws[a] == 0 {
			continue
		}
		for b := 0; b < 4; b++ {
			w := ws[a] * wt[b]
			if w == 0 {
				continue
			}
			p := g.At(pr-1+a, pc-1+b)
			pos.X += w * p.X
			pos.Y += w * p.Y
		}
	}
	return pos
}

// patchColor blends the four corner colors of patch (pr, pc)
func patchColor(nodes []model.Color, cols, pr, pc int, s, t float64) model.Color {
	c00 := nodes[pr*cols+pc]
	c01 := nodes[pr*cols+pc+1]
	c10 := nodes[(pr+1)*cols+pc]
	c11 := nodes[(pr+1)*cols+pc+1]

	top := c00.Lerp(c01, t)
	bottom := c10.Lerp(c11, t)
	return top.Lerp(bottom, s)
}
