package interp

import (
	"image"
	"math"

	"github.com/ytget/mesh-designer/internal/model"
)

// vertex is a sample projected into pixel space
type vertex struct {
	x, y float64
	c    model.Color
}

// Rasterize paints the field into a width x height image over a solid
// background. Every sample quad is split into two Gouraud-shaded triangles
// and composited source-over in row-major order.
func Rasterize(f *Field, width, height int, background model.Color) *image.NRGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	buf := make([]model.Color, width*height)
	for i := range buf {
		buf[i] = background
	}

	project := func(i, j int) vertex {
		s := f.At(i, j)
		return vertex{x: s.Pos.X * float64(width), y: s.Pos.Y * float64(height), c: s.Color}
	}

	for j := 0; j+1 < f.Height; j++ {
		for i := 0; i+1 < f.Width; i++ {
			a := project(i, j)
			b := project(i+1, j)
			c := project(i, j+1)
			d := project(i+1, j+1)
			fillTriangle(buf, width, height, a, b, d)
			fillTriangle(buf, width, height, a, d, c)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, buf[y*width+x].NRGBA())
		}
	}
	return img
}

// fillTriangle blends a triangle into buf. Pixels are sampled at their
// centers; pixels exactly on an edge shared by two triangles are owned by one
// of them only.
func fillTriangle(buf []model.Color, width, height int, a, b, c vertex) {
	area := edge(a, b, c.x, c.y)
	if area == 0 || math.IsNaN(area) {
		return
	}
	if area < 0 {
		b, c = c, b
		area = -area
	}

	minX := clampInt(int(math.Floor(math.Min(a.x, math.Min(b.x, c.x)))), 0, width-1)
	maxX := clampInt(int(math.Ceil(math.Max(a.x, math.Max(b.x, c.x)))), 0, width-1)
	minY := clampInt(int(math.Floor(math.Min(a.y, math.Min(b.y, c.y)))), 0, height-1)
	maxY := clampInt(int(math.Ceil(math.Max(a.y, math.Max(b.y, c.y)))), 0, height-1)

	ownBC, ownCA, ownAB := ownsEdge(b, c), ownsEdge(c, a), ownsEdge(a, b)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(b, c, px, py)
			w1 := edge(c, a, px, py)
			w2 := edge(a, b, px, py)
			if !inside(w0, ownBC) || !inside(w1, ownCA) || !inside(w2, ownAB) {
				continue
			}

			l0, l1, l2 := w0/area, w1/area, w2/area
			src := model.Color{
				R: a.c.R*l0 + b.c.R*l1 + c.c.R*l2,
				G: a.c.G*l0 + b.c.G*l1 + c.c.G*l2,
				B: a.c.B*l0 + b.c.B*l1 + c.c.B*l2,
				A: a.c.A*l0 + b.c.A*l1 + c.c.A*l2,
			}
			idx := y*width + x
			buf[idx] = src.Over(buf[idx])
		}
	}
}

// edge is the signed doubled area of (a, b, p)
func edge(a, b vertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// ownsEdge decides which of two triangles sharing an edge covers pixels lying
// exactly on it. The two triangles traverse the edge in opposite directions,
// so exactly one of them gets true.
func ownsEdge(a, b vertex) bool {
	dx, dy := b.x-a.x, b.y-a.y
	return dy < 0 || (dy == 0 && dx > 0)
}

func inside(w float64, owns bool) bool {
	if owns {
		return w >= 0
	}
	return w > 0
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
