package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
)

var (
	red   = model.Color{R: 1, A: 1}
	green = model.Color{G: 1, A: 1}
	blue  = model.Color{B: 1, A: 1}
)

func testResolver() ColorResolver {
	return ResolverFunc(func(id model.ColorID) model.Color {
		switch id {
		case 1:
			return red
		case 2:
			return green
		case 3:
			return blue
		case 4:
			return model.Color{R: 0.3, G: 0.6, B: 0.9, A: 0.4}
		default:
			return model.Transparent
		}
	})
}

func warpedGrid(t *testing.T) *mesh.Grid {
	t.Helper()
	g, err := mesh.New(3, 4, []model.ColorID{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, g.UpdatePoint(1, 1, model.Position{X: 0.41, Y: 0.37}, 4, false))
	require.NoError(t, g.UpdatePoint(1, 2, model.Position{X: 0.58, Y: 0.71}, model.NoColor, false))
	require.NoError(t, g.UpdatePoint(0, 3, model.Position{X: 0.93, Y: 0.05}, 99, false))
	return g
}

func TestInterpolate_Dimensions(t *testing.T) {
	g := warpedGrid(t)

	tests := []struct {
		resX, resY    int
		width, height int
	}{
		{1, 1, 4, 3},
		{10, 10, 31, 21},
		{3, 7, 10, 15},
		{0, -2, 4, 3},
	}

	for _, test := range tests {
		f, err := Interpolate(g, testResolver(), test.resX, test.resY)
		require.NoError(t, err)
		assert.Equal(t, test.width, f.Width, "width for res %dx%d", test.resX, test.resY)
		assert.Equal(t, test.height, f.Height, "height for res %dx%d", test.resX, test.resY)
		assert.Len(t, f.Samples, f.Width*f.Height)
	}
}

func TestInterpolate_PassesThroughControlPoints(t *testing.T) {
	g := warpedGrid(t)
	resolver := testResolver()

	for _, res := range [][2]int{{1, 1}, {2, 2}, {5, 3}, {10, 10}} {
		f, err := Interpolate(g, resolver, res[0], res[1])
		require.NoError(t, err)

		for _, p := range g.Flatten() {
			s := f.At(p.Col*f.ResX, p.Row*f.ResY)
			assert.Equal(t, p.Position(), s.Pos, "position of (%d,%d) at res %v", p.Row, p.Col, res)
			assert.Equal(t, resolver.Resolve(p.ColorID), s.Color, "color of (%d,%d) at res %v", p.Row, p.Col, res)
		}
	}
}

func TestInterpolate_Markers(t *testing.T) {
	g := warpedGrid(t)
	f, err := Interpolate(g, testResolver(), 4, 4)
	require.NoError(t, err)

	require.Len(t, f.Markers, g.Len())
	for i, p := range g.Flatten() {
		m := f.Markers[i]
		assert.Equal(t, p.Row, m.Row)
		assert.Equal(t, p.Col, m.Col)
		assert.Equal(t, p.Position(), m.Pos)
		assert.Equal(t, p.ColorID, m.ColorID)
	}
	assert.Equal(t, model.Transparent, f.Markers[3].Color, "dangling reference resolves to transparent")
}

func TestInterpolate_InsufficientGrid(t *testing.T) {
	for _, shape := range [][2]int{{1, 4}, {3, 1}, {1, 1}} {
		g, err := mesh.New(shape[0], shape[1], []model.ColorID{1})
		require.NoError(t, err)

		_, err = Interpolate(g, testResolver(), 10, 10)
		assert.ErrorIs(t, err, model.ErrInsufficientGrid, "shape %v", shape)
	}
}

func TestInterpolate_LatticeMidpoint(t *testing.T) {
	g, err := mesh.New(2, 2, []model.ColorID{1, 3})
	require.NoError(t, err)

	f, err := Interpolate(g, testResolver(), 2, 2)
	require.NoError(t, err)

	mid := f.At(1, 1)
	assert.InDelta(t, 0.5, mid.Pos.X, 1e-12)
	assert.InDelta(t, 0.5, mid.Pos.Y, 1e-12)
	assert.InDelta(t, 0.5, mid.Color.R, 1e-12)
	assert.InDelta(t, 0, mid.Color.G, 1e-12)
	assert.InDelta(t, 0.5, mid.Color.B, 1e-12)
	assert.InDelta(t, 1, mid.Color.A, 1e-12)
}

func TestInterpolate_UniformColor(t *testing.T) {
	g, err := mesh.New(4, 3, []model.ColorID{4})
	require.NoError(t, err)

	f, err := Interpolate(g, testResolver(), 6, 6)
	require.NoError(t, err)

	want := testResolver().Resolve(4)
	for _, s := range f.Samples {
		assert.InDelta(t, want.R, s.Color.R, 1e-12)
		assert.InDelta(t, want.G, s.Color.G, 1e-12)
		assert.InDelta(t, want.B, s.Color.B, 1e-12)
		assert.InDelta(t, want.A, s.Color.A, 1e-12)
	}
}

func TestInterpolate_DoesNotMutateGrid(t *testing.T) {
	g := warpedGrid(t)
	before := g.Clone()

	_, err := Interpolate(g, testResolver(), 8, 8)
	require.NoError(t, err)
	assert.True(t, g.Equal(before))
}

func TestCatmullRom_Endpoints(t *testing.T) {
	assert.Equal(t, [4]float64{0, 1, 0, 0}, catmullRom(0))
	assert.Equal(t, [4]float64{0, 0, 1, 0}, catmullRom(1))

	for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
		w := catmullRom(tt)
		assert.InDelta(t, 1, w[0]+w[1]+w[2]+w[3], 1e-12, "weights at %v", tt)
	}
}
