package interp

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
)

func uniformField(t *testing.T, id model.ColorID, res int) *Field {
	t.Helper()
	g, err := mesh.New(3, 3, []model.ColorID{id})
	require.NoError(t, err)
	f, err := Interpolate(g, testResolver(), res, res)
	require.NoError(t, err)
	return f
}

func TestRasterize_CoversCanvas(t *testing.T) {
	f := uniformField(t, 1, 4)
	img := Rasterize(f, 16, 12, model.Transparent)

	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())

	want := color.NRGBA{R: 255, A: 255}
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, want, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRasterize_TranslucentEdgesNotDoubled(t *testing.T) {
	g, err := mesh.New(2, 2, []model.ColorID{4})
	require.NoError(t, err)
	f, err := Interpolate(g, testResolver(), 1, 1)
	require.NoError(t, err)

	img := Rasterize(f, 10, 10, model.Transparent)

	want := testResolver().Resolve(4).NRGBA()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, want.A, img.NRGBAAt(x, y).A, "alpha at (%d,%d)", x, y)
		}
	}
}

func TestRasterize_BackgroundShowsThroughTransparentMesh(t *testing.T) {
	f := uniformField(t, model.NoColor, 2)
	bg := model.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

	img := Rasterize(f, 8, 8, bg)
	assert.Equal(t, bg.NRGBA(), img.NRGBAAt(3, 5))
}

func TestRasterize_DegenerateSize(t *testing.T) {
	f := uniformField(t, 1, 2)
	img := Rasterize(f, 0, -3, model.Transparent)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestBlur(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
			}
		}
	}

	assert.Same(t, img, Blur(img, 0))
	assert.Same(t, img, Blur(img, -5))

	blurred := Blur(img, 4)
	require.Equal(t, img.Bounds(), blurred.Bounds())
	assert.NotEqual(t, img.Pix, blurred.Pix)

	assert.Equal(t, Blur(img, model.MaxBlurLevel).Pix, Blur(img, 1000).Pix)
}

func TestRender_AppliesBlur(t *testing.T) {
	f := uniformField(t, 2, 2)
	opts := RenderOptions{Width: 12, Height: 12, BlurLevel: 0}

	sharp := Render(f, opts)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, sharp.NRGBAAt(6, 6))
}

func TestRenderPreview(t *testing.T) {
	f := uniformField(t, 3, 3)
	opts := RenderOptions{Width: 64, Height: 32}

	img := RenderPreview(f, opts, 16)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(32, 16))

	small := RenderPreview(f, RenderOptions{Width: 10, Height: 10}, 16)
	assert.Equal(t, 10, small.Bounds().Dx())
}
