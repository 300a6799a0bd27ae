package interp

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/ytget/mesh-designer/internal/model"
)

// Default preview bound
const DefaultPreviewMaxSide = 512

// RenderOptions describes an output image
type RenderOptions struct {
	Width      int
	Height     int
	Background model.Color
	BlurLevel  float64
}

// Render rasterizes the field and applies the blur post-pass
func Render(f *Field, opts RenderOptions) *image.NRGBA {
	img := Rasterize(f, opts.Width, opts.Height, opts.Background)
	return Blur(img, opts.BlurLevel)
}

// RenderPreview renders the field with its longer side limited to maxSide
// pixels and scales the result up to the requested size. Blur is scaled
// with the image so the preview matches a full-size render.
func RenderPreview(f *Field, opts RenderOptions, maxSide int) *image.NRGBA {
	if maxSide < 1 {
		maxSide = DefaultPreviewMaxSide
	}
	longest := max(opts.Width, opts.Height)
	if longest <= maxSide {
		return Render(f, opts)
	}

	factor := float64(maxSide) / float64(longest)
	small := opts
	small.Width = max(1, int(math.Round(float64(opts.Width)*factor)))
	small.Height = max(1, int(math.Round(float64(opts.Height)*factor)))
	small.BlurLevel = opts.BlurLevel * factor

	img := Render(f, small)
	out := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}
