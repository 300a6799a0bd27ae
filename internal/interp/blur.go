package interp

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"

	"github.com/ytget/mesh-designer/internal/model"
)

// Blur applies a Gaussian blur with the given radius in pixels. The level is
// clamped to [0, MaxBlurLevel]; zero returns img unchanged.
func Blur(img *image.NRGBA, level float64) *image.NRGBA {
	level = model.ClampBlur(level)
	if level == 0 {
		return img
	}

	blurred := blur.Gaussian(img, level)
	out := image.NewNRGBA(blurred.Bounds())
	draw.Draw(out, out.Bounds(), blurred, blurred.Bounds().Min, draw.Src)
	return out
}
