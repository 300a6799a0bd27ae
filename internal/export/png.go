package export

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/model"
)

// Image export constants
const (
	MinScale          = 1
	MaxScale          = 3
	MarkerRadius      = 5.0
	MarkerBorderWidth = 1.5
	FileNameBase      = "mesh-export"
	FileExtensionPNG  = ".png"
)

// ImageOptions controls a PNG export
type ImageOptions struct {
	Width      int
	Height     int
	Scale      int
	Background model.Color
	BlurLevel  float64
	ShowPoints bool
}

// Normalized returns the options with scale clamped to [MinScale, MaxScale]
// and dimensions of at least one pixel.
func (o ImageOptions) Normalized() ImageOptions {
	if o.Scale < MinScale {
		o.Scale = MinScale
	}
	if o.Scale > MaxScale {
		o.Scale = MaxScale
	}
	o.Width = max(o.Width, 1)
	o.Height = max(o.Height, 1)
	return o
}

// FileName returns mesh-export.png for scale 1 and mesh-export@<n>x.png otherwise
func FileName(scale int) string {
	if scale <= MinScale {
		return FileNameBase + FileExtensionPNG
	}
	return fmt.Sprintf("%s@%dx%s", FileNameBase, scale, FileExtensionPNG)
}

// RenderImage rasterizes the field at Width*Scale x Height*Scale, applies
// the scaled blur and, when requested, draws the control point markers.
func RenderImage(f *interp.Field, opts ImageOptions) (image.Image, error) {
	opts = opts.Normalized()
	scale := float64(opts.Scale)

	img := interp.Render(f, interp.RenderOptions{
		Width:      opts.Width * opts.Scale,
		Height:     opts.Height * opts.Scale,
		Background: opts.Background,
		BlurLevel:  opts.BlurLevel * scale,
	})
	if !opts.ShowPoints {
		return img, nil
	}

	dc := gg.NewContextForImage(img)
	defer dc.Close()

	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	for _, m := range f.Markers {
		x, y := m.Pos.X*w, m.Pos.Y*h

		dc.DrawCircle(x, y, (MarkerRadius+MarkerBorderWidth)*scale)
		dc.SetRGBA(1, 1, 1, 1)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("failed to draw marker (%d,%d): %w", m.Row, m.Col, err)
		}

		dc.DrawCircle(x, y, MarkerRadius*scale)
		dc.SetRGBA(m.Color.R, m.Color.G, m.Color.B, m.Color.A)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("failed to draw marker (%d,%d): %w", m.Row, m.Col, err)
		}
	}
	return dc.Image(), nil
}

// PNG renders the field and writes it to w as PNG
func PNG(w io.Writer, f *interp.Field, opts ImageOptions) error {
	img, err := RenderImage(f, opts)
	if err != nil {
		return err
	}
	return encodePNG(w, img)
}

func encodePNG(w io.Writer, img image.Image) error {
	dc := gg.NewContextForImage(img)
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
