package ui

import (
	"bytes"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/mesh-designer/internal/export"
	"github.com/ytget/mesh-designer/internal/interp"
	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/palette"
	"github.com/ytget/mesh-designer/internal/platform"
)

const (
	AppIconName       = "mesh-designer.png"
	appIconSize       = 256
	appIconResolution = 8
)

var (
	appIconOnce sync.Once
	appIcon     fyne.Resource
)

// AppIcon returns the application icon: the starter mesh rendered with the
// preset palette. It is rendered once and returns nil if rendering fails.
func AppIcon() fyne.Resource {
	appIconOnce.Do(func() {
		data, err := renderAppIcon()
		if err != nil {
			platform.Logger().Warn("failed to render app icon", "error", err)
			return
		}
		appIcon = fyne.NewStaticResource(AppIconName, data)
	})
	return appIcon
}

func renderAppIcon() ([]byte, error) {
	f, err := interp.Interpolate(mesh.Default(), palette.NewWithDefaults(), appIconResolution, appIconResolution)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = export.PNG(&buf, f, export.ImageOptions{Width: appIconSize, Height: appIconSize})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
