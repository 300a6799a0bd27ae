package ui

import (
	"bytes"
	"image/png"
	"testing"
)

func TestAppIcon(t *testing.T) {
	icon := AppIcon()
	if icon == nil {
		t.Fatalf("AppIcon() = nil")
	}
	if icon.Name() != AppIconName {
		t.Errorf("Name() = %q, expected %q", icon.Name(), AppIconName)
	}

	img, err := png.Decode(bytes.NewReader(icon.Content()))
	if err != nil {
		t.Fatalf("icon is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != appIconSize || b.Dy() != appIconSize {
		t.Errorf("icon size = %v, expected %dx%d", b, appIconSize, appIconSize)
	}
	if AppIcon() != icon {
		t.Errorf("AppIcon() should be rendered once")
	}
}
