package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/mesh-designer/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestShowPointsAndConstrainEdges(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if settings.GetShowPoints() != DefaultShowPoints {
		t.Errorf("Expected default show points %v", DefaultShowPoints)
	}
	if settings.GetConstrainEdges() != DefaultConstrainEdges {
		t.Errorf("Expected default constrain edges %v", DefaultConstrainEdges)
	}

	settings.SetShowPoints(true)
	settings.SetConstrainEdges(false)

	if !settings.GetShowPoints() {
		t.Error("Show points should be true after setting")
	}
	if settings.GetConstrainEdges() {
		t.Error("Constrain edges should be false after setting")
	}
}

func TestExportScale(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if scale := settings.GetExportScale(); scale != DefaultExportScale {
		t.Errorf("Expected default export scale %d, got %d", DefaultExportScale, scale)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{2, 2},
		{0, 1},
		{7, 3},
	}

	for _, test := range tests {
		settings.SetExportScale(test.input)
		if got := settings.GetExportScale(); got != test.expected {
			t.Errorf("SetExportScale(%d) then GetExportScale() = %d, expected %d", test.input, got, test.expected)
		}
	}
}

func TestPreviewMaxSide(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if side := settings.GetPreviewMaxSide(); side != DefaultPreviewMaxSide {
		t.Errorf("Expected default preview side %d, got %d", DefaultPreviewMaxSide, side)
	}

	settings.SetPreviewMaxSide(10)
	if side := settings.GetPreviewMaxSide(); side != MinPreviewMaxSide {
		t.Errorf("Preview side should be clamped to %d, got %d", MinPreviewMaxSide, side)
	}

	app.Preferences().SetInt(KeyPreviewMaxSide, 99999)
	if side := settings.GetPreviewMaxSide(); side != MaxPreviewMaxSide {
		t.Errorf("Out of range stored value should read as %d, got %d", MaxPreviewMaxSide, side)
	}
}

func TestDirectories(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("No home directory: %v", err)
	}
	settings := NewSettings(test.NewApp())

	if dir := settings.GetDocumentsDirectory(); dir != filepath.Join(home, ".mesh", "documents") {
		t.Errorf("GetDocumentsDirectory() = %s", dir)
	}
	if dir := settings.GetExportDirectory(); dir != filepath.Join(home, "Desktop") {
		t.Errorf("GetExportDirectory() = %s", dir)
	}
	desktop, err := platform.GetDesktopDir()
	if err != nil {
		t.Fatalf("GetDesktopDir() error = %v", err)
	}
	if stored := settings.app.Preferences().String(KeyExportDir); stored != desktop {
		t.Errorf("stored export directory = %q, expected %q", stored, desktop)
	}

	custom := "/custom/meshes"
	settings.SetDocumentsDirectory(custom)
	if dir := settings.GetDocumentsDirectory(); dir != custom {
		t.Errorf("Expected documents directory %s, got %s", custom, dir)
	}
}

func TestCodeFormat(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if format := settings.GetCodeFormat(); format != DefaultCodeFormat {
		t.Errorf("Expected default code format %s, got %s", DefaultCodeFormat, format)
	}

	settings.SetCodeFormat("go")
	if format := settings.GetCodeFormat(); format != "go" {
		t.Errorf("Expected code format go, got %s", format)
	}

	settings.SetCodeFormat("")
	if format := settings.GetCodeFormat(); format != DefaultCodeFormat {
		t.Errorf("Empty format should reset to %s, got %s", DefaultCodeFormat, format)
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language pt, got %s", lang)
	}

	if _, ok := settings.GetLanguageOptions()["en"]; !ok {
		t.Error("Language options should include en")
	}
}
