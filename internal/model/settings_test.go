package model

import (
	"encoding/json"
	"testing"
)

func TestDefaultCanvasSettings(t *testing.T) {
	s := DefaultCanvasSettings()

	if s.WidthMode != DimensionFill || s.HeightMode != DimensionFill {
		t.Errorf("Expected Fill/Fill modes, got %s/%s", s.WidthMode, s.HeightMode)
	}
	if s.Width != 0 || s.Height != 0 {
		t.Errorf("Expected zero size, got %dx%d", s.Width, s.Height)
	}
	if s.Resolution != 10 {
		t.Errorf("Expected resolution 10, got %d", s.Resolution)
	}
	if s.BlurLevel != 0 {
		t.Errorf("Expected blur 0, got %v", s.BlurLevel)
	}
	if s.Rows != 3 || s.Cols != 4 {
		t.Errorf("Expected 3x4 grid, got %dx%d", s.Rows, s.Cols)
	}
	if s.BackgroundColorID != NoColor {
		t.Errorf("Expected no background color, got %d", s.BackgroundColorID)
	}
}

func TestCanvasSettings_Normalize(t *testing.T) {
	s := CanvasSettings{Rows: 1, Cols: 15, Resolution: 0, BlurLevel: 55, Width: -4, Height: 20}.Normalize()

	if s.Rows != MinGridSize || s.Cols != MaxGridSize {
		t.Errorf("Expected rows/cols clamped to %d/%d, got %d/%d", MinGridSize, MaxGridSize, s.Rows, s.Cols)
	}
	if s.Resolution != MinResolution {
		t.Errorf("Expected resolution %d, got %d", MinResolution, s.Resolution)
	}
	if s.BlurLevel != MaxBlurLevel {
		t.Errorf("Expected blur %d, got %v", MaxBlurLevel, s.BlurLevel)
	}
	if s.Width != 0 || s.Height != 20 {
		t.Errorf("Expected size 0x20, got %dx%d", s.Width, s.Height)
	}
}

func TestDimensionMode_Toggle(t *testing.T) {
	if DimensionFill.Toggle() != DimensionFixed {
		t.Error("Fill should toggle to Fixed")
	}
	if DimensionFixed.Toggle() != DimensionFill {
		t.Error("Fixed should toggle to Fill")
	}
}

func TestDimensionMode_JSON(t *testing.T) {
	s := DefaultCanvasSettings()
	s.WidthMode = DimensionFixed

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded CanvasSettings
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded != s {
		t.Errorf("decoded = %+v, expected %+v", decoded, s)
	}

	var mode DimensionMode
	if err := mode.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
