package model

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		r     uint8
		g     uint8
		b     uint8
		alpha float64
	}{
		{"FF8040", 255, 128, 64, 1},
		{"#FF8040", 255, 128, 64, 1},
		{"80FF8040", 255, 128, 64, 128.0 / 255},
		{"#80FF8040", 255, 128, 64, 128.0 / 255},
		{"  FF8040  ", 255, 128, 64, 1},
		{"ff7f3f", 255, 127, 63, 1},
		{"Ff7F3f", 255, 127, 63, 1},
		{"000000", 0, 0, 0, 1},
		{"00FFFFFF", 255, 255, 255, 0},
	}

	for _, test := range tests {
		c, err := ParseHex(test.input)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", test.input, err)
			continue
		}
		if c.Red != test.r || c.Green != test.g || c.Blue != test.b {
			t.Errorf("ParseHex(%q) = (%d,%d,%d), expected (%d,%d,%d)", test.input, c.Red, c.Green, c.Blue, test.r, test.g, test.b)
		}
		if math.Abs(c.Alpha-test.alpha) > 1e-9 {
			t.Errorf("ParseHex(%q) alpha = %v, expected %v", test.input, c.Alpha, test.alpha)
		}
		if c.ID != NoColor {
			t.Errorf("ParseHex(%q) should not assign an id, got %d", test.input, c.ID)
		}
	}
}

func TestParseHex_AlphaScenario(t *testing.T) {
	c, err := ParseHex("80FF8040")
	if err != nil {
		t.Fatalf("ParseHex returned error: %v", err)
	}
	if math.Abs(c.Alpha-0.502) > 0.001 {
		t.Errorf("alpha = %v, expected ~0.502", c.Alpha)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	inputs := []string{"", "FF0", "GGHHII", "#12345", "123456789", "FF80 40", "+FF8040", "#"}

	for _, input := range inputs {
		_, err := ParseHex(input)
		if err == nil {
			t.Errorf("ParseHex(%q) expected error, got nil", input)
			continue
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseHex(%q) error = %v, expected ErrInvalidFormat", input, err)
		}
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		color        PaletteColor
		includeAlpha bool
		expected     string
	}{
		{PaletteColor{Red: 255, Green: 128, Blue: 64, Alpha: 1}, false, "FF8040"},
		{PaletteColor{Red: 255, Green: 128, Blue: 64, Alpha: 0.5}, true, "80FF8040"},
		{PaletteColor{Red: 255, Alpha: 1}, false, "FF0000"},
		{PaletteColor{Green: 255, Alpha: 1}, false, "00FF00"},
		{PaletteColor{Blue: 255, Alpha: 1}, false, "0000FF"},
		{PaletteColor{Red: 255, Green: 255, Blue: 255, Alpha: 1}, true, "FFFFFFFF"},
		{PaletteColor{Alpha: 1}, false, "000000"},
	}

	for _, test := range tests {
		result := FormatHex(test.color, test.includeAlpha)
		if result != test.expected {
			t.Errorf("FormatHex(%+v, %v) = %s, expected %s", test.color, test.includeAlpha, result, test.expected)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				rgb := fmt.Sprintf("%02X%02X%02X", r, g, b)
				c, err := ParseHex(rgb)
				if err != nil {
					t.Fatalf("ParseHex(%s) returned error: %v", rgb, err)
				}
				if got := FormatHex(c, false); got != rgb {
					t.Errorf("FormatHex(ParseHex(%s)) = %s", rgb, got)
				}

				for _, a := range []int{0, 1, 128, 254, 255} {
					argb := fmt.Sprintf("%02X", a) + rgb
					c, err := ParseHex(argb)
					if err != nil {
						t.Fatalf("ParseHex(%s) returned error: %v", argb, err)
					}
					if got := FormatHex(c, true); got != argb {
						t.Errorf("FormatHex(ParseHex(%s)) = %s", argb, got)
					}
				}
			}
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{5, "5"},
		{3.14159, "3.1416"},
		{0.5, "0.5"},
		{2.5000, "2.5"},
		{0, "0"},
		{-3.14159, "-3.1416"},
		{0.0001, "0.0001"},
		{1.23456789, "1.2346"},
		{0.33, "0.33"},
		{1.0 / 3, "0.3334"},
		{2.0 / 3, "0.6667"},
		{0.00001, "0.0001"},
		{1234.5678, "1234.5678"},
		{0.99999, "1"},
	}

	for _, test := range tests {
		result := FormatFloat(test.input)
		if result != test.expected {
			t.Errorf("FormatFloat(%v) = %s, expected %s", test.input, result, test.expected)
		}
	}
}
