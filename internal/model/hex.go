package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex color text format lengths
const (
	HexLengthRGB  = 6 // RRGGBB
	HexLengthARGB = 8 // AARRGGBB
	HexPrefix     = "#"
)

// Float formatting used for exported coordinates
const (
	FloatDecimals = 4
)

// ParseHex parses a RRGGBB or AARRGGBB string into an unassigned palette color.
// A leading '#' and surrounding whitespace are ignored and digits are case-insensitive.
func ParseHex(s string) (PaletteColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), HexPrefix)
	if len(hex) != HexLengthRGB && len(hex) != HexLengthARGB {
		return PaletteColor{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidFormat, s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return PaletteColor{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, s)
	}

	alpha := 1.0
	if len(hex) == HexLengthARGB {
		alpha = float64(uint8(value>>24)) / 255
	}

	return PaletteColor{
		ID:    NoColor,
		Red:   uint8(value >> 16),
		Green: uint8(value >> 8),
		Blue:  uint8(value),
		Alpha: alpha,
	}, nil
}

// FormatHex formats a palette color as upper-case RRGGBB, or AARRGGBB when includeAlpha is set.
func FormatHex(pc PaletteColor, includeAlpha bool) string {
	if includeAlpha {
		a := uint8(math.Round(clamp01(pc.Alpha) * 255))
		return fmt.Sprintf("%02X%02X%02X%02X", a, pc.Red, pc.Green, pc.Blue)
	}
	return fmt.Sprintf("%02X%02X%02X", pc.Red, pc.Green, pc.Blue)
}

// FormatColorHex formats a float color as AARRGGBB.
func FormatColorHex(c Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("%02X%02X%02X%02X", n.A, n.R, n.G, n.B)
}

// FormatFloat formats f with at most four decimals, rounding away from zero
// and stripping trailing zeros: 3.14159 -> "3.1416", 5 -> "5", 0.5 -> "0.5".
func FormatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) > FloatDecimals {
		rest := frac[FloatDecimals:]
		frac = frac[:FloatDecimals]
		if strings.Trim(rest, "0") != "" {
			rounded, ok := roundUpDecimal(intPart, frac)
			if !ok {
				return trimFloat(sign + strconv.FormatFloat(f, 'f', FloatDecimals, 64))
			}
			intPart, frac = rounded[:len(rounded)-FloatDecimals], rounded[len(rounded)-FloatDecimals:]
		}
	}

	out := intPart
	if frac != "" {
		out += "." + frac
	}
	out = trimFloat(out)
	if out == "0" {
		return out
	}
	return sign + out
}

// roundUpDecimal adds one unit in the last place to the fixed-point number intPart.frac.
func roundUpDecimal(intPart, frac string) (string, bool) {
	digits := intPart + frac + strings.Repeat("0", FloatDecimals-len(frac))
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || n == math.MaxUint64 {
		return "", false
	}
	s := strconv.FormatUint(n+1, 10)
	if len(s) <= FloatDecimals {
		s = strings.Repeat("0", FloatDecimals-len(s)+1) + s
	}
	return s, true
}

func trimFloat(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
