package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
)

// Format selects the language of exported code
type Format string

const (
	FormatCompose Format = "compose"
	FormatGo      Format = "go"
	FormatJSON    Format = "json"
)

// Formats lists the supported code formats
var Formats = []Format{FormatCompose, FormatGo, FormatJSON}

// ParseFormat returns the format named s, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown code format %q", s)
}

// CodePoint is a control point as written to exported code
type CodePoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color uint32  `json:"-"`
}

// Hex returns the color as AARRGGBB
func (p CodePoint) Hex() string {
	return fmt.Sprintf("%08X", p.Color)
}

// MarshalJSON writes the color as a hex string
func (p CodePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X     json.Number `json:"x"`
		Y     json.Number `json:"y"`
		Color string      `json:"color"`
	}{json.Number(model.FormatFloat(p.X)), json.Number(model.FormatFloat(p.Y)), p.Hex()})
}

// ColorLookup finds palette colors by id
type ColorLookup interface {
	Lookup(id model.ColorID) (model.PaletteColor, bool)
}

// CodePointsFromGrid resolves every point's color into ARGB. Dangling
// references are written as fully transparent black.
func CodePointsFromGrid(g *mesh.Grid, colors ColorLookup) [][]CodePoint {
	if err := DanglingReferences(g, colors); err != nil {
		platform.Logger().Warn("exporting dangling colors as transparent", "error", err)
	}

	out := make([][]CodePoint, g.Rows())
	for row, points := range g.Nested() {
		out[row] = make([]CodePoint, len(points))
		for col, p := range points {
			var argb uint32
			if pc, ok := colors.Lookup(p.ColorID); ok {
				argb = argbOf(pc)
			}
			out[row][col] = CodePoint{X: p.X, Y: p.Y, Color: argb}
		}
	}
	return out
}

// DanglingReferences returns one ErrDanglingColorReference per point whose
// color is set but missing from colors, joined, or nil
func DanglingReferences(g *mesh.Grid, colors ColorLookup) error {
	var errs []error
	for _, p := range g.Flatten() {
		if !p.HasColor() {
			continue
		}
		if _, ok := colors.Lookup(p.ColorID); !ok {
			errs = append(errs, fmt.Errorf("%w: point (%d, %d) uses color %d", model.ErrDanglingColorReference, p.Row, p.Col, p.ColorID))
		}
	}
	return errors.Join(errs...)
}

func argbOf(pc model.PaletteColor) uint32 {
	v, _ := strconv.ParseUint(model.FormatHex(pc, true), 16, 32)
	return uint32(v)
}

var codeFuncs = template.FuncMap{
	"float": model.FormatFloat,
}

var composeTemplate = template.Must(template.New("compose").Funcs(codeFuncs).Parse(
	`val colorPoints: List<List<Pair<Offset, Color>>> = listOf(
{{- range .}}
    listOf(
{{- range .}}
        Offset({{float .X}}f, {{float .Y}}f) to Color(0x{{.Hex}}),
{{- end}}
    ),
{{- end}}
)
`))

var goTemplate = template.Must(template.New("go").Funcs(codeFuncs).Parse(
	`var colorPoints = [][]MeshPoint{
{{- range .}}
	{
{{- range .}}
		{X: {{float .X}}, Y: {{float .Y}}, Color: 0x{{.Hex}}},
{{- end}}
	},
{{- end}}
}
`))

// Code renders the points as source code in the given format. Rows are
// written in row-major order; an empty grid yields an empty string.
func Code(points [][]CodePoint, format Format) (string, error) {
	if len(points) == 0 {
		return "", nil
	}

	var tmpl *template.Template
	switch format {
	case FormatCompose:
		tmpl = composeTemplate
	case FormatGo:
		tmpl = goTemplate
	case FormatJSON:
		data, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode points: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown code format %q", format)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, points); err != nil {
		return "", fmt.Errorf("failed to render %s code: %w", format, err)
	}
	return b.String(), nil
}

var (
	composeRowPattern   = regexp.MustCompile(`listOf\(`)
	composePointPattern = regexp.MustCompile(
		`Offset\(\s*(-?[0-9.]+(?:[eE][-+]?[0-9]+)?)f?\s*,\s*(-?[0-9.]+(?:[eE][-+]?[0-9]+)?)f?\s*\)\s*to\s*Color\(0x([0-9A-Fa-f]{8})\)`)
)

// ParseCompose reads code produced in the compose format back into rows of points
func ParseCompose(src string) ([][]CodePoint, error) {
	starts := composeRowPattern.FindAllStringIndex(src, -1)
	if len(starts) < 2 {
		return nil, fmt.Errorf("%w: no rows found", model.ErrShapeMismatch)
	}

	var rows [][]CodePoint
	for i := 1; i < len(starts); i++ {
		end := len(src)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}

		var row []CodePoint
		for _, m := range composePointPattern.FindAllStringSubmatch(src[starts[i][1]:end], -1) {
			x, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad x %q: %w", i-1, m[1], err)
			}
			y, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad y %q: %w", i-1, m[2], err)
			}
			argb, err := strconv.ParseUint(m[3], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad color %q: %w", i-1, m[3], err)
			}
			row = append(row, CodePoint{X: x, Y: y, Color: uint32(argb)})
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		if len(row) == 0 || len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d points, expected %d", model.ErrShapeMismatch, i, len(row), len(rows[0]))
		}
	}
	return rows, nil
}
