package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
)

// Document format constants
const (
	Extension         = ".mesh"
	VersionConstraint = "^1"
	jsonIndent        = "  "
)

// ErrUnsupportedVersion is returned for documents written by an incompatible format version
var ErrUnsupportedVersion = errors.New("unsupported document version")

var supported = mustConstraint(VersionConstraint)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// New returns an unsaved document holding the starter mesh
func New() model.Document {
	return FromGrid(model.DefaultDocumentName, mesh.Default(), model.DefaultCanvasSettings())
}

// FromGrid builds a document from the editor state with a fresh id
func FromGrid(name string, g *mesh.Grid, settings model.CanvasSettings) model.Document {
	settings.Rows = g.Rows()
	settings.Cols = g.Cols()
	return model.Document{
		ID:                newID(),
		FormatVersion:     model.DocumentFormatVersion,
		Name:              name,
		Settings:          settings,
		Points:            g.Flatten(),
		BackgroundColorID: settings.BackgroundColorID,
	}
}

// ToGrid rebuilds the grid of doc. Explicit rows and cols in the settings
// are used when they match the point count; otherwise the shape is inferred
// from the largest row and column indices. An empty point list yields the
// starter mesh.
func ToGrid(doc model.Document) (*mesh.Grid, error) {
	if len(doc.Points) == 0 {
		return mesh.Default(), nil
	}

	rows, cols := doc.Settings.Rows, doc.Settings.Cols
	if rows > 0 && cols > 0 && rows*cols == len(doc.Points) {
		if g, err := mesh.FromFlat(doc.Points, rows, cols); err == nil {
			return g, nil
		}
	}

	g, err := mesh.FromPoints(doc.Points)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", doc.Name, err)
	}
	return g, nil
}

// Encode serializes doc as indented JSON, stamping the current format version
func Encode(doc model.Document) ([]byte, error) {
	doc.FormatVersion = model.DocumentFormatVersion
	if doc.ID == "" {
		doc.ID = newID()
	}
	if doc.Points == nil {
		doc.Points = []model.ControlPoint{}
	}
	doc.Settings.BackgroundColorID = doc.BackgroundColorID

	data, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a document and checks that it can be opened: the format
// version must satisfy VersionConstraint and the points must form a grid of
// at least 2x2.
// The top-level background reference wins over the one in settings.
func Decode(data []byte) (model.Document, error) {
	// fields missing from the file keep their defaults
	doc := model.Document{
		Settings:          model.DefaultCanvasSettings(),
		BackgroundColorID: model.NoColor,
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}

	if err := checkVersion(doc.FormatVersion); err != nil {
		return model.Document{}, err
	}

	g, err := ToGrid(doc)
	if err != nil {
		return model.Document{}, err
	}
	if g.Rows() < model.MinGridSize || g.Cols() < model.MinGridSize {
		return model.Document{}, fmt.Errorf("document %q has a %dx%d grid: %w", doc.Name, g.Rows(), g.Cols(), model.ErrInsufficientGrid)
	}

	doc.Settings = doc.Settings.Normalize()
	doc.Settings.Rows, doc.Settings.Cols = g.Rows(), g.Cols()
	doc.Settings.BackgroundColorID = doc.BackgroundColorID
	doc.Points = g.Flatten()
	if doc.Name == "" {
		doc.Name = model.DefaultDocumentName
	}
	return doc, nil
}

// checkVersion accepts documents without a version as written by early builds
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, VersionConstraint)
	}
	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
