package model

// DocumentFormatVersion is written into every saved document
const DocumentFormatVersion = "1.0.0"

// DefaultDocumentName is used for documents that were never saved
const DefaultDocumentName = "Untitled"

// Document is the serializable snapshot exchanged with persistence.
// Points are stored flat in row-major order: index = row*cols + col.
type Document struct {
	ID                string         `json:"id,omitempty"`
	FormatVersion     string         `json:"formatVersion,omitempty"`
	Name              string         `json:"name"`
	Settings          CanvasSettings `json:"settings"`
	Points            []ControlPoint `json:"points"`
	BackgroundColorID ColorID        `json:"backgroundColorId"`
}
