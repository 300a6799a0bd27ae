package document

// Package document reads and writes .mesh files: pretty-printed JSON holding
// the canvas settings and the row-major control point list. It also watches
// an open document for edits made outside the editor.
