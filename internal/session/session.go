package session

import (
	"sync"

	"github.com/ytget/mesh-designer/internal/document"
	"github.com/ytget/mesh-designer/internal/history"
	"github.com/ytget/mesh-designer/internal/mesh"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/palette"
)

// Config holds the session options that come from user preferences
type Config struct {
	DocumentsDir    string
	HistoryCapacity int
	ConstrainEdges  bool
	ShowPoints      bool
	WatchDocuments  bool
	PaletteStore    *palette.Store
}

// Session is the editing context of one document
type Session struct {
	mu sync.RWMutex

	grid     *mesh.Grid
	palette  *palette.Palette
	settings model.CanvasSettings
	history  *history.Manager

	docID    string
	name     string
	path     string
	dirty    bool
	revision uint64
	dragging bool

	constrainEdges bool
	showPoints     bool
	documentsDir   string
	watchDocuments bool
	watcher        *document.Watcher
	store          *palette.Store

	onChange func()
	onNotify func(Notification)
}

// New creates a session holding a fresh untitled document
func New(p *palette.Palette, cfg Config) *Session {
	if p == nil {
		p = palette.NewWithDefaults()
	}
	s := &Session{
		palette:        p,
		history:        history.NewManager(cfg.HistoryCapacity),
		constrainEdges: cfg.ConstrainEdges,
		showPoints:     cfg.ShowPoints,
		documentsDir:   cfg.DocumentsDir,
		watchDocuments: cfg.WatchDocuments,
		store:          cfg.PaletteStore,
	}
	s.resetDocument(document.New(), "")
	return s
}

// SetUpdateCallback sets the function called after every state change
func (s *Session) SetUpdateCallback(callback func()) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// SetNotifyCallback sets the function receiving user-facing notifications.
// It may be called from the document watcher goroutine.
func (s *Session) SetNotifyCallback(callback func(Notification)) {
	s.mu.Lock()
	s.onNotify = callback
	s.mu.Unlock()
}

// Grid returns a copy of the current grid
func (s *Session) Grid() *mesh.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

// Point returns one control point
func (s *Session) Point(row, col int) (model.ControlPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Point(row, col)
}

// Palette returns the session palette
func (s *Session) Palette() *palette.Palette {
	return s.palette
}

// Settings returns the canvas settings
func (s *Session) Settings() model.CanvasSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Name returns the document name
func (s *Session) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Path returns the file the document was loaded from or saved to, if any
func (s *Session) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// HasUnsavedChanges reports whether the document changed since it was opened or saved
func (s *Session) HasUnsavedChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Revision increases with every change of the rendered state
func (s *Session) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// ConstrainEdges reports whether boundary points are pinned while editing
func (s *Session) ConstrainEdges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constrainEdges
}

// SetConstrainEdges toggles edge pinning for later point updates
func (s *Session) SetConstrainEdges(constrain bool) {
	s.mu.Lock()
	s.constrainEdges = constrain
	s.mu.Unlock()
	s.changed()
}

// ShowPoints reports whether control point handles are visible
func (s *Session) ShowPoints() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showPoints
}

// SetShowPoints shows or hides the control point handles
func (s *Session) SetShowPoints(show bool) {
	s.mu.Lock()
	s.showPoints = show
	s.revision++
	s.mu.Unlock()
	s.changed()
}

// ToggleShowPoints flips handle visibility
func (s *Session) ToggleShowPoints() {
	s.SetShowPoints(!s.ShowPoints())
}

// CanUndo reports whether Undo would change anything
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// resetDocument replaces the whole editor state. Caller must not hold mu.
func (s *Session) resetDocument(doc model.Document, path string) {
	g, err := document.ToGrid(doc)
	if err != nil {
		g = mesh.Default()
	}
	settings := doc.Settings.Normalize()
	settings.Rows, settings.Cols = g.Rows(), g.Cols()
	settings.BackgroundColorID = doc.BackgroundColorID

	s.mu.Lock()
	s.grid = g
	s.settings = settings
	s.docID = doc.ID
	s.name = doc.Name
	s.path = path
	s.dirty = false
	s.dragging = false
	s.revision++
	s.mu.Unlock()

	s.history.Clear()
}
