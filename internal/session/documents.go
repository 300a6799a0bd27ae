package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/mesh-designer/internal/document"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
)

// Own saves are hidden from the document watcher for this long
const saveIgnoreWindow = time.Second

// NewDocument replaces the current document with an untitled starter mesh
func (s *Session) NewDocument() {
	s.stopWatching()
	s.resetDocument(document.New(), "")
	platform.Logger().Info("new document")
	s.changed()
}

// Document returns the current state as a serializable document
func (s *Session) Document() model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentLocked()
}

func (s *Session) documentLocked() model.Document {
	doc := document.FromGrid(s.name, s.grid, s.settings)
	if s.docID != "" {
		doc.ID = s.docID
	}
	return doc
}

// LoadDocument opens the document at path. On failure the current document
// stays as it was and an error notification is sent.
func (s *Session) LoadDocument(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		platform.Logger().Error("failed to load document", "path", path, "error", err)
		s.fail("Failed to open document", err)
		return err
	}
	if doc.Name == model.DefaultDocumentName {
		doc.Name = document.NameFromPath(path)
	}

	s.stopWatching()
	s.resetDocument(doc, path)
	s.startWatching()

	s.info(fmt.Sprintf("Opened %s", doc.Name))
	s.changed()
	return nil
}

// SaveDocument writes the current document to path. An empty path reuses
// the path the document was opened from or last saved to, and falls back
// to the documents directory. The final path is returned.
func (s *Session) SaveDocument(path string) (string, error) {
	s.mu.RLock()
	if path == "" {
		path = s.path
	}
	if path == "" {
		path = filepath.Join(s.documentsDir, fileNameFor(s.name))
	}
	doc := s.documentLocked()
	w := s.watcher
	s.mu.RUnlock()

	if path == "" || filepath.Base(path) == "." {
		err := fmt.Errorf("no location to save %q", doc.Name)
		s.fail("Failed to save document", err)
		return "", err
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		s.fail("Failed to save document", err)
		return "", err
	}
	if w != nil {
		w.Ignore(saveIgnoreWindow)
	}

	path = document.EnsureExtension(path)
	if s.Path() != path {
		doc.Name = document.NameFromPath(path)
	}
	saved, err := document.Save(doc, path)
	if err != nil {
		platform.Logger().Error("failed to save document", "path", path, "error", err)
		s.fail("Failed to save document", err)
		return "", err
	}

	s.mu.Lock()
	moved := s.path != saved
	s.path = saved
	s.name = doc.Name
	s.docID = doc.ID
	s.dirty = false
	s.mu.Unlock()

	if moved {
		s.stopWatching()
		s.startWatching()
	}

	s.info(fmt.Sprintf("Saved %s", doc.Name))
	s.changed()
	return saved, nil
}

// ListDocuments returns the documents saved in the documents directory
func (s *Session) ListDocuments() ([]document.Entry, error) {
	s.mu.RLock()
	dir := s.documentsDir
	s.mu.RUnlock()
	return document.List(dir)
}

// DocumentsDir returns the default location for new documents
func (s *Session) DocumentsDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentsDir
}

// SetDocumentsDir changes where documents without a path are saved
func (s *Session) SetDocumentsDir(dir string) {
	s.mu.Lock()
	s.documentsDir = dir
	s.mu.Unlock()
}

// Close releases the document watcher
func (s *Session) Close() error {
	return s.stopWatching()
}

func (s *Session) startWatching() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.watchDocuments || s.path == "" || s.watcher != nil {
		return
	}

	w, err := document.Watch(s.path, document.DefaultDebounce, s.onDiskChange)
	if err != nil {
		platform.Logger().Warn("document watching disabled", "path", s.path, "error", err)
		return
	}
	s.watcher = w
}

func (s *Session) stopWatching() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

// onDiskChange runs on the watcher goroutine. A clean document is reloaded;
// local edits are never overwritten.
func (s *Session) onDiskChange(change document.Change) {
	s.mu.RLock()
	w := s.watcher
	dirty := s.dirty
	name := s.name
	s.mu.RUnlock()

	if w == nil || change.Path != w.Path() {
		return
	}

	switch {
	case change.Removed:
		s.info(fmt.Sprintf("%s was moved or deleted on disk", name))
	case dirty:
		s.info(fmt.Sprintf("%s changed on disk; save to keep your edits", name))
	default:
		doc, err := document.Load(change.Path)
		if err != nil {
			s.fail("Failed to reload document", err)
			return
		}
		s.resetDocument(doc, s.Path())
		s.info(fmt.Sprintf("Reloaded %s", doc.Name))
		s.changed()
	}
}

// fileNameFor turns a document name into a safe file name
func fileNameFor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultDocumentName
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	return name + document.Extension
}
