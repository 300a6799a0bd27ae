package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
)

// Entry describes a saved document found by List
type Entry struct {
	Name    string
	Path    string
	ModTime time.Time
}

// EnsureExtension appends .mesh unless path already ends with it
func EnsureExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

// NameFromPath returns the document name for a file: its base name without extension
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Save writes doc atomically and returns the final path, which always
// carries the .mesh extension.
func Save(doc model.Document, path string) (string, error) {
	path = EnsureExtension(path)
	data, err := Encode(doc)
	if err != nil {
		return "", err
	}
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to save document: %w", err)
	}
	platform.Logger().Info("document saved", "path", path, "points", len(doc.Points))
	return path, nil
}

// Load reads and validates the document at path
func Load(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	platform.Logger().Info("document loaded", "path", path, "rows", doc.Settings.Rows, "cols", doc.Settings.Cols)
	return doc, nil
}

// List returns the .mesh files in dir sorted by name. A missing directory
// yields an empty list.
func List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", dir, err)
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Name:    NameFromPath(e.Name()),
			Path:    filepath.Join(dir, e.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}
