package palette

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
)

// paletteFile is the on-disk layout of palette.toml
type paletteFile struct {
	NextID int64       `toml:"next_id"`
	Colors []fileColor `toml:"colors"`
}

type fileColor struct {
	ID     int64  `toml:"id"`
	Hex    string `toml:"hex"`
	Preset bool   `toml:"preset"`
}

// ErrUnreadableStore is returned by Save after Load failed on an existing
// file. The file is left for the user to repair.
var ErrUnreadableStore = errors.New("palette file could not be read, refusing to overwrite it")

// Store persists a palette to a TOML file
type Store struct {
	path string

	mu      sync.Mutex
	loadErr error
}

// NewStore creates a store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the palette. A missing file yields the default palette.
// After a failed load Save refuses to write until a later Load succeeds.
func (s *Store) Load() (*Palette, error) {
	p, err := s.load()

	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
	return p, err
}

func (s *Store) load() (*Palette, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		platform.Logger().Debug("palette file missing, using defaults", "path", s.path)
		return NewWithDefaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", s.path, err)
	}

	p, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette %s: %w", s.path, err)
	}
	platform.Logger().Info("palette loaded", "path", s.path, "colors", p.Len())
	return p, nil
}

// Save writes the palette atomically
func (s *Store) Save(p *Palette) error {
	s.mu.Lock()
	loadErr := s.loadErr
	s.mu.Unlock()
	if loadErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadableStore, s.path, loadErr)
	}

	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}
	platform.Logger().Debug("palette saved", "path", s.path, "colors", p.Len())
	return nil
}

// Marshal encodes the palette as TOML
func Marshal(p *Palette) ([]byte, error) {
	file := paletteFile{NextID: int64(p.NextID())}
	for _, c := range p.All() {
		file.Colors = append(file.Colors, fileColor{
			ID:     int64(c.ID),
			Hex:    model.FormatHex(c, true),
			Preset: c.Preset,
		})
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a TOML palette. An empty color list yields the defaults.
func Unmarshal(data []byte) (*Palette, error) {
	var file paletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	if len(file.Colors) == 0 {
		return NewWithDefaults(), nil
	}

	colors := make([]model.PaletteColor, 0, len(file.Colors))
	for i, fc := range file.Colors {
		c, err := model.ParseHex(fc.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		c.ID = model.ColorID(fc.ID)
		c.Preset = fc.Preset
		colors = append(colors, c)
	}

	p := New(colors...)
	p.reserve(model.ColorID(file.NextID))
	return p, nil
}
