package palette

import (
	"sync"

	"github.com/ytget/mesh-designer/internal/model"
)

// DefaultHexColors are the preset colors seeded into a fresh palette, ids 1..7.
var DefaultHexColors = []string{
	"FF7766EE",
	"FF8899FF",
	"FF429BED",
	"FF4FC1A6",
	"FFF0C03E",
	"FFFF5599",
	"FFFF00FF",
}

// Palette is an ordered set of colors keyed by id
type Palette struct {
	mu       sync.RWMutex
	colors   []model.PaletteColor
	maxID    model.ColorID
	onUpdate func()
}

// New creates a palette holding the given colors in order. Colors with a
// missing (< 1) or duplicate id get a fresh one.
func New(colors ...model.PaletteColor) *Palette {
	p := &Palette{}
	seen := make(map[model.ColorID]bool, len(colors))
	for _, c := range colors {
		if c.ID > p.maxID {
			p.maxID = c.ID
		}
	}
	for _, c := range colors {
		if c.ID < 1 || seen[c.ID] {
			p.maxID++
			c.ID = p.maxID
		}
		seen[c.ID] = true
		p.colors = append(p.colors, c)
	}
	return p
}

// NewWithDefaults creates a palette seeded with the preset colors
func NewWithDefaults() *Palette {
	return New(DefaultColors()...)
}

// DefaultColors returns the preset colors with ids 1..len(DefaultHexColors)
func DefaultColors() []model.PaletteColor {
	colors := make([]model.PaletteColor, 0, len(DefaultHexColors))
	for i, hex := range DefaultHexColors {
		c, err := model.ParseHex(hex)
		if err != nil {
			panic("palette: bad default color " + hex)
		}
		c.ID = model.ColorID(i + 1)
		c.Preset = true
		colors = append(colors, c)
	}
	return colors
}

// SetUpdateCallback sets the function called after every change
func (p *Palette) SetUpdateCallback(callback func()) {
	p.mu.Lock()
	p.onUpdate = callback
	p.mu.Unlock()
}

// Add stores c under a fresh id and returns it. Ids are never reused,
// even after the color holding one is removed.
func (p *Palette) Add(c model.PaletteColor) model.ColorID {
	p.mu.Lock()
	p.maxID++
	c.ID = p.maxID
	p.colors = append(p.colors, c)
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback()
	}
	return c.ID
}

// Remove deletes the color with the given id and reports whether it existed.
// Points still referencing it resolve to transparent afterwards.
func (p *Palette) Remove(id model.ColorID) bool {
	p.mu.Lock()
	idx := p.indexOf(id)
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	p.colors = append(p.colors[:idx], p.colors[idx+1:]...)
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback()
	}
	return true
}

// Update replaces the components of an existing color, keeping its id and preset flag
func (p *Palette) Update(id model.ColorID, c model.PaletteColor) bool {
	p.mu.Lock()
	idx := p.indexOf(id)
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	c.ID = id
	c.Preset = p.colors[idx].Preset
	p.colors[idx] = c
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback()
	}
	return true
}

// Lookup returns the color stored under id
func (p *Palette) Lookup(id model.ColorID) (model.PaletteColor, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	idx := p.indexOf(id)
	if idx < 0 {
		return model.PaletteColor{}, false
	}
	return p.colors[idx], true
}

// Contains reports whether id is in the palette
func (p *Palette) Contains(id model.ColorID) bool {
	_, ok := p.Lookup(id)
	return ok
}

// Resolve returns the float color for id. Unknown ids and NoColor resolve to transparent.
func (p *Palette) Resolve(id model.ColorID) model.Color {
	c, ok := p.Lookup(id)
	if !ok {
		return model.Transparent
	}
	return c.RGBA()
}

// All returns every color in insertion order
func (p *Palette) All() []model.PaletteColor {
	return p.filter(func(model.PaletteColor) bool { return true })
}

// Presets returns the preset colors in insertion order
func (p *Palette) Presets() []model.PaletteColor {
	return p.filter(func(c model.PaletteColor) bool { return c.Preset })
}

// Custom returns the user-added colors in insertion order
func (p *Palette) Custom() []model.PaletteColor {
	return p.filter(func(c model.PaletteColor) bool { return !c.Preset })
}

// IDs returns the ids of all colors in insertion order
func (p *Palette) IDs() []model.ColorID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]model.ColorID, len(p.colors))
	for i, c := range p.colors {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of colors
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}

// NextID returns the id the next Add will assign
func (p *Palette) NextID() model.ColorID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxID + 1
}

// Snapshot returns an immutable copy of the palette
func (p *Palette) Snapshot() *Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := &Snapshot{
		colors: make([]model.PaletteColor, len(p.colors)),
		byID:   make(map[model.ColorID]model.Color, len(p.colors)),
	}
	copy(s.colors, p.colors)
	for _, c := range p.colors {
		s.byID[c.ID] = c.RGBA()
	}
	return s
}

// reserve makes sure future ids start above next-1. Used when loading a
// persisted palette whose highest ids were removed before saving.
func (p *Palette) reserve(next model.ColorID) {
	p.mu.Lock()
	if next-1 > p.maxID {
		p.maxID = next - 1
	}
	p.mu.Unlock()
}

func (p *Palette) filter(keep func(model.PaletteColor) bool) []model.PaletteColor {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.PaletteColor, 0, len(p.colors))
	for _, c := range p.colors {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (p *Palette) indexOf(id model.ColorID) int {
	for i, c := range p.colors {
		if c.ID == id {
			return i
		}
	}
	return -1
}
