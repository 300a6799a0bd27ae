package palette

import "github.com/ytget/mesh-designer/internal/model"

// Snapshot is a read-only copy of a palette that can be shared with
// background renderers without locking.
type Snapshot struct {
	colors []model.PaletteColor
	byID   map[model.ColorID]model.Color
}

// Resolve returns the float color for id; unknown ids resolve to transparent
func (s *Snapshot) Resolve(id model.ColorID) model.Color {
	if c, ok := s.byID[id]; ok {
		return c
	}
	return model.Transparent
}

// Lookup returns the palette color stored under id
func (s *Snapshot) Lookup(id model.ColorID) (model.PaletteColor, bool) {
	for _, c := range s.colors {
		if c.ID == id {
			return c, true
		}
	}
	return model.PaletteColor{}, false
}

// Colors returns a copy of the colors in insertion order
func (s *Snapshot) Colors() []model.PaletteColor {
	out := make([]model.PaletteColor, len(s.colors))
	copy(out, s.colors)
	return out
}

// Len returns the number of colors
func (s *Snapshot) Len() int {
	return len(s.colors)
}
