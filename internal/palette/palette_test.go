package palette

import (
	"sync"
	"testing"

	"github.com/ytget/mesh-designer/internal/model"
)

func TestNewWithDefaults(t *testing.T) {
	p := NewWithDefaults()

	if p.Len() != len(DefaultHexColors) {
		t.Fatalf("Len() = %d, expected %d", p.Len(), len(DefaultHexColors))
	}
	for i, c := range p.All() {
		if c.ID != model.ColorID(i+1) {
			t.Errorf("All()[%d].ID = %d, expected %d", i, c.ID, i+1)
		}
		if !c.Preset {
			t.Errorf("All()[%d] should be a preset", i)
		}
		if got := c.Hex(true); got != DefaultHexColors[i] {
			t.Errorf("All()[%d].Hex = %s, expected %s", i, got, DefaultHexColors[i])
		}
	}
	if len(p.Custom()) != 0 {
		t.Errorf("Custom() = %v, expected empty", p.Custom())
	}
}

func TestAdd_NeverReusesIDs(t *testing.T) {
	p := NewWithDefaults()

	a := p.Add(model.NewPaletteColor(1, 2, 3))
	if a != 8 {
		t.Errorf("Add() = %d, expected 8", a)
	}
	if !p.Remove(a) {
		t.Fatal("Remove() = false, expected true")
	}
	b := p.Add(model.NewPaletteColor(4, 5, 6))
	if b == a {
		t.Errorf("Add() reused id %d", a)
	}
	if b != 9 {
		t.Errorf("Add() = %d, expected 9", b)
	}
}

func TestNew_AssignsMissingAndDuplicateIDs(t *testing.T) {
	p := New(
		model.PaletteColor{ID: 4, Red: 1, Alpha: 1},
		model.PaletteColor{ID: 0, Red: 2, Alpha: 1},
		model.PaletteColor{ID: 4, Red: 3, Alpha: 1},
	)

	ids := p.IDs()
	expected := []model.ColorID{4, 5, 6}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("IDs()[%d] = %d, expected %d", i, ids[i], expected[i])
		}
	}
}

func TestResolve(t *testing.T) {
	p := New(model.PaletteColor{ID: 1, Red: 255, Alpha: 0.5})

	got := p.Resolve(1)
	if got.R != 1 || got.G != 0 || got.A != 0.5 {
		t.Errorf("Resolve(1) = %+v", got)
	}

	for _, id := range []model.ColorID{model.NoColor, 0, 99} {
		if got := p.Resolve(id); got != model.Transparent {
			t.Errorf("Resolve(%d) = %+v, expected transparent", id, got)
		}
	}
}

func TestRemove_Unknown(t *testing.T) {
	p := NewWithDefaults()
	if p.Remove(42) {
		t.Error("Remove(42) = true, expected false")
	}
	if p.Len() != 7 {
		t.Errorf("Len() = %d, expected 7", p.Len())
	}
}

func TestPresetsAndCustom(t *testing.T) {
	p := NewWithDefaults()
	p.Add(model.NewPaletteColor(10, 20, 30))
	p.Add(model.NewPaletteColor(40, 50, 60))
	p.Remove(3)

	if n := len(p.Presets()); n != 6 {
		t.Errorf("len(Presets()) = %d, expected 6", n)
	}
	custom := p.Custom()
	if len(custom) != 2 {
		t.Fatalf("len(Custom()) = %d, expected 2", len(custom))
	}
	if custom[0].Red != 10 || custom[1].Red != 40 {
		t.Errorf("Custom() order = %v", custom)
	}
}

func TestUpdate(t *testing.T) {
	p := NewWithDefaults()

	if !p.Update(2, model.NewPaletteColor(9, 9, 9)) {
		t.Fatal("Update(2) = false, expected true")
	}
	c, ok := p.Lookup(2)
	if !ok || c.Red != 9 || !c.Preset || c.ID != 2 {
		t.Errorf("Lookup(2) = %+v, %v", c, ok)
	}
	if p.Update(100, model.NewPaletteColor(1, 1, 1)) {
		t.Error("Update(100) = true, expected false")
	}
}

func TestUpdateCallback(t *testing.T) {
	p := NewWithDefaults()
	calls := 0
	p.SetUpdateCallback(func() { calls++ })

	id := p.Add(model.NewPaletteColor(1, 1, 1))
	p.Remove(id)
	p.Remove(id)

	if calls != 2 {
		t.Errorf("callback called %d times, expected 2", calls)
	}
}

func TestSnapshot_Independent(t *testing.T) {
	p := NewWithDefaults()
	snap := p.Snapshot()

	before := snap.Resolve(1)
	p.Remove(1)
	p.Add(model.NewPaletteColor(0, 0, 0))

	if snap.Len() != 7 {
		t.Errorf("Snapshot Len() = %d, expected 7", snap.Len())
	}
	if snap.Resolve(1) != before {
		t.Error("Snapshot must not observe later palette changes")
	}
	if snap.Resolve(model.NoColor) != model.Transparent {
		t.Error("Snapshot Resolve(NoColor) should be transparent")
	}
	if _, ok := snap.Lookup(8); ok {
		t.Error("Snapshot should not contain colors added later")
	}
}

func TestConcurrentAccess(t *testing.T) {
	p := NewWithDefaults()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.Add(model.NewPaletteColor(1, 2, 3))
		}()
		go func() {
			defer wg.Done()
			_ = p.Resolve(1)
			_ = p.Snapshot()
		}()
	}
	wg.Wait()

	if p.Len() != 15 {
		t.Errorf("Len() = %d, expected 15", p.Len())
	}
	seen := make(map[model.ColorID]bool)
	for _, id := range p.IDs() {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
}
