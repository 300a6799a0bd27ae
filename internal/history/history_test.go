package history

import (
	"testing"

	"github.com/ytget/mesh-designer/internal/model"
)

func snap(rows int) Snapshot {
	return Snapshot{
		Rows:     rows,
		Cols:     2,
		Points:   []model.ControlPoint{{Row: 0, Col: 0, X: float64(rows), ColorID: 1}},
		Settings: model.DefaultCanvasSettings(),
	}
}

func TestUndoRedo(t *testing.T) {
	m := NewManager(0)

	if m.CanUndo() || m.CanRedo() {
		t.Fatal("New manager should have empty stacks")
	}

	m.Push(snap(1))
	m.Push(snap(2))

	got, ok := m.Undo(snap(3))
	if !ok || got.Rows != 2 {
		t.Fatalf("Undo() = %v, %v, expected rows 2", got.Rows, ok)
	}
	if !m.CanRedo() {
		t.Fatal("CanRedo() = false after Undo")
	}

	got, ok = m.Redo(snap(2))
	if !ok || got.Rows != 3 {
		t.Fatalf("Redo() = %v, %v, expected rows 3", got.Rows, ok)
	}

	got, ok = m.Undo(snap(3))
	if !ok || got.Rows != 2 {
		t.Errorf("Undo() after redo = %v, %v, expected rows 2", got.Rows, ok)
	}
	got, ok = m.Undo(snap(2))
	if !ok || got.Rows != 1 {
		t.Errorf("Undo() = %v, %v, expected rows 1", got.Rows, ok)
	}
	if _, ok := m.Undo(snap(1)); ok {
		t.Error("Undo() on empty stack should report false")
	}
}

func TestPush_ClearsRedo(t *testing.T) {
	m := NewManager(10)
	m.Push(snap(1))
	m.Undo(snap(2))

	m.Push(snap(5))
	if m.CanRedo() {
		t.Error("Push should clear the redo stack")
	}
	if _, ok := m.Redo(snap(6)); ok {
		t.Error("Redo() after Push should report false")
	}
}

func TestPush_Capacity(t *testing.T) {
	m := NewManager(DefaultCapacity)
	for i := 0; i < DefaultCapacity+25; i++ {
		m.Push(snap(i))
	}

	if m.Len() != DefaultCapacity {
		t.Fatalf("Len() = %d, expected %d", m.Len(), DefaultCapacity)
	}

	var last Snapshot
	for m.CanUndo() {
		last, _ = m.Undo(snap(-1))
	}
	if last.Rows != 25 {
		t.Errorf("Oldest kept snapshot rows = %d, expected 25", last.Rows)
	}
}

func TestPush_DeepCopies(t *testing.T) {
	m := NewManager(5)
	s := snap(1)
	m.Push(s)

	s.Points[0].X = 42

	got, _ := m.Undo(snap(2))
	if got.Points[0].X != 1 {
		t.Errorf("Stored snapshot changed with caller's slice: X = %v", got.Points[0].X)
	}
}

func TestClear(t *testing.T) {
	m := NewManager(5)
	m.Push(snap(1))
	m.Push(snap(2))
	m.Undo(snap(3))

	m.Clear()
	if m.CanUndo() || m.CanRedo() || m.Len() != 0 {
		t.Error("Clear() should empty both stacks")
	}
}
