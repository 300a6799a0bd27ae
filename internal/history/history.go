package history

import (
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/ytget/mesh-designer/internal/model"
)

// DefaultCapacity is the number of undo steps kept
const DefaultCapacity = 100

// Snapshot is the undoable editor state. The background color reference
// travels inside Settings.
type Snapshot struct {
	Rows     int
	Cols     int
	Points   []model.ControlPoint
	Settings model.CanvasSettings
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for identical types
		panic(fmt.Sprintf("history: copy snapshot: %v", err))
	}
	return out
}

// Manager holds the undo and redo stacks
type Manager struct {
	mu       sync.Mutex
	capacity int
	undo     []Snapshot
	redo     []Snapshot
}

// NewManager creates a manager keeping at most capacity undo steps.
// A capacity below 1 falls back to DefaultCapacity.
func NewManager(capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity}
}

// Push records the state before a mutation. The redo stack is cleared and
// the oldest entry is dropped once capacity is exceeded.
func (m *Manager) Push(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.undo = append(m.undo, s.Clone())
	if len(m.undo) > m.capacity {
		m.undo = m.undo[len(m.undo)-m.capacity:]
	}
	m.redo = nil
}

// Undo pops the latest undo entry, moving current onto the redo stack
func (m *Manager) Undo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undo) == 0 {
		return Snapshot{}, false
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, current.Clone())
	return prev, true
}

// Redo pops the latest redo entry, moving current back onto the undo stack
func (m *Manager) Redo(current Snapshot) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redo) == 0 {
		return Snapshot{}, false
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, current.Clone())
	if len(m.undo) > m.capacity {
		m.undo = m.undo[len(m.undo)-m.capacity:]
	}
	return next, true
}

// CanUndo reports whether an undo step is available
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether a redo step is available
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Len returns the number of undo steps
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo)
}

// Clear drops both stacks
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = nil
	m.redo = nil
}
