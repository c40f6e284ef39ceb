package widgets

import (
	"slices"

	"github.com/go-gooey/gooey/pkg/rendering"
)

// Manager owns a widget tree: it issues IDs, keeps the arena every
// collection resolves children through, holds the focus slot and the input
// handler slots, and paints the root collection once per frame.
type Manager struct {
	arena   *arena
	root    *Collection
	focused Widget

	mouseHandlers []MouseHandler
	keyHandlers   []KeyHandler

	nextID ID
}

// NewManager returns a manager with an empty root collection.
// The first ID it issues is 1.
func NewManager() *Manager {
	a := newArena()
	root := &Collection{common: Common{id: RootID}, arena: a}
	a.put(root)
	return &Manager{
		arena:  a,
		root:   root,
		nextID: RootID + 1,
	}
}

// NextID returns a fresh widget ID.
func (m *Manager) NextID() ID {
	id := m.nextID
	m.nextID++
	return id
}

// NewCommon returns zeroed rectangle state carrying a fresh ID, for widget
// types defined outside this package.
func (m *Manager) NewCommon() Common {
	return Common{id: m.NextID()}
}

// NewCollection creates an empty collection with a fresh ID. The collection
// is registered with the manager but not attached to the tree.
func (m *Manager) NewCollection() *Collection {
	c := &Collection{common: m.NewCommon(), arena: m.arena}
	m.arena.put(c)
	return c
}

// Root returns the root collection.
func (m *Manager) Root() *Collection {
	return m.root
}

// Add appends w to the root collection.
func (m *Manager) Add(w Widget) {
	m.root.Add(w)
}

// Remove detaches the widget with the given id from the root collection.
func (m *Manager) Remove(id ID) {
	m.root.Remove(id)
}

// Widget returns the widget registered under id.
func (m *Manager) Widget(id ID) (Widget, bool) {
	return m.arena.get(id)
}

// Lookup returns the widget registered under id if it has type T.
func Lookup[T Widget](m *Manager, id ID) (T, bool) {
	var zero T
	w, ok := m.arena.get(id)
	if !ok {
		return zero, false
	}
	t, ok := w.(T)
	return t, ok
}

// Update calls fn with the rectangle state of the widget registered under
// id. It returns false if no such widget exists.
func (m *Manager) Update(id ID, fn func(*Common)) bool {
	w, ok := m.arena.get(id)
	if !ok {
		return false
	}
	fn(w.Common())
	return true
}

// Release forgets the widget registered under id. Collections that still
// list the id skip it when painting. The root collection cannot be released.
func (m *Manager) Release(id ID) {
	if id == RootID {
		return
	}
	if m.focused != nil && IDOf(m.focused) == id {
		m.focused = nil
	}
	m.arena.drop(id)
}

// Len returns the number of widgets registered with the manager, including
// the root collection.
func (m *Manager) Len() int {
	return m.arena.len()
}

// Focus sets the focused widget. Pass nil to clear focus. The widget does
// not have to be part of the tree.
func (m *Manager) Focus(w Widget) {
	m.focused = w
}

// Focused returns the focused widget, or nil.
func (m *Manager) Focused() Widget {
	return m.focused
}

// OnMouse stores a mouse handler. The manager never invokes handlers itself;
// hosts that translate platform events call them via MouseHandlers.
func (m *Manager) OnMouse(h MouseHandler) {
	if h != nil {
		m.mouseHandlers = append(m.mouseHandlers, h)
	}
}

// OnKey stores a key handler.
func (m *Manager) OnKey(h KeyHandler) {
	if h != nil {
		m.keyHandlers = append(m.keyHandlers, h)
	}
}

// MouseHandlers returns the stored mouse handlers in registration order.
func (m *Manager) MouseHandlers() []MouseHandler {
	return slices.Clone(m.mouseHandlers)
}

// KeyHandlers returns the stored key handlers in registration order.
func (m *Manager) KeyHandlers() []KeyHandler {
	return slices.Clone(m.keyHandlers)
}

// Paint paints the whole tree onto b. Hosts call it once per frame.
func (m *Manager) Paint(b rendering.Backend) {
	m.root.Paint(b, 0, 0)
}
