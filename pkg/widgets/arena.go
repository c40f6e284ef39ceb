package widgets

// arena owns widgets on behalf of a Manager. Collections and application
// code refer to widgets by ID and resolve them here. A nil arena is empty.
type arena struct {
	slots map[ID]Widget
}

func newArena() *arena {
	return &arena{slots: make(map[ID]Widget)}
}

// put binds w to its ID. It reports false, leaving the arena unchanged, if
// the ID is already bound to a different widget.
func (a *arena) put(w Widget) bool {
	id := IDOf(w)
	if cur, ok := a.slots[id]; ok && cur.Common() != w.Common() {
		return false
	}
	a.slots[id] = w
	return true
}

func (a *arena) get(id ID) (Widget, bool) {
	if a == nil {
		return nil, false
	}
	w, ok := a.slots[id]
	return w, ok
}

func (a *arena) drop(id ID) {
	delete(a.slots, id)
}

func (a *arena) len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}
