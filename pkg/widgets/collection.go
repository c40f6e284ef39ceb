package widgets

import (
	"slices"

	"github.com/go-gooey/gooey/pkg/rendering"
)

// Collection is a widget composed of an ordered list of children.
//
// Children paint in insertion order at the collection's origin, so later
// children draw over earlier ones. The collection's W and H are kept equal
// to the furthest right and bottom edges among its children, or zero when
// it is empty.
type Collection struct {
	common   Common
	arena    *arena
	children []ID
}

// Common exposes the collection's rectangle state.
func (c *Collection) Common() *Common {
	return &c.common
}

// ID returns the collection's identifier.
func (c *Collection) ID() ID {
	return c.common.id
}

// Add appends w to the collection and registers it with the owning
// manager's arena. The bounding extent grows to include w.
//
// Add ignores w if its ID is already bound to a different widget, such as
// a widget whose Common was not issued by the manager. A zero-value
// Collection resolves children through an arena of its own.
func (c *Collection) Add(w Widget) {
	if w == nil {
		return
	}
	if c.arena == nil {
		c.arena = newArena()
	}
	if !c.arena.put(w) {
		return
	}
	c.children = append(c.children, IDOf(w))

	right, bottom := extent(w)
	if right > c.common.W {
		c.common.W = right
	}
	if bottom > c.common.H {
		c.common.H = bottom
	}
}

// Remove drops the first child with the given id and recomputes the
// bounding extent from the remaining children. Unknown ids are ignored.
//
// The widget stays in the manager's arena so it can be re-added; see
// [Manager.Release].
func (c *Collection) Remove(id ID) {
	i := slices.Index(c.children, id)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.Relayout()
}

// Relayout recomputes W and H from scratch. Owners that move or resize
// children directly call this to refresh the aggregate bounds.
func (c *Collection) Relayout() {
	var w, h int
	for _, id := range c.children {
		child, ok := c.arena.get(id)
		if !ok {
			continue
		}
		right, bottom := extent(child)
		w = max(w, right)
		h = max(h, bottom)
	}
	c.common.W = w
	c.common.H = h
}

// Paint paints every child, offsetting by the collection's own position.
func (c *Collection) Paint(b rendering.Backend, offX, offY int) {
	x := offX + c.common.X
	y := offY + c.common.Y
	for _, id := range c.children {
		child, ok := c.arena.get(id)
		if !ok {
			continue
		}
		child.Paint(b, x, y)
	}
}

// Len returns the number of children.
func (c *Collection) Len() int {
	return len(c.children)
}

// Children returns the child IDs in paint order.
func (c *Collection) Children() []ID {
	return slices.Clone(c.children)
}

// Contains reports whether id is a direct child.
func (c *Collection) Contains(id ID) bool {
	return slices.Contains(c.children, id)
}

// Bounds returns the collection's rectangle in parent coordinates.
func (c *Collection) Bounds() rendering.Rect {
	return c.common.Bounds()
}
