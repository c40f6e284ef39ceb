package widgets

import "github.com/go-gooey/gooey/pkg/rendering"

// ID identifies a widget within one Manager.
type ID uint32

// RootID is the ID of a manager's root collection.
const RootID ID = 0

// Common is the rectangle state shared by every widget. X and Y are relative
// to the parent collection's origin. Widgets outside this package obtain one
// from [Manager.NewCommon]; the zero value carries RootID.
type Common struct {
	X int
	Y int
	W int
	H int

	id ID
}

// ID returns the widget's identifier.
func (c *Common) ID() ID {
	return c.id
}

// Bounds returns the widget's rectangle in parent coordinates.
func (c *Common) Bounds() rendering.Rect {
	return rendering.RectFromXYWH(c.X, c.Y, c.W, c.H)
}

// SetBounds moves and resizes the widget.
func (c *Common) SetBounds(r rendering.Rect) {
	c.X, c.Y, c.W, c.H = r.X, r.Y, r.W, r.H
}

// Widget is a node of the retained tree.
type Widget interface {
	// Paint draws the widget onto b. (offX, offY) is the absolute position
	// of the parent's origin; implementations add their own X and Y.
	Paint(b rendering.Backend, offX, offY int)

	// Common exposes the widget's rectangle state.
	Common() *Common
}

// X returns the widget's horizontal position relative to its parent.
func X(w Widget) int { return w.Common().X }

// Y returns the widget's vertical position relative to its parent.
func Y(w Widget) int { return w.Common().Y }

// Width returns the widget's width.
func Width(w Widget) int { return w.Common().W }

// Height returns the widget's height.
func Height(w Widget) int { return w.Common().H }

// IDOf returns the widget's identifier.
func IDOf(w Widget) ID { return w.Common().id }

// extent returns the right and bottom edges of w in parent coordinates.
func extent(w Widget) (right, bottom int) {
	c := w.Common()
	return c.X + c.W, c.Y + c.H
}
