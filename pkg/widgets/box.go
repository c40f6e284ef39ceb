package widgets

import "github.com/go-gooey/gooey/pkg/rendering"

// Edge is one side of a Border.
type Edge struct {
	Thickness int
	Color     rendering.Color
}

// Border describes the four edges drawn around a Box.
type Border struct {
	Top    Edge
	Left   Edge
	Bottom Edge
	Right  Edge
}

// UniformBorder returns a border with the same thickness and color on
// every edge.
func UniformBorder(thickness int, c rendering.Color) Border {
	e := Edge{Thickness: thickness, Color: c}
	return Border{Top: e, Left: e, Bottom: e, Right: e}
}

// DualBorder returns a bevel: top and left edges use upper, bottom and
// right edges use lower.
func DualBorder(thickness int, upper, lower rendering.Color) Border {
	u := Edge{Thickness: thickness, Color: upper}
	l := Edge{Thickness: thickness, Color: lower}
	return Border{Top: u, Left: u, Bottom: l, Right: l}
}

// Box is a filled rectangle with a border.
type Box struct {
	common Common

	Border     Border
	Background rendering.Color
}

// NewBox creates a box with an ID issued by m and registers it with m.
// The box is not attached to the tree until added to a collection.
func NewBox(m *Manager, x, y, w, h int, border Border, background rendering.Color) *Box {
	b := &Box{
		common:     m.NewCommon(),
		Border:     border,
		Background: background,
	}
	b.common.X, b.common.Y, b.common.W, b.common.H = x, y, w, h
	m.arena.put(b)
	return b
}

// Common exposes the box's rectangle state.
func (b *Box) Common() *Common {
	return &b.common
}

// ID returns the box's identifier.
func (b *Box) ID() ID {
	return b.common.id
}

// Paint fills the background, then draws the top, left, bottom and right
// strips in that order. At a corner the strip drawn later wins.
func (b *Box) Paint(be rendering.Backend, offX, offY int) {
	r := b.common.Bounds().Translate(offX, offY)
	x, y, w, h := r.X, r.Y, r.W, r.H
	br := b.Border

	be.FillRect(x, y, w, h, b.Background)
	be.FillRect(x, y, w, br.Top.Thickness, br.Top.Color)
	be.FillRect(x, y, br.Left.Thickness, h, br.Left.Color)
	be.FillRect(x, y+h-br.Bottom.Thickness, w, br.Bottom.Thickness, br.Bottom.Color)
	be.FillRect(x+w-br.Right.Thickness, y, br.Right.Thickness, h, br.Right.Color)
}
