package testing

import (
	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// Offset is a paint offset observed by a Spy.
type Offset struct {
	X int
	Y int
}

// Spy is a widget that records the offsets it is painted with and draws
// nothing.
type Spy struct {
	common widgets.Common

	Painted []Offset
}

// NewSpy creates a spy at (x, y) with size w×h and an ID issued by m.
func NewSpy(m *widgets.Manager, x, y, w, h int) *Spy {
	p := &Spy{common: m.NewCommon()}
	p.common.SetBounds(rendering.RectFromXYWH(x, y, w, h))
	return p
}

// Common exposes the spy's rectangle state.
func (p *Spy) Common() *widgets.Common {
	return &p.common
}

// Paint records the offset.
func (p *Spy) Paint(_ rendering.Backend, offX, offY int) {
	p.Painted = append(p.Painted, Offset{X: offX, Y: offY})
}
