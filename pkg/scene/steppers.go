package scene

import (
	"time"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// Slide moves a widget by (DX, DY) over Steps steps. With Repeat it then
// slides back, forever. The start position is read on the first step.
type Slide struct {
	Tree     *widgets.Manager
	Target   widgets.ID
	DX, DY   int
	Steps    int
	Interval time.Duration
	Curve    animation.Curve
	Repeat   bool

	ctl *animation.Controller
}

// Step implements animation.Stepper.
func (s *Slide) Step() animation.Step {
	w, ok := s.Tree.Widget(s.Target)
	if !ok {
		return animation.Stop()
	}
	if s.ctl == nil {
		c := w.Common()
		x := animation.TweenInt(c.X, c.X+s.DX)
		y := animation.TweenInt(c.Y, c.Y+s.DY)
		s.ctl = s.controller()
		s.ctl.AddListener(func(v float64) {
			s.Tree.Update(s.Target, func(c *widgets.Common) {
				c.X, c.Y = x.Evaluate(v), y.Evaluate(v)
			})
		})
		s.ctl.Forward()
	}
	return s.ctl.Step()
}

func (s *Slide) controller() *animation.Controller {
	c := animation.NewController(s.Steps, s.Interval)
	c.Curve = s.Curve
	c.Repeat = s.Repeat
	return c
}

// Pulse fades a box's background from From to To over Steps steps. With
// Repeat it then fades back, forever.
type Pulse struct {
	Tree     *widgets.Manager
	Target   widgets.ID
	From, To rendering.Color
	Steps    int
	Interval time.Duration
	Curve    animation.Curve
	Repeat   bool

	ctl *animation.Controller
}

// Step implements animation.Stepper.
func (p *Pulse) Step() animation.Step {
	box, ok := widgets.Lookup[*widgets.Box](p.Tree, p.Target)
	if !ok {
		return animation.Stop()
	}
	if p.ctl == nil {
		tween := animation.TweenColor(p.From, p.To)
		p.ctl = animation.NewController(p.Steps, p.Interval)
		p.ctl.Curve = p.Curve
		p.ctl.Repeat = p.Repeat
		p.ctl.AddListener(func(v float64) {
			box.Background = tween.Evaluate(v)
		})
		p.ctl.Forward()
	}
	return p.ctl.Step()
}
