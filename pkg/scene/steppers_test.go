package scene_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/scene"
	"github.com/go-gooey/gooey/pkg/widgets"
)

func TestSlide(t *testing.T) {
	tree := widgets.NewManager()
	box := widgets.NewBox(tree, 10, 0, 1, 1, widgets.Border{}, rendering.ColorRed)
	tree.Add(box)

	s := &scene.Slide{Tree: tree, Target: box.ID(), DX: 10, DY: -4, Steps: 2, Interval: time.Millisecond}
	d, ok := s.Step().Next()
	assert.True(t, ok)
	assert.Equal(t, time.Millisecond, d)
	assert.Equal(t, rendering.Rect{X: 15, Y: -2, W: 1, H: 1}, box.Common().Bounds())

	assert.True(t, s.Step().Stopped())
	assert.Equal(t, 20, widgets.X(box))
	assert.Equal(t, -4, widgets.Y(box))
}

func TestSlide_RepeatReverses(t *testing.T) {
	tree := widgets.NewManager()
	box := widgets.NewBox(tree, 0, 0, 1, 1, widgets.Border{}, rendering.ColorRed)
	tree.Add(box)

	s := &scene.Slide{Tree: tree, Target: box.ID(), DX: 4, Steps: 2, Interval: time.Millisecond, Curve: animation.LinearCurve, Repeat: true}
	var xs []int
	for range 6 {
		assert.False(t, s.Step().Stopped())
		xs = append(xs, widgets.X(box))
	}
	assert.Equal(t, []int{2, 4, 2, 0, 2, 4}, xs)
}

func TestSlide_MissingTargetStops(t *testing.T) {
	s := &scene.Slide{Tree: widgets.NewManager(), Target: 42, Steps: 1}
	assert.True(t, s.Step().Stopped())
}

func TestPulse(t *testing.T) {
	tree := widgets.NewManager()
	box := widgets.NewBox(tree, 0, 0, 1, 1, widgets.Border{}, rendering.ColorBlack)
	tree.Add(box)

	p := &scene.Pulse{Tree: tree, Target: box.ID(), From: rendering.ColorBlack, To: rendering.ColorWhite, Steps: 2, Interval: time.Millisecond, Repeat: true}
	p.Step()
	assert.Equal(t, rendering.FromComponents(0x80, 0x80, 0x80), box.Background)
	p.Step()
	assert.Equal(t, rendering.ColorWhite, box.Background)
	p.Step()
	p.Step()
	assert.Equal(t, rendering.ColorBlack, box.Background)
}

func TestPulse_NonBoxStops(t *testing.T) {
	tree := widgets.NewManager()
	c := tree.NewCollection()
	tree.Add(c)
	p := &scene.Pulse{Tree: tree, Target: c.ID(), Steps: 1}
	assert.True(t, p.Step().Stopped())
}
