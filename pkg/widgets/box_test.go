package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gooey/gooey/pkg/rendering"
	gooeytest "github.com/go-gooey/gooey/pkg/testing"
	"github.com/go-gooey/gooey/pkg/widgets"
)

var (
	bg     = rendering.FromRGB(0x101010FF)
	top    = rendering.FromRGB(0xAA0000FF)
	left   = rendering.FromRGB(0x00AA00FF)
	bottom = rendering.FromRGB(0x0000AAFF)
	right  = rendering.FromRGB(0xAAAA00FF)
)

func fourColorBorder(th int) widgets.Border {
	return widgets.Border{
		Top:    widgets.Edge{Thickness: th, Color: top},
		Left:   widgets.Edge{Thickness: th, Color: left},
		Bottom: widgets.Edge{Thickness: th, Color: bottom},
		Right:  widgets.Edge{Thickness: th, Color: right},
	}
}

func TestBox_DrawOrder(t *testing.T) {
	m := widgets.NewManager()
	b := widgets.NewBox(m, 10, 20, 30, 40, fourColorBorder(2), bg)

	var rec gooeytest.RecordingBackend
	b.Paint(&rec, 1, 2)

	want := []gooeytest.DrawOp{
		{Op: "fillRect", X: 11, Y: 22, W: 30, H: 40, Color: bg},
		{Op: "fillRect", X: 11, Y: 22, W: 30, H: 2, Color: top},
		{Op: "fillRect", X: 11, Y: 22, W: 2, H: 40, Color: left},
		{Op: "fillRect", X: 11, Y: 22 + 40 - 2, W: 30, H: 2, Color: bottom},
		{Op: "fillRect", X: 11 + 30 - 2, Y: 22, W: 2, H: 40, Color: right},
	}
	assert.Equal(t, want, rec.Ops)
}

func TestBox_CornerPrecedence(t *testing.T) {
	m := widgets.NewManager()
	b := widgets.NewBox(m, 0, 0, 10, 10, fourColorBorder(1), bg)

	var rec gooeytest.RecordingBackend
	b.Paint(&rec, 0, 0)

	tests := []struct {
		name string
		x, y int
		want rendering.Color
	}{
		{"top-left", 0, 0, left},
		{"top-right", 9, 0, right},
		{"bottom-left", 0, 9, bottom},
		{"bottom-right", 9, 9, right},
		{"top edge", 5, 0, top},
		{"left edge", 0, 5, left},
		{"bottom edge", 5, 9, bottom},
		{"right edge", 9, 5, right},
		{"interior", 5, 5, bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.ColorAt(tt.x, tt.y)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBox_UsesOnlyFillRect(t *testing.T) {
	m := widgets.NewManager()
	b := widgets.NewBox(m, 0, 0, 4, 4, widgets.DualBorder(1, top, bottom), bg)

	var rec gooeytest.RecordingBackend
	b.Paint(&rec, 0, 0)

	for _, op := range rec.Ops {
		assert.Equal(t, "fillRect", op.Op)
	}
}

func TestDualBorder(t *testing.T) {
	br := widgets.DualBorder(3, top, bottom)
	assert.Equal(t, widgets.Edge{Thickness: 3, Color: top}, br.Top)
	assert.Equal(t, widgets.Edge{Thickness: 3, Color: top}, br.Left)
	assert.Equal(t, widgets.Edge{Thickness: 3, Color: bottom}, br.Bottom)
	assert.Equal(t, widgets.Edge{Thickness: 3, Color: bottom}, br.Right)
}

func TestUniformBorder(t *testing.T) {
	br := widgets.UniformBorder(2, left)
	e := widgets.Edge{Thickness: 2, Color: left}
	assert.Equal(t, widgets.Border{Top: e, Left: e, Bottom: e, Right: e}, br)
}

func TestBox_NestedInCollections(t *testing.T) {
	m := widgets.NewManager()
	panel := m.NewCollection()
	panel.Common().X, panel.Common().Y = 100, 50
	b := widgets.NewBox(m, 5, 5, 4, 4, widgets.UniformBorder(0, top), bg)
	panel.Add(b)
	m.Add(panel)

	var rec gooeytest.RecordingBackend
	m.Paint(&rec)

	require.NotEmpty(t, rec.Ops)
	assert.Equal(t, 105, rec.Ops[0].X)
	assert.Equal(t, 55, rec.Ops[0].Y)
}
