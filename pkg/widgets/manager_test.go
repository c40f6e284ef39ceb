package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-gooey/gooey/pkg/rendering"
	gooeytest "github.com/go-gooey/gooey/pkg/testing"
	"github.com/go-gooey/gooey/pkg/widgets"
)

func TestManager_IDsStartAtOneInCallOrder(t *testing.T) {
	m := widgets.NewManager()
	assert.Equal(t, widgets.RootID, m.Root().ID())

	for want := widgets.ID(1); want <= 5; want++ {
		assert.Equal(t, want, m.NextID())
	}
}

func TestManager_WidgetsGetDistinctIDs(t *testing.T) {
	m := widgets.NewManager()
	seen := map[widgets.ID]bool{widgets.RootID: true}

	for i := 0; i < 20; i++ {
		var id widgets.ID
		if i%3 == 0 {
			id = m.NewCollection().ID()
		} else {
			id = newBox(m, 0, 0, 1, 1).ID()
		}
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Equal(t, 21, m.Len())
}

func TestManager_AddRemoveDelegateToRoot(t *testing.T) {
	m := widgets.NewManager()
	b := newBox(m, 5, 5, 10, 10)

	m.Add(b)
	assert.True(t, m.Root().Contains(b.ID()))
	assert.Equal(t, 15, widgets.Width(m.Root()))

	m.Remove(b.ID())
	assert.False(t, m.Root().Contains(b.ID()))
	assert.Equal(t, 0, widgets.Width(m.Root()))
}

func TestManager_PaintStartsAtZeroOffset(t *testing.T) {
	m := widgets.NewManager()
	p := gooeytest.NewSpy(m, 7, 9, 1, 1)
	m.Add(p)

	var rec gooeytest.RecordingBackend
	m.Paint(&rec)

	require.Len(t, p.Painted, 1)
	assert.Equal(t, gooeytest.Offset{}, p.Painted[0])
}

func TestManager_LookupAndUpdate(t *testing.T) {
	m := widgets.NewManager()
	b := newBox(m, 0, 0, 10, 10)
	m.Add(b)

	got, ok := widgets.Lookup[*widgets.Box](m, b.ID())
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = widgets.Lookup[*widgets.Collection](m, b.ID())
	assert.False(t, ok, "wrong type")

	ok = m.Update(b.ID(), func(c *widgets.Common) { c.X = 30 })
	require.True(t, ok)
	assert.Equal(t, 30, widgets.X(b))

	assert.False(t, m.Update(widgets.ID(99), func(*widgets.Common) {}))
}

func TestManager_ReleaseClearsFocusAndSlot(t *testing.T) {
	m := widgets.NewManager()
	b := newBox(m, 0, 0, 1, 1)
	m.Focus(b)

	m.Release(b.ID())

	_, ok := m.Widget(b.ID())
	assert.False(t, ok)
	assert.Nil(t, m.Focused())

	m.Release(widgets.RootID)
	_, ok = m.Widget(widgets.RootID)
	assert.True(t, ok, "root is never released")
}

func TestManager_FocusSlot(t *testing.T) {
	m := widgets.NewManager()
	assert.Nil(t, m.Focused())

	detached := newBox(m, 0, 0, 1, 1)
	m.Focus(detached)
	assert.Same(t, detached, m.Focused(), "focus does not require tree membership")

	m.Focus(nil)
	assert.Nil(t, m.Focused())
}

func TestManager_HandlerSlotsAreStorageOnly(t *testing.T) {
	m := widgets.NewManager()

	var mouse []widgets.MouseEvent
	var keys []widgets.Key
	m.OnMouse(func(ev widgets.MouseEvent) { mouse = append(mouse, ev) })
	m.OnKey(func(k widgets.Key) { keys = append(keys, k) })
	m.OnMouse(nil)

	var rec gooeytest.RecordingBackend
	m.Paint(&rec)
	assert.Empty(t, mouse)
	assert.Empty(t, keys)

	require.Len(t, m.MouseHandlers(), 1)
	require.Len(t, m.KeyHandlers(), 1)

	m.MouseHandlers()[0](widgets.MouseEvent{Kind: widgets.Click, X: 1, Y: 2, Button: 1})
	m.KeyHandlers()[0](widgets.Key(27))
	assert.Equal(t, []widgets.MouseEvent{{Kind: widgets.Click, X: 1, Y: 2, Button: 1}}, mouse)
	assert.Equal(t, []widgets.Key{27}, keys)
}

func TestMouseEventKindString(t *testing.T) {
	assert.Equal(t, "wheel_up", widgets.WheelUp.String())
	assert.Equal(t, "double_click", widgets.DoubleClick.String())
	assert.Equal(t, "MouseEventKind(42)", widgets.MouseEventKind(42).String())
}

func TestCommonBounds(t *testing.T) {
	m := widgets.NewManager()
	m.NextID()
	c := m.NewCommon()
	c.SetBounds(rendering.RectFromXYWH(1, 2, 3, 4))
	assert.Equal(t, rendering.Rect{X: 1, Y: 2, W: 3, H: 4}, c.Bounds())
	assert.Equal(t, widgets.ID(2), c.ID())
}
