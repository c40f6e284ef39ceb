package script

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// registerAPI installs the gooey table.
func (s *Stepper) registerAPI() {
	L := s.L
	t := L.NewTable()
	L.SetGlobal("gooey", t)

	// gooey.rect(id): x, y, w, h
	L.SetField(t, "rect", L.NewFunction(func(L *glua.LState) int {
		w, ok := s.tree.Widget(checkID(L, 1))
		if !ok {
			L.Push(glua.LNil)
			return 1
		}
		c := w.Common()
		L.Push(glua.LNumber(c.X))
		L.Push(glua.LNumber(c.Y))
		L.Push(glua.LNumber(c.W))
		L.Push(glua.LNumber(c.H))
		return 4
	}))

	// gooey.move(id, x, y)
	L.SetField(t, "move", L.NewFunction(func(L *glua.LState) int {
		id := checkID(L, 1)
		x, y := L.CheckInt(2), L.CheckInt(3)
		L.Push(glua.LBool(s.tree.Update(id, func(c *widgets.Common) {
			c.X, c.Y = x, y
		})))
		return 1
	}))

	// gooey.resize(id, w, h)
	L.SetField(t, "resize", L.NewFunction(func(L *glua.LState) int {
		id := checkID(L, 1)
		w, h := L.CheckInt(2), L.CheckInt(3)
		L.Push(glua.LBool(s.tree.Update(id, func(c *widgets.Common) {
			c.W, c.H = w, h
		})))
		return 1
	}))

	// gooey.background(id, color)
	L.SetField(t, "background", L.NewFunction(func(L *glua.LState) int {
		id := checkID(L, 1)
		col, err := rendering.ParseColor(L.CheckString(2))
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
		box, ok := widgets.Lookup[*widgets.Box](s.tree, id)
		if ok {
			box.Background = col
		}
		L.Push(glua.LBool(ok))
		return 1
	}))
}

func checkID(L *glua.LState, n int) widgets.ID {
	v := L.CheckInt(n)
	if v < 0 {
		L.ArgError(n, "widget id must be non-negative")
	}
	return widgets.ID(v)
}
