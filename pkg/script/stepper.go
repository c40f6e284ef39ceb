// Package script runs animation steps written in Lua.
//
// A script defines a global function step(id, tick). It is called each time
// the animation's countdown fires, with the id of the target widget and a
// tick counter starting at 0. Returning a number re-arms the animation with
// that delay in milliseconds; returning nil or false stops it.
//
//	function step(id, tick)
//	  local x, y = gooey.rect(id)
//	  gooey.move(id, x + 1, y)
//	  if tick < 60 then return 16 end
//	end
//
// The gooey table exposes:
//
//	gooey.rect(id)            -> x, y, w, h (nil if id is unknown)
//	gooey.move(id, x, y)      -> true if id is known
//	gooey.resize(id, w, h)    -> true if id is known
//	gooey.background(id, c)   -> true if id is a box; c is a color string
//
// Only the base, table, string and math libraries are loaded, and the base
// functions that reach the file system or compile code (dofile, loadfile,
// load, loadstring) are removed.
package script

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/widgets"
)

var (
	// ErrNoStep is returned when a script does not define step.
	ErrNoStep = stderrors.New("script does not define a step function")
	// ErrBadReturn is reported when step returns something other than a
	// number, nil or false.
	ErrBadReturn = stderrors.New("step must return a number, nil or false")
)

// Stepper is an animation.Stepper backed by a Lua state. Each Stepper owns
// its own state; it is closed when the animation stops.
type Stepper struct {
	L      *glua.LState
	name   string
	tree   *widgets.Manager
	target widgets.ID
	step   *glua.LFunction
	tick   int
}

var _ animation.Stepper = (*Stepper)(nil)

// New compiles source and returns a stepper targeting the widget target.
// name appears in error messages and stack traces.
func New(tree *widgets.Manager, target widgets.ID, name, source string) (*Stepper, error) {
	L := glua.NewState(glua.Options{SkipOpenLibs: true})
	if err := openLibs(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	s := &Stepper{L: L, name: name, tree: tree, target: target}
	s.registerAPI()

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 0, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	step, ok := L.GetGlobal("step").(*glua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("script %s: %w", name, ErrNoStep)
	}
	s.step = step
	return s, nil
}

// LoadFile reads a script from path and compiles it with New.
func LoadFile(tree *widgets.Manager, target widgets.ID, path string) (*Stepper, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(tree, target, path, string(src))
}

func openLibs(L *glua.LState) error {
	for _, lib := range []struct {
		name string
		fn   glua.LGFunction
	}{
		{glua.BaseLibName, glua.OpenBase},
		{glua.TabLibName, glua.OpenTable},
		{glua.StringLibName, glua.OpenString},
		{glua.MathLibName, glua.OpenMath},
	} {
		if err := L.CallByParam(glua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, glua.LString(lib.name)); err != nil {
			return err
		}
	}
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, glua.LNil)
	}
	return nil
}

var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

// Step calls the script's step function once.
func (s *Stepper) Step() animation.Step {
	if s.L == nil {
		return animation.Stop()
	}
	tick := s.tick
	s.tick++

	if err := s.L.CallByParam(glua.P{
		Fn:      s.step,
		NRet:    1,
		Protect: true,
	}, glua.LNumber(s.target), glua.LNumber(tick)); err != nil {
		return s.fail(err)
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)

	switch v := ret.(type) {
	case glua.LNumber:
		return animation.Continue(time.Duration(float64(v) * float64(time.Millisecond)))
	case *glua.LNilType:
		s.Close()
		return animation.Stop()
	case glua.LBool:
		if !bool(v) {
			s.Close()
			return animation.Stop()
		}
	}
	return s.fail(fmt.Errorf("%w, got %s", ErrBadReturn, ret.Type()))
}

func (s *Stepper) fail(err error) animation.Step {
	errors.Report(&errors.GooeyError{
		Op:         "script.Stepper.Step(" + s.name + ")",
		Kind:       errors.KindScript,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	})
	s.Close()
	return animation.Stop()
}

// Ticks returns the number of times step has been called.
func (s *Stepper) Ticks() int {
	return s.tick
}

// Close releases the Lua state. Step returns Stop after Close.
func (s *Stepper) Close() {
	if s.L != nil {
		s.L.Close()
		s.L = nil
	}
}
