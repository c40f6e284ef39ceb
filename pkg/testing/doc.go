// Package testing provides test doubles for gooey hosts and widgets.
//
// # Recording Backend
//
// [RecordingBackend] records backend calls so tests can assert draw order
// and replay the final color of a pixel:
//
//	var rec gooeytest.RecordingBackend
//	m.Paint(&rec)
//	c, _ := rec.ColorAt(0, 0)
//
// # Animation Testing
//
// [FakeClock] drives animation countdowns deterministically:
//
//	clk := gooeytest.NewFakeClock()
//	am := animation.NewManager(animation.WithClock(clk))
//	am.Add(step, 100*time.Millisecond)
//	clk.Advance(100 * time.Millisecond)
//	am.Run()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import gooeytest "github.com/go-gooey/gooey/pkg/testing"
package testing
