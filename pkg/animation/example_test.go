package animation_test

import (
	"fmt"
	"time"

	"github.com/go-gooey/gooey/pkg/animation"
	gooeytest "github.com/go-gooey/gooey/pkg/testing"
)

// This example shows an animation that re-arms itself three times and then
// retires.
func ExampleManager() {
	clk := gooeytest.NewFakeClock()
	m := animation.NewManager(animation.WithClock(clk))

	remaining := 3
	m.Add(animation.StepFunc(func() animation.Step {
		fmt.Println("step, remaining", remaining)
		if remaining == 0 {
			return animation.Stop()
		}
		remaining--
		return animation.Continue(100 * time.Millisecond)
	}), 100*time.Millisecond)

	for m.Len() > 0 {
		clk.Advance(100 * time.Millisecond)
		m.Run()
	}
	// Output:
	// step, remaining 3
	// step, remaining 2
	// step, remaining 1
	// step, remaining 0
}

// This example shows how to ease a value across a fixed number of steps.
func ExampleTween() {
	x := animation.TweenInt(0, 200)
	for i := 0; i <= 4; i++ {
		fmt.Print(x.Transform(i, 4, animation.LinearCurve), " ")
	}
	fmt.Println()
	// Output: 0 50 100 150 200
}
