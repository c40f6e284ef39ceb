package animation

import (
	"fmt"
	"time"
)

// Step is the outcome of advancing an animation: either continue after a
// delay, or stop.
type Step struct {
	delay time.Duration
	stop  bool
}

// Continue re-arms the animation to run again after d.
func Continue(d time.Duration) Step {
	return Step{delay: d}
}

// Stop retires the animation.
func Stop() Step {
	return Step{stop: true}
}

// Next returns the re-arm delay and true, or false if the step stops the
// animation.
func (s Step) Next() (time.Duration, bool) {
	if s.stop {
		return 0, false
	}
	return s.delay, true
}

// Stopped reports whether the step retires the animation.
func (s Step) Stopped() bool {
	return s.stop
}

func (s Step) String() string {
	if s.stop {
		return "stop"
	}
	return fmt.Sprintf("continue(%v)", s.delay)
}

// Stepper advances an animation by one step.
//
// Step runs on the goroutine that calls [Manager.Run], normally the host's
// frame loop. Any widget state a stepper touches must only be touched from
// that goroutine.
type Stepper interface {
	Step() Step
}

// StepFunc adapts a function to a Stepper.
type StepFunc func() Step

// Step calls f.
func (f StepFunc) Step() Step {
	return f()
}
