// Package animation schedules time-driven mutations of widget state between
// frames.
//
// # Model
//
// An animation is a [Stepper] paired with a countdown. When the countdown
// expires, the next call to [Manager.Run] invokes the stepper once; the
// returned [Step] either re-arms a fresh countdown ([Continue]) or retires
// the animation ([Stop]):
//
//	armed(delay) ── countdown fires ──► due ── Step() ──► armed(next)
//	                                                  └─► retired
//
// Countdowns run in the background; Run only polls them and never waits, so
// a frame with nothing due returns immediately. The host frame loop is the
// only thing that makes animations progress:
//
//	for {
//	    anims.Run()
//	    tree.Paint(backend)
//	    present(backend)
//	}
//
// # Basic Usage
//
//	m := animation.NewManager()
//	m.Add(animation.StepFunc(func() animation.Step {
//	    tree.Update(id, func(c *widgets.Common) { c.X++ })
//	    if x >= 100 {
//	        return animation.Stop()
//	    }
//	    return animation.Continue(16 * time.Millisecond)
//	}), 16*time.Millisecond)
//
// Curves and tweens ([EaseInOut], [Tween]) help steppers compute
// intermediate values.
package animation

import (
	"slices"
	"time"

	"github.com/go-gooey/gooey/pkg/errors"
)

type entry struct {
	stepper Stepper
	// fired receives once when the countdown expires. A nil channel never
	// fires.
	fired <-chan time.Time
	// retired is set when the stepper returns Stop.
	retired bool
}

// Manager owns a set of animations and advances them when the host calls
// Run. A Manager is not safe for concurrent use; call Add and Run from the
// frame loop.
type Manager struct {
	clock   Clock
	entries []*entry
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock countdowns are created from.
func WithClock(c Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// NewManager returns an empty Manager using the package default clock
// unless WithClock is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{clock: clock}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers s and arms its first countdown for initialDelay.
//
// A non-positive delay arms a countdown that never fires: the animation
// stays registered and is never stepped. The condition is reported through
// the errors package.
//
// Add may be called from inside a Step; the new animation is first polled
// on the following Run.
func (m *Manager) Add(s Stepper, initialDelay time.Duration) {
	if s == nil {
		return
	}
	e := &entry{stepper: s}
	m.arm(e, initialDelay, "animation.Manager.Add")
	m.entries = append(m.entries, e)
}

func (m *Manager) arm(e *entry, d time.Duration, op string) {
	if d <= 0 {
		e.fired = nil
		errors.Report(&errors.GooeyError{
			Op:         op,
			Kind:       errors.KindSchedule,
			Err:        errors.ErrNonPositiveDelay,
			StackTrace: errors.CaptureStack(),
		})
		return
	}
	e.fired = m.clock.After(d)
}

// Run advances every animation whose countdown has already fired, once
// each, in registration order. Animations whose step returns Stop are
// removed when Run returns. If a stepper panics, the animations already
// retired in this pass and the panicking one are still removed before the
// panic propagates. Run never blocks.
func (m *Manager) Run() {
	defer m.compact()
	for _, e := range m.entries {
		select {
		case <-e.fired:
		default:
			continue
		}
		// A step that panics leaves the entry retired: its countdown is
		// spent and would never fire again.
		e.retired = true
		if d, ok := e.stepper.Step().Next(); ok {
			e.retired = false
			m.arm(e, d, "animation.Manager.Run")
		}
	}
}

func (m *Manager) compact() {
	m.entries = slices.DeleteFunc(m.entries, func(e *entry) bool { return e.retired })
}

// Len returns the number of registered animations.
func (m *Manager) Len() int {
	return len(m.entries)
}
