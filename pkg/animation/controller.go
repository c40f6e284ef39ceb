package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a Controller.
//
//	             Forward()
//	Dismissed ─────────────► Completed
//	    ▲                        │
//	    │        Reverse()       │
//	    └────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse. When settled,
// status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the controller is stopped at 0.
	StatusDismissed Status = iota
	// StatusForward means the controller is moving toward 1.
	StatusForward
	// StatusReverse means the controller is moving toward 0.
	StatusReverse
	// StatusCompleted means the controller is stopped at 1.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller is a Stepper that moves Value between 0 and 1 over a fixed
// number of steps, one step per countdown. Listeners observe each change
// and typically write a tweened value into a widget.
//
// With Repeat set, a controller that settles turns around and keeps going,
// so it never retires on its own.
type Controller struct {
	// Value is the current eased progress in [0, 1].
	Value float64

	// Steps is the number of steps from one bound to the other.
	Steps int
	// Interval is the delay between steps.
	Interval time.Duration
	// Curve eases progress. Nil is linear.
	Curve Curve
	// Repeat turns the controller around each time it settles.
	Repeat bool

	status          Status
	i               int
	from, to        float64
	listeners       []listener[func(float64)]
	statusListeners []listener[func(Status)]
	nextListenerID  int
}

type listener[F any] struct {
	id int
	fn F
}

// NewController returns a dismissed controller.
func NewController(steps int, interval time.Duration) *Controller {
	return &Controller{Steps: steps, Interval: interval}
}

// Forward starts moving toward 1 from the current value.
func (c *Controller) Forward() {
	c.animateTo(1, StatusForward)
}

// Reverse starts moving toward 0 from the current value.
func (c *Controller) Reverse() {
	c.animateTo(0, StatusReverse)
}

func (c *Controller) animateTo(target float64, direction Status) {
	c.from, c.to = c.Value, target
	c.i = 0
	c.setStatus(direction)
}

// Reset stops the controller and sets Value to 0.
func (c *Controller) Reset() {
	c.Value = 0
	c.i = 0
	c.setStatus(StatusDismissed)
	c.notify()
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether the controller is moving.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// Step advances Value by one step. It returns Stop when the controller is
// not animating, or when it settles without Repeat.
func (c *Controller) Step() Step {
	if !c.IsAnimating() {
		return Stop()
	}

	progress := 1.0
	if c.Steps > 0 {
		c.i++
		progress = clampUnit(float64(c.i) / float64(c.Steps))
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.to-c.from)*eased
	c.notify()

	if progress < 1 {
		return Continue(c.Interval)
	}
	c.Value = c.to
	if c.to >= 1 {
		c.setStatus(StatusCompleted)
	} else {
		c.setStatus(StatusDismissed)
	}
	if !c.Repeat {
		return Stop()
	}
	if c.status == StatusCompleted {
		c.Reverse()
	} else {
		c.Forward()
	}
	return Continue(c.Interval)
}

// AddListener registers fn to receive every new value. It returns an
// unsubscribe function.
func (c *Controller) AddListener(fn func(value float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listener[func(float64)]{id, fn})
	return func() { c.listeners = removeListener(c.listeners, id) }
}

// AddStatusListener registers fn to receive status changes. It returns an
// unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners = append(c.statusListeners, listener[func(Status)]{id, fn})
	return func() { c.statusListeners = removeListener(c.statusListeners, id) }
}

func removeListener[F any](ls []listener[F], id int) []listener[F] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

func (c *Controller) setStatus(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	for _, l := range c.statusListeners {
		l.fn(s)
	}
}

func (c *Controller) notify() {
	for _, l := range c.listeners {
		l.fn(c.Value)
	}
}
