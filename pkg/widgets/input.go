package widgets

import "fmt"

// MouseEventKind identifies a pointer event.
type MouseEventKind int

const (
	MouseOver MouseEventKind = iota
	MouseDown
	MouseUp
	Click
	DoubleClick
	WheelDown
	WheelUp
)

// String returns a human-readable representation of the event kind.
func (k MouseEventKind) String() string {
	switch k {
	case MouseOver:
		return "mouse_over"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case Click:
		return "click"
	case DoubleClick:
		return "double_click"
	case WheelDown:
		return "wheel_down"
	case WheelUp:
		return "wheel_up"
	default:
		return fmt.Sprintf("MouseEventKind(%d)", int(k))
	}
}

// MouseEvent is a pointer event in absolute pixel coordinates.
// Button is set for press and click kinds, Amount for wheel kinds.
type MouseEvent struct {
	Kind   MouseEventKind
	X      int
	Y      int
	Button uint8
	Amount uint8
}

// Key is a platform key code.
type Key uint8

// MouseHandler receives pointer events.
type MouseHandler func(MouseEvent)

// KeyHandler receives key presses.
type KeyHandler func(Key)
