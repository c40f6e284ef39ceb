package testing

import (
	"fmt"

	"github.com/go-gooey/gooey/pkg/rendering"
)

// DrawOp is one recorded backend call.
type DrawOp struct {
	Op    string
	X     int
	Y     int
	W     int
	H     int
	Color rendering.Color
}

// Rect returns the area touched by the op.
func (d DrawOp) Rect() rendering.Rect {
	return rendering.Rect{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

func (d DrawOp) String() string {
	return fmt.Sprintf("%s(%d,%d %dx%d %v)", d.Op, d.X, d.Y, d.W, d.H, d.Color)
}

// RecordingBackend implements rendering.Backend by recording every call.
// Line calls are recorded as one-pixel-thick rectangles.
type RecordingBackend struct {
	Ops []DrawOp
}

// FillRect records a fillRect op.
func (r *RecordingBackend) FillRect(x, y, w, h int, c rendering.Color) {
	r.Ops = append(r.Ops, DrawOp{Op: "fillRect", X: x, Y: y, W: w, H: h, Color: c})
}

// DrawHorizLine records a horizLine op.
func (r *RecordingBackend) DrawHorizLine(x, y, w int, c rendering.Color) {
	r.Ops = append(r.Ops, DrawOp{Op: "horizLine", X: x, Y: y, W: w, H: 1, Color: c})
}

// DrawVertLine records a vertLine op.
func (r *RecordingBackend) DrawVertLine(x, y, h int, c rendering.Color) {
	r.Ops = append(r.Ops, DrawOp{Op: "vertLine", X: x, Y: y, W: 1, H: h, Color: c})
}

// Reset clears recorded ops.
func (r *RecordingBackend) Reset() {
	r.Ops = nil
}

// ColorAt replays the recorded ops and returns the color the last op
// covering (x, y) left there. ok is false if no op touched the pixel.
func (r *RecordingBackend) ColorAt(x, y int) (c rendering.Color, ok bool) {
	for _, op := range r.Ops {
		if op.Rect().Contains(x, y) {
			c, ok = op.Color, true
		}
	}
	return c, ok
}
