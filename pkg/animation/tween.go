package animation

import (
	"math"

	"github.com/go-gooey/gooey/pkg/rendering"
)

// Tween interpolates between Begin and End values based on progress.
//
// Use the helper constructors ([TweenInt], [TweenColor], [TweenRect]) for
// common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at step i of n, eased by curve.
// A nil curve is linear. n <= 0 yields End.
func (tw *Tween[T]) Transform(i, n int, curve Curve) T {
	if n <= 0 {
		return tw.End
	}
	t := clampUnit(float64(i) / float64(n))
	if curve != nil {
		t = curve(t)
	}
	return tw.Evaluate(t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt interpolates between two ints, rounding to the nearest pixel.
func LerpInt(a, b int, t float64) int {
	return int(math.Round(LerpFloat64(float64(a), float64(b), t)))
}

// LerpColor linearly interpolates between two Color values channel by
// channel.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(LerpFloat64(float64(x), float64(y), t)))
	}
	return rendering.Color{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: ch(a.A, b.A),
	}
}

// LerpRect interpolates position and size of two rectangles.
func LerpRect(a, b rendering.Rect, t float64) rendering.Rect {
	return rendering.Rect{
		X: LerpInt(a.X, b.X, t),
		Y: LerpInt(a.Y, b.Y, t),
		W: LerpInt(a.W, b.W, t),
		H: LerpInt(a.H, b.H, t),
	}
}

// TweenInt creates a tween for int values.
func TweenInt(begin, end int) *Tween[int] {
	return &Tween[int]{Begin: begin, End: end, Lerp: LerpInt}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end rendering.Color) *Tween[rendering.Color] {
	return &Tween[rendering.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenRect creates a tween for Rect values.
func TweenRect(begin, end rendering.Rect) *Tween[rendering.Rect] {
	return &Tween[rendering.Rect]{Begin: begin, End: end, Lerp: LerpRect}
}
