package animation

import "math"

// Curve maps linear progress in [0, 1] to eased progress. Steppers apply
// a curve to their step progress before evaluating a [Tween].
//
// Predefined: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// [CubicBezier] builds others.
type Curve func(float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// CurveByName resolves the curve names accepted in scene files:
// "linear", "ease", "ease-in", "ease-out" and "ease-in-out".
func CurveByName(name string) (Curve, bool) {
	switch name {
	case "", "linear":
		return LinearCurve, true
	case "ease":
		return Ease, true
	case "ease-in":
		return EaseIn, true
	case "ease-out":
		return EaseOut, true
	case "ease-in-out":
		return EaseInOut, true
	}
	return nil, false
}

// CSS named timing functions.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier returns the easing curve through control points (x1,y1) and
// (x2,y2), as CSS cubic-bezier() does. x1 and x2 are clamped to [0, 1] so
// the curve is a function of progress.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	x := newBezierAxis(min(max(x1, 0), 1), min(max(x2, 0), 1))
	y := newBezierAxis(y1, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return y.at(x.solve(t))
	}
}

// bezierAxis is one coordinate of a cubic bezier from 0 to 1 in polynomial
// form: a*u^3 + b*u^2 + c*u.
type bezierAxis struct{ a, b, c float64 }

func newBezierAxis(p1, p2 float64) bezierAxis {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return bezierAxis{a: 1 - c - b, b: b, c: c}
}

func (ax bezierAxis) at(u float64) float64 {
	return ((ax.a*u+ax.b)*u + ax.c) * u
}

// solve finds u in [0, 1] with at(u) == v. The x axis is monotonic once its
// control points are clamped, so bisection always converges.
func (ax bezierAxis) solve(v float64) float64 {
	const epsilon = 1e-7
	lo, hi := 0.0, 1.0
	for range 40 {
		u := (lo + hi) / 2
		d := ax.at(u) - v
		if math.Abs(d) < epsilon {
			return u
		}
		if d > 0 {
			hi = u
		} else {
			lo = u
		}
	}
	return (lo + hi) / 2
}

// clampUnit clamps v to [0, 1].
func clampUnit(v float64) float64 { return min(max(v, 0), 1) }
