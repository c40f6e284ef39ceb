package animation

import (
	"math"
	"testing"

	"github.com/go-gooey/gooey/pkg/rendering"
)

func TestCurvesHitEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out"} {
		c, ok := CurveByName(name)
		if !ok {
			t.Fatalf("CurveByName(%q) failed", name)
		}
		if got := c(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := c(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
	if _, ok := CurveByName("bounce"); ok {
		t.Error("expected unknown curve to fail")
	}
}

func TestCubicBezier(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	symmetric := CubicBezier(0.42, 0, 0.58, 1)
	for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
		if got := linear(p); math.Abs(got-p) > 1e-6 {
			t.Errorf("linear bezier(%v) = %v", p, got)
		}
		if got, mirror := symmetric(p), symmetric(1-p); math.Abs(got+mirror-1) > 1e-6 {
			t.Errorf("symmetric bezier(%v)+bezier(%v) = %v, want 1", p, 1-p, got+mirror)
		}
	}

	prev := 0.0
	for i := 1; i <= 20; i++ {
		got := EaseOut(float64(i) / 20)
		if got < prev {
			t.Fatalf("EaseOut not monotonic at step %d: %v < %v", i, got, prev)
		}
		prev = got
	}
	if EaseIn(0.25) >= 0.25 || EaseOut(0.25) <= 0.25 {
		t.Errorf("EaseIn(0.25)=%v EaseOut(0.25)=%v: wrong side of linear", EaseIn(0.25), EaseOut(0.25))
	}
}

func TestTweenTransform(t *testing.T) {
	tw := TweenInt(0, 100)
	if got := tw.Transform(0, 4, nil); got != 0 {
		t.Errorf("step 0 = %d, want 0", got)
	}
	if got := tw.Transform(1, 4, nil); got != 25 {
		t.Errorf("step 1 = %d, want 25", got)
	}
	if got := tw.Transform(4, 4, EaseInOut); got != 100 {
		t.Errorf("last step = %d, want 100", got)
	}
	if got := tw.Transform(9, 4, nil); got != 100 {
		t.Errorf("overshoot = %d, want 100", got)
	}
	if got := tw.Transform(0, 0, nil); got != 100 {
		t.Errorf("n=0 = %d, want End", got)
	}
}

func TestLerpColor(t *testing.T) {
	a := rendering.Color{R: 0, G: 100, B: 200, A: 255}
	b := rendering.Color{R: 100, G: 100, B: 0, A: 255}
	got := LerpColor(a, b, 0.5)
	want := rendering.Color{R: 50, G: 100, B: 100, A: 255}
	if got != want {
		t.Errorf("LerpColor = %v, want %v", got, want)
	}
}

func TestLerpRect(t *testing.T) {
	got := TweenRect(rendering.Rect{W: 10, H: 10}, rendering.Rect{X: 10, Y: 20, W: 30, H: 10}).Evaluate(0.5)
	want := rendering.Rect{X: 5, Y: 10, W: 20, H: 10}
	if got != want {
		t.Errorf("LerpRect = %v, want %v", got, want)
	}
}
