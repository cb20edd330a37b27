package interp

import (
	"math"
	"testing"

	"github.com/gogpu/viz"
)

func TestNumber(t *testing.T) {
	f := Number(10, 20)
	if f(0) != 10 || f(1) != 20 || f(0.5) != 15 {
		t.Errorf("Number interpolation wrong: %v %v %v", f(0), f(1), f(0.5))
	}
}

func TestColor(t *testing.T) {
	f := Color(viz.Black, viz.White)
	mid := f(0.5)
	if math.Abs(mid.R-0.5) > 1e-9 {
		t.Errorf("mid = %+v", mid)
	}
}

func TestColorHSLHueWrap(t *testing.T) {
	// 350° to 10° should pass through 0°, not 180°.
	a := viz.HSL(350, 1, 0.5)
	b := viz.HSL(10, 1, 0.5)
	mid := ColorHSL(a, b)(0.5)
	h, _, _ := mid.ToHSL()
	if !(h < 20 || h > 340) {
		t.Errorf("hue took the long way: %v", h)
	}
}

func TestPiecewise(t *testing.T) {
	f := Piecewise(Number, []float64{0, 10, 100})
	if f(0) != 0 || f(0.25) != 5 || f(0.5) != 10 || f(0.75) != 55 || f(1) != 100 {
		t.Errorf("piecewise: %v %v %v %v %v", f(0), f(0.25), f(0.5), f(0.75), f(1))
	}
}

func TestPiecewiseDomain(t *testing.T) {
	f := PiecewiseDomain(Number, []float64{0, 0.8, 1}, []float64{0, 8, 10})
	if f(0.4) != 4 {
		t.Errorf("f(0.4) = %v, want 4", f(0.4))
	}
	if f(0.9) != 9 {
		t.Errorf("f(0.9) = %v, want 9", f(0.9))
	}
	if f(-1) != 0 || f(2) != 10 {
		t.Error("out-of-domain values should clamp to endpoints")
	}
}

func TestQuantize(t *testing.T) {
	f := Quantize([]string{"a", "b", "c"})
	cases := map[float64]string{0: "a", 0.2: "a", 0.34: "b", 0.99: "c", 1: "c"}
	for in, want := range cases {
		if got := f(in); got != want {
			t.Errorf("Quantize(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]func(float64) float64{
		"linear":      EaseLinear,
		"quadIn":      EaseQuadIn,
		"quadOut":     EaseQuadOut,
		"quadInOut":   EaseQuadInOut,
		"cubicIn":     EaseCubicIn,
		"cubicOut":    EaseCubicOut,
		"cubicInOut":  EaseCubicInOut,
		"sinIn":       EaseSinIn,
		"sinOut":      EaseSinOut,
		"sinInOut":    EaseSinInOut,
		"expIn":       EaseExpIn,
		"expOut":      EaseExpOut,
		"expInOut":    EaseExpInOut,
		"circleIn":    EaseCircleIn,
		"circleOut":   EaseCircleOut,
		"circleInOut": EaseCircleInOut,
		"elasticIn":   EaseElasticIn,
		"elasticOut":  EaseElasticOut,
		"backIn":      EaseBackIn,
		"backOut":     EaseBackOut,
		"bounceIn":    EaseBounceIn,
		"bounceOut":   EaseBounceOut,
	}
	for name, ease := range easings {
		t.Run(name, func(t *testing.T) {
			if v := ease(0); math.Abs(v) > 0.01 {
				t.Errorf("%s(0) = %v", name, v)
			}
			if v := ease(1); math.Abs(v-1) > 0.01 {
				t.Errorf("%s(1) = %v", name, v)
			}
		})
	}
}

func TestEaseOvershoot(t *testing.T) {
	// Back easing must leave [0, 1] in the middle.
	under := false
	for t2 := 0.05; t2 < 0.5; t2 += 0.05 {
		if EaseBackIn(t2) < 0 {
			under = true
		}
	}
	if !under {
		t.Error("EaseBackIn should dip below 0")
	}
}

func TestZoomEndpoints(t *testing.T) {
	a := View{CX: 0, CY: 0, Width: 100}
	b := View{CX: 500, CY: 300, Width: 40}
	f, duration := Zoom(a, b)
	if got := f(0); got != a {
		t.Errorf("f(0) = %+v, want %+v", got, a)
	}
	if got := f(1); got != b {
		t.Errorf("f(1) = %+v, want %+v", got, b)
	}
	if duration <= 0 {
		t.Errorf("duration = %v, want > 0", duration)
	}
	// Midway the view must be wider than both endpoints (zoom out
	// during a long pan).
	mid := f(0.5)
	if mid.Width <= a.Width || mid.Width <= b.Width {
		t.Errorf("mid width = %v, expected zoom-out above %v and %v", mid.Width, a.Width, b.Width)
	}
}

func TestZoomPureScale(t *testing.T) {
	a := View{CX: 10, CY: 10, Width: 100}
	b := View{CX: 10, CY: 10, Width: 25}
	f, _ := Zoom(a, b)
	mid := f(0.5)
	if mid.CX != 10 || mid.CY != 10 {
		t.Errorf("center drifted: %+v", mid)
	}
	if mid.Width >= a.Width || mid.Width <= b.Width {
		t.Errorf("width should shrink monotonically, mid = %v", mid.Width)
	}
}
