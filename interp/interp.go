// Package interp provides interpolation between values: scalars,
// colors, piecewise sequences, easing curves, and the smooth
// zoom-and-pan interpolator of Van Wijk & Nuij.
//
// The core capability is a function from t in [0, 1] to a value;
// piecewise and eased variants are just functions that return such a
// function.
package interp

import (
	"math"

	"github.com/gogpu/viz"
)

// Interpolator maps a parameter t in [0, 1] to a value.
type Interpolator[T any] func(t float64) T

// Number interpolates linearly between a and b.
func Number(a, b float64) Interpolator[float64] {
	return func(t float64) float64 {
		return a + (b-a)*t
	}
}

// Round interpolates linearly and rounds to the nearest integer.
func Round(a, b float64) Interpolator[float64] {
	return func(t float64) float64 {
		return math.Round(a + (b-a)*t)
	}
}

// Color interpolates per-channel in RGB space.
func Color(a, b viz.RGBA) Interpolator[viz.RGBA] {
	return func(t float64) viz.RGBA {
		return a.Lerp(b, t)
	}
}

// ColorHSL interpolates through HSL space, taking the short way around
// the hue circle.
func ColorHSL(a, b viz.RGBA) Interpolator[viz.RGBA] {
	ha, sa, la := a.ToHSL()
	hb, sb, lb := b.ToHSL()
	dh := hb - ha
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	return func(t float64) viz.RGBA {
		c := viz.HSL(ha+dh*t, sa+(sb-sa)*t, la+(lb-la)*t)
		return c.WithAlpha(a.A + (b.A-a.A)*t)
	}
}

// Piecewise divides [0, 1] into len(values)-1 evenly spaced segments
// and interpolates within each using the given pair interpolator
// factory.
func Piecewise[T any](pair func(a, b T) Interpolator[T], values []T) Interpolator[T] {
	n := len(values) - 1
	if n < 1 {
		v := values[0]
		return func(float64) T { return v }
	}
	segments := make([]Interpolator[T], n)
	for i := 0; i < n; i++ {
		segments[i] = pair(values[i], values[i+1])
	}
	return func(t float64) T {
		scaled := t * float64(n)
		i := int(math.Floor(scaled))
		if i < 0 {
			i = 0
		} else if i > n-1 {
			i = n - 1
		}
		return segments[i](scaled - float64(i))
	}
}

// PiecewiseDomain interpolates values over explicit positions, which
// must be monotonically non-decreasing and span the t values queried.
func PiecewiseDomain[T any](pair func(a, b T) Interpolator[T], positions []float64, values []T) Interpolator[T] {
	n := len(values)
	if n == 0 || len(positions) != n {
		var zero T
		return func(float64) T { return zero }
	}
	if n == 1 {
		v := values[0]
		return func(float64) T { return v }
	}
	return func(t float64) T {
		if t <= positions[0] {
			return values[0]
		}
		if t >= positions[n-1] {
			return values[n-1]
		}
		// Find the segment containing t.
		i := 0
		for i < n-2 && t > positions[i+1] {
			i++
		}
		span := positions[i+1] - positions[i]
		local := 0.0
		if span > 0 {
			local = (t - positions[i]) / span
		}
		return pair(values[i], values[i+1])(local)
	}
}

// Quantize maps t to the i-th value where i = floor(t·n), clamped to
// n-1. Unlike Piecewise it never blends between values.
func Quantize[T any](values []T) Interpolator[T] {
	n := len(values)
	return func(t float64) T {
		i := int(math.Floor(t * float64(n)))
		if i < 0 {
			i = 0
		} else if i > n-1 {
			i = n - 1
		}
		return values[i]
	}
}

// Eased composes an interpolator with an easing function.
func Eased[T any](in Interpolator[T], easing func(float64) float64) Interpolator[T] {
	return func(t float64) T {
		return in(easing(t))
	}
}
