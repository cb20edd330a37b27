// Package scale implements mappings from data domains to visual
// ranges: linear, logarithmic, power, symlog, time, sequential,
// diverging, quantile, quantize, threshold, band, point and ordinal
// scales, plus nice-number tick generation.
//
// Scales are value-semantics builders: construct, chain setters, then
// call Value (and Invert where defined). Setters validate eagerly and
// record a sticky error retrievable with Err; an invalid scale maps
// everything to NaN rather than panicking.
package scale

import (
	"math"

	"github.com/gogpu/viz/array"
)

// Tick pairs a domain position with its formatted label. Ticks are
// generated on demand and never cached inside a scale.
type Tick struct {
	Value float64
	Label string
}

// clamp restricts v to [lo, hi] (in either order).
func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// normalize maps x from [d0, d1] to [0, 1] without clamping.
func normalize(x, d0, d1 float64) float64 {
	span := d1 - d0
	if span == 0 {
		return 0.5
	}
	return (x - d0) / span
}

// lerp maps t in [0, 1] onto [r0, r1].
func lerp(t, r0, r1 float64) float64 {
	return r0 + t*(r1-r0)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// niceTicks forwards to the shared tick algorithm.
func niceTicks(start, stop float64, count int) []float64 {
	return array.Ticks(start, stop, count)
}
