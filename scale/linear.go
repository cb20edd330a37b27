package scale

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/array"
)

// Linear maps a numeric domain onto a numeric range with an affine
// transform. The range may be inverted (r0 > r1).
type Linear struct {
	d0, d1 float64
	r0, r1 float64
	clamp  bool
	err    error
}

// NewLinear creates a linear scale with unit domain and range.
func NewLinear() Linear {
	return Linear{d0: 0, d1: 1, r0: 0, r1: 1}
}

// Domain sets the input interval.
func (s Linear) Domain(d0, d1 float64) Linear {
	if !isFinite(d0) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: linear domain (%v, %v)", viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	return s
}

// Range sets the output interval.
func (s Linear) Range(r0, r1 float64) Linear {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: linear range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// Clamp restricts output (and inverted input) to the range.
func (s Linear) Clamp(clamp bool) Linear {
	s.clamp = clamp
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Linear) Err() error { return s.err }

// Value maps x from the domain to the range.
func (s Linear) Value(x float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	v := lerp(normalize(x, s.d0, s.d1), s.r0, s.r1)
	if s.clamp {
		v = clamp(v, s.r0, s.r1)
	}
	return v
}

// Invert maps y from the range back to the domain.
func (s Linear) Invert(y float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	if s.clamp {
		y = clamp(y, s.r0, s.r1)
	}
	return lerp(normalize(y, s.r0, s.r1), s.d0, s.d1)
}

// Ticks returns approximately count nicely rounded domain values.
func (s Linear) Ticks(count int) []float64 {
	return niceTicks(s.d0, s.d1, count)
}

// Nice extends the domain outward to nice round values.
func (s Linear) Nice(count int) Linear {
	s.d0, s.d1 = array.Nice(s.d0, s.d1, count)
	return s
}

// DomainValues returns the current domain endpoints.
func (s Linear) DomainValues() (float64, float64) { return s.d0, s.d1 }

// RangeValues returns the current range endpoints.
func (s Linear) RangeValues() (float64, float64) { return s.r0, s.r1 }
