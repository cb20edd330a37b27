package scale

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/array"
)

// Pow maps a numeric domain onto a range through the sign-preserving
// power transform sign(x)·|x|^k.
type Pow struct {
	d0, d1   float64
	r0, r1   float64
	exponent float64
	err      error
}

// NewPow creates a power scale with exponent 1 (equivalent to linear).
func NewPow() Pow {
	return Pow{d0: 0, d1: 1, r0: 0, r1: 1, exponent: 1}
}

// NewSqrt creates a power scale with exponent 0.5.
func NewSqrt() Pow {
	return NewPow().Exponent(0.5)
}

// Domain sets the input interval.
func (s Pow) Domain(d0, d1 float64) Pow {
	if !isFinite(d0) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: pow domain (%v, %v)", viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	return s
}

// Range sets the output interval.
func (s Pow) Range(r0, r1 float64) Pow {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: pow range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// Exponent sets the power k (default 1).
func (s Pow) Exponent(k float64) Pow {
	if !isFinite(k) || k == 0 {
		s.err = fmt.Errorf("%w: pow exponent %v", viz.ErrInvalidDomain, k)
		return s
	}
	s.exponent = k
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Pow) Err() error { return s.err }

func powTransform(x, k float64) float64 {
	return math.Copysign(math.Pow(math.Abs(x), k), x)
}

// Value maps x from the domain to the range.
func (s Pow) Value(x float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	t := normalize(powTransform(x, s.exponent),
		powTransform(s.d0, s.exponent), powTransform(s.d1, s.exponent))
	return lerp(t, s.r0, s.r1)
}

// Invert maps y from the range back to the domain.
func (s Pow) Invert(y float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	t := normalize(y, s.r0, s.r1)
	v := lerp(t, powTransform(s.d0, s.exponent), powTransform(s.d1, s.exponent))
	return powTransform(v, 1/s.exponent)
}

// Ticks returns approximately count nicely rounded domain values.
func (s Pow) Ticks(count int) []float64 {
	return niceTicks(s.d0, s.d1, count)
}

// DomainValues returns the current domain endpoints.
func (s Pow) DomainValues() (float64, float64) { return s.d0, s.d1 }

// RangeValues returns the current range endpoints.
func (s Pow) RangeValues() (float64, float64) { return s.r0, s.r1 }

// Nice extends the domain outward to nice round values.
func (s Pow) Nice(count int) Pow {
	s.d0, s.d1 = array.Nice(s.d0, s.d1, count)
	return s
}
