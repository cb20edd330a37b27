package scale

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// Sequential maps a numeric domain onto the output of an interpolator
// evaluated at the normalized position. It has no inverse.
type Sequential struct {
	d0, d1       float64
	interpolator func(float64) viz.RGBA
	clamp        bool
	err          error
}

// NewSequential creates a sequential scale over the given interpolator.
func NewSequential(interpolator func(float64) viz.RGBA) Sequential {
	return Sequential{d0: 0, d1: 1, interpolator: interpolator, clamp: true}
}

// Domain sets the input interval.
func (s Sequential) Domain(d0, d1 float64) Sequential {
	if !isFinite(d0) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: sequential domain (%v, %v)", viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	return s
}

// Clamp controls whether out-of-domain inputs clamp to the ends
// (default true).
func (s Sequential) Clamp(clamp bool) Sequential {
	s.clamp = clamp
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Sequential) Err() error { return s.err }

// Value evaluates the interpolator at the normalized position of x.
func (s Sequential) Value(x float64) viz.RGBA {
	if s.err != nil || s.interpolator == nil {
		return viz.RGBA{}
	}
	t := normalize(x, s.d0, s.d1)
	if s.clamp {
		t = math.Min(1, math.Max(0, t))
	}
	return s.interpolator(t)
}

// Diverging maps a three-point domain (d0, dmid, d1) onto an
// interpolator, normalizing each half separately so that dmid always
// lands on t = 0.5.
type Diverging struct {
	d0, dmid, d1 float64
	interpolator func(float64) viz.RGBA
	clamp        bool
	err          error
}

// NewDiverging creates a diverging scale over the given interpolator.
func NewDiverging(interpolator func(float64) viz.RGBA) Diverging {
	return Diverging{d0: 0, dmid: 0.5, d1: 1, interpolator: interpolator, clamp: true}
}

// Domain sets the three-point input interval.
func (s Diverging) Domain(d0, dmid, d1 float64) Diverging {
	if !isFinite(d0) || !isFinite(dmid) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: diverging domain (%v, %v, %v)",
			viz.ErrInvalidDomain, d0, dmid, d1)
		return s
	}
	s.d0, s.dmid, s.d1 = d0, dmid, d1
	return s
}

// Clamp controls whether out-of-domain inputs clamp to the ends
// (default true).
func (s Diverging) Clamp(clamp bool) Diverging {
	s.clamp = clamp
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Diverging) Err() error { return s.err }

// Value evaluates the interpolator with two-piece normalization around
// the midpoint.
func (s Diverging) Value(x float64) viz.RGBA {
	if s.err != nil || s.interpolator == nil {
		return viz.RGBA{}
	}
	var t float64
	if x <= s.dmid {
		t = 0.5 * normalize(x, s.d0, s.dmid)
	} else {
		t = 0.5 + 0.5*normalize(x, s.dmid, s.d1)
	}
	if s.clamp {
		t = math.Min(1, math.Max(0, t))
	}
	return s.interpolator(t)
}
