package scale

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// Log maps a numeric domain onto a range logarithmically. Both domain
// endpoints must be non-zero and share sign; negative domains map via
// log|x| with the sign preserved.
type Log struct {
	d0, d1 float64
	r0, r1 float64
	base   float64
	sign   float64 // +1 or -1, the shared domain sign
	err    error
}

// NewLog creates a base-10 log scale with domain (1, 10).
func NewLog() Log {
	return Log{d0: 1, d1: 10, r0: 0, r1: 1, base: 10, sign: 1}
}

// Domain sets the input interval. Returns an invalid scale if either
// endpoint is zero, non-finite, or the endpoints straddle zero.
func (s Log) Domain(d0, d1 float64) Log {
	if !isFinite(d0) || !isFinite(d1) || d0 == 0 || d1 == 0 || (d0 < 0) != (d1 < 0) {
		s.err = fmt.Errorf("%w: log domain (%v, %v) must be non-zero and share sign",
			viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	s.sign = 1
	if d0 < 0 {
		s.sign = -1
	}
	return s
}

// Range sets the output interval.
func (s Log) Range(r0, r1 float64) Log {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: log range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// Base sets the logarithm base (default 10).
func (s Log) Base(b float64) Log {
	if !(b > 0) || b == 1 {
		s.err = fmt.Errorf("%w: log base %v", viz.ErrInvalidDomain, b)
		return s
	}
	s.base = b
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Log) Err() error { return s.err }

// Value maps x from the domain to the range. x must share the domain's
// sign; values of the opposite sign or zero map to NaN.
func (s Log) Value(x float64) float64 {
	if s.err != nil || x*s.sign <= 0 {
		return math.NaN()
	}
	l0 := math.Log(math.Abs(s.d0))
	l1 := math.Log(math.Abs(s.d1))
	t := (math.Log(math.Abs(x)) - l0) / (l1 - l0)
	return lerp(t, s.r0, s.r1)
}

// Invert maps y from the range back to the domain.
func (s Log) Invert(y float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	l0 := math.Log(math.Abs(s.d0))
	l1 := math.Log(math.Abs(s.d1))
	t := normalize(y, s.r0, s.r1)
	return s.sign * math.Exp(l0+t*(l1-l0))
}

// Ticks returns tick values at {1, 2, 5}·base^k inside the domain.
// For wide domains (many decades) only powers of the base are kept.
func (s Log) Ticks(count int) []float64 {
	if s.err != nil {
		return nil
	}
	lo, hi := math.Abs(s.d0), math.Abs(s.d1)
	if lo > hi {
		lo, hi = hi, lo
	}
	logBase := math.Log(s.base)
	k0 := math.Floor(math.Log(lo) / logBase)
	k1 := math.Ceil(math.Log(hi) / logBase)

	decades := k1 - k0
	mantissas := []float64{1, 2, 5}
	if count > 0 && decades > float64(count) {
		mantissas = []float64{1}
	}

	var out []float64
	for k := k0; k <= k1; k++ {
		p := math.Pow(s.base, k)
		for _, m := range mantissas {
			v := m * p
			if v >= lo-1e-12*v && v <= hi+1e-12*v {
				out = append(out, s.sign*v)
			}
		}
	}
	return out
}

// DomainValues returns the current domain endpoints.
func (s Log) DomainValues() (float64, float64) { return s.d0, s.d1 }

// RangeValues returns the current range endpoints.
func (s Log) RangeValues() (float64, float64) { return s.r0, s.r1 }

// Nice extends the domain to full powers of the base.
func (s Log) Nice() Log {
	if s.err != nil {
		return s
	}
	logBase := math.Log(s.base)
	a0 := math.Abs(s.d0)
	a1 := math.Abs(s.d1)
	if a0 <= a1 {
		s.d0 = s.sign * math.Pow(s.base, math.Floor(math.Log(a0)/logBase))
		s.d1 = s.sign * math.Pow(s.base, math.Ceil(math.Log(a1)/logBase))
	} else {
		s.d0 = s.sign * math.Pow(s.base, math.Ceil(math.Log(a0)/logBase))
		s.d1 = s.sign * math.Pow(s.base, math.Floor(math.Log(a1)/logBase))
	}
	return s
}

// Symlog maps a numeric domain through the sign-symmetric log
// transform y = sign(x)·log1p(|x/C|), which stays linear near zero and
// logarithmic far from it. Unlike Log it accepts domains containing or
// straddling zero.
type Symlog struct {
	d0, d1   float64
	r0, r1   float64
	constant float64
	err      error
}

// NewSymlog creates a symlog scale with linearity constant 1.
func NewSymlog() Symlog {
	return Symlog{d0: 0, d1: 1, r0: 0, r1: 1, constant: 1}
}

// Domain sets the input interval.
func (s Symlog) Domain(d0, d1 float64) Symlog {
	if !isFinite(d0) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: symlog domain (%v, %v)", viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	return s
}

// Range sets the output interval.
func (s Symlog) Range(r0, r1 float64) Symlog {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: symlog range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// Constant sets the linearity constant C (default 1).
func (s Symlog) Constant(c float64) Symlog {
	if !(c > 0) {
		s.err = fmt.Errorf("%w: symlog constant %v", viz.ErrInvalidDomain, c)
		return s
	}
	s.constant = c
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Symlog) Err() error { return s.err }

func (s Symlog) transform(x float64) float64 {
	return math.Copysign(math.Log1p(math.Abs(x/s.constant)), x)
}

func (s Symlog) untransform(y float64) float64 {
	return math.Copysign(s.constant*math.Expm1(math.Abs(y)), y)
}

// Value maps x from the domain to the range.
func (s Symlog) Value(x float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	t := normalize(s.transform(x), s.transform(s.d0), s.transform(s.d1))
	return lerp(t, s.r0, s.r1)
}

// Invert maps y from the range back to the domain.
func (s Symlog) Invert(y float64) float64 {
	if s.err != nil {
		return math.NaN()
	}
	t := normalize(y, s.r0, s.r1)
	return s.untransform(lerp(t, s.transform(s.d0), s.transform(s.d1)))
}

// Ticks returns linearly spaced round values over the domain. The
// symlog transform has no natural tick sequence, so linear spacing is
// the readable default.
func (s Symlog) Ticks(count int) []float64 {
	if s.err != nil {
		return nil
	}
	return niceTicks(s.d0, s.d1, count)
}

// DomainValues returns the current domain endpoints.
func (s Symlog) DomainValues() (float64, float64) { return s.d0, s.d1 }

// RangeValues returns the current range endpoints.
func (s Symlog) RangeValues() (float64, float64) { return s.r0, s.r1 }
