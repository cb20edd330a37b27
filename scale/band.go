package scale

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// Band maps discrete keys onto evenly spaced bands inside a continuous
// range, with configurable inner and outer padding.
type Band[K comparable] struct {
	domain []K
	index  map[K]int
	r0, r1 float64
	pInner float64
	pOuter float64
	align  float64
	round  bool
	err    error
}

// NewBand creates a band scale with no padding and centered alignment.
func NewBand[K comparable]() Band[K] {
	return Band[K]{r0: 0, r1: 1, align: 0.5}
}

// Domain sets the ordered keys. Duplicate keys keep their first index.
func (s Band[K]) Domain(keys []K) Band[K] {
	s.domain = keys
	s.index = make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := s.index[k]; !ok {
			s.index[k] = i
		}
	}
	return s
}

// Range sets the output interval.
func (s Band[K]) Range(r0, r1 float64) Band[K] {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: band range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// PaddingInner sets the gap between bands as a fraction of the step,
// in [0, 1].
func (s Band[K]) PaddingInner(p float64) Band[K] {
	if !(p >= 0 && p <= 1) {
		s.err = fmt.Errorf("%w: band inner padding %v", viz.ErrInvalidRange, p)
		return s
	}
	s.pInner = p
	return s
}

// PaddingOuter sets the space before the first and after the last band
// as a fraction of the step.
func (s Band[K]) PaddingOuter(p float64) Band[K] {
	if !(p >= 0) || !isFinite(p) {
		s.err = fmt.Errorf("%w: band outer padding %v", viz.ErrInvalidRange, p)
		return s
	}
	s.pOuter = p
	return s
}

// Padding sets inner and outer padding together.
func (s Band[K]) Padding(p float64) Band[K] {
	return s.PaddingInner(p).PaddingOuter(p)
}

// Align distributes leftover outer space: 0 packs bands toward r0,
// 1 toward r1, 0.5 centers them (default).
func (s Band[K]) Align(a float64) Band[K] {
	if !(a >= 0 && a <= 1) {
		s.err = fmt.Errorf("%w: band align %v", viz.ErrInvalidRange, a)
		return s
	}
	s.align = a
	return s
}

// Round snaps band starts and widths to integers, useful for crisp
// pixel alignment.
func (s Band[K]) Round(round bool) Band[K] {
	s.round = round
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Band[K]) Err() error { return s.err }

func (s Band[K]) layout() (start, step float64) {
	n := float64(len(s.domain))
	reverse := s.r1 < s.r0
	lo, hi := s.r0, s.r1
	if reverse {
		lo, hi = hi, lo
	}
	step = (hi - lo) / math.Max(1, n-s.pInner+2*s.pOuter)
	if s.round {
		step = math.Floor(step)
	}
	start = lo + (hi-lo-step*(n-s.pInner))*s.align
	if s.round {
		start = math.Round(start)
	}
	return start, step
}

// Value returns the start position of the band for key k. The second
// return is false for keys outside the domain.
func (s Band[K]) Value(k K) (float64, bool) {
	if s.err != nil || len(s.domain) == 0 {
		return math.NaN(), false
	}
	i, ok := s.index[k]
	if !ok {
		return math.NaN(), false
	}
	start, step := s.layout()
	if s.r1 < s.r0 {
		i = len(s.domain) - 1 - i
	}
	return start + step*float64(i), true
}

// Bandwidth returns the width of each band.
func (s Band[K]) Bandwidth() float64 {
	if s.err != nil {
		return math.NaN()
	}
	_, step := s.layout()
	w := step * (1 - s.pInner)
	if s.round {
		w = math.Round(w)
	}
	return w
}

// Step returns the distance between the starts of adjacent bands.
func (s Band[K]) Step() float64 {
	if s.err != nil {
		return math.NaN()
	}
	_, step := s.layout()
	return step
}

// DomainValues returns the ordered keys.
func (s Band[K]) DomainValues() []K { return s.domain }

// PointScale maps discrete keys onto evenly spaced points: a band scale
// with zero bandwidth where inner padding is fixed at 1.
type PointScale[K comparable] struct {
	band Band[K]
}

// NewPoint creates a point scale with no outer padding.
func NewPoint[K comparable]() PointScale[K] {
	b := NewBand[K]()
	b.pInner = 1
	return PointScale[K]{band: b}
}

// Domain sets the ordered keys.
func (s PointScale[K]) Domain(keys []K) PointScale[K] {
	s.band = s.band.Domain(keys)
	return s
}

// Range sets the output interval.
func (s PointScale[K]) Range(r0, r1 float64) PointScale[K] {
	s.band = s.band.Range(r0, r1)
	return s
}

// Padding sets the outer padding as a fraction of the step.
func (s PointScale[K]) Padding(p float64) PointScale[K] {
	s.band = s.band.PaddingOuter(p)
	return s
}

// Align distributes leftover space; see Band.Align.
func (s PointScale[K]) Align(a float64) PointScale[K] {
	s.band = s.band.Align(a)
	return s
}

// Round snaps point positions to integers.
func (s PointScale[K]) Round(round bool) PointScale[K] {
	s.band = s.band.Round(round)
	return s
}

// Err returns the first validation error recorded by a setter.
func (s PointScale[K]) Err() error { return s.band.Err() }

// Value returns the position of the point for key k.
func (s PointScale[K]) Value(k K) (float64, bool) {
	return s.band.Value(k)
}

// Step returns the distance between adjacent points.
func (s PointScale[K]) Step() float64 { return s.band.Step() }

// DomainValues returns the ordered keys.
func (s PointScale[K]) DomainValues() []K { return s.band.DomainValues() }
