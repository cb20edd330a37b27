package scale

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/viz"
)

// QuantileScale buckets a dataset into k quantiles, one per range
// value. Values map by rank, so outliers do not distort the buckets.
type QuantileScale[T any] struct {
	thresholds []float64 // k-1 inner quantile boundaries
	rng        []T
	err        error
}

// NewQuantile builds a quantile scale from a dataset and an ordered
// range of k output values.
func NewQuantile[T any](data []float64, rng []T) QuantileScale[T] {
	var s QuantileScale[T]
	if len(rng) == 0 {
		s.err = fmt.Errorf("%w: quantile range is empty", viz.ErrInvalidRange)
		return s
	}
	sorted := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		s.err = fmt.Errorf("%w: quantile dataset is empty", viz.ErrInvalidDomain)
		return s
	}
	sort.Float64s(sorted)

	k := len(rng)
	s.rng = rng
	s.thresholds = make([]float64, k-1)
	n := len(sorted)
	for i := 1; i < k; i++ {
		h := float64(n-1) * float64(i) / float64(k)
		j := int(math.Floor(h))
		lo := sorted[j]
		hi := sorted[min(j+1, n-1)]
		s.thresholds[i-1] = lo + (hi-lo)*(h-float64(j))
	}
	return s
}

// Err returns the construction error, if any.
func (s QuantileScale[T]) Err() error { return s.err }

// Quantiles returns the inner bucket boundaries.
func (s QuantileScale[T]) Quantiles() []float64 { return s.thresholds }

// Value returns the range value whose quantile bucket contains x.
func (s QuantileScale[T]) Value(x float64) T {
	var zero T
	if s.err != nil || math.IsNaN(x) {
		return zero
	}
	i := sort.SearchFloat64s(s.thresholds, x)
	// SearchFloat64s returns the first index with threshold >= x; a
	// value equal to a boundary belongs to the upper bucket.
	for i < len(s.thresholds) && x >= s.thresholds[i] {
		i++
	}
	return s.rng[i]
}

// Quantize maps a continuous domain onto k uniform segments, one per
// range value.
type Quantize[T any] struct {
	d0, d1 float64
	rng    []T
	err    error
}

// NewQuantize builds a quantize scale over [d0, d1].
func NewQuantize[T any](d0, d1 float64, rng []T) Quantize[T] {
	var s Quantize[T]
	if len(rng) == 0 {
		s.err = fmt.Errorf("%w: quantize range is empty", viz.ErrInvalidRange)
		return s
	}
	if !isFinite(d0) || !isFinite(d1) {
		s.err = fmt.Errorf("%w: quantize domain (%v, %v)", viz.ErrInvalidDomain, d0, d1)
		return s
	}
	s.d0, s.d1 = d0, d1
	s.rng = rng
	return s
}

// Err returns the construction error, if any.
func (s Quantize[T]) Err() error { return s.err }

// Value returns the range value of the uniform segment containing x.
func (s Quantize[T]) Value(x float64) T {
	var zero T
	if s.err != nil || math.IsNaN(x) {
		return zero
	}
	t := normalize(x, s.d0, s.d1)
	i := int(math.Floor(t * float64(len(s.rng))))
	if i < 0 {
		i = 0
	} else if i > len(s.rng)-1 {
		i = len(s.rng) - 1
	}
	return s.rng[i]
}

// Threshold maps a domain split at explicit boundaries onto n+1 range
// values.
type Threshold[T any] struct {
	boundaries []float64
	rng        []T
	err        error
}

// NewThreshold builds a threshold scale. boundaries must be ascending
// and one shorter than rng.
func NewThreshold[T any](boundaries []float64, rng []T) Threshold[T] {
	var s Threshold[T]
	if len(rng) != len(boundaries)+1 {
		s.err = fmt.Errorf("%w: threshold needs len(range) == len(boundaries)+1",
			viz.ErrDimensionMismatch)
		return s
	}
	if !sort.Float64sAreSorted(boundaries) {
		s.err = fmt.Errorf("%w: threshold boundaries must be ascending", viz.ErrInvalidDomain)
		return s
	}
	s.boundaries = boundaries
	s.rng = rng
	return s
}

// Err returns the construction error, if any.
func (s Threshold[T]) Err() error { return s.err }

// Value returns the range value of the interval containing x. A value
// equal to a boundary belongs to the upper interval.
func (s Threshold[T]) Value(x float64) T {
	var zero T
	if s.err != nil || math.IsNaN(x) {
		return zero
	}
	i := sort.SearchFloat64s(s.boundaries, x)
	for i < len(s.boundaries) && x >= s.boundaries[i] {
		i++
	}
	return s.rng[i]
}
