// Package array provides reductions and tick helpers over numeric
// slices. Reductions return a (value, ok) pair: ok is false for empty
// input (or input that is all NaN). Median and quantile work on a
// filtered sorted copy and never reorder the caller's data.
package array

import (
	"math"
	"sort"
)

// Min returns the smallest value, skipping NaN.
func Min(values []float64) (float64, bool) {
	min := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min, !math.IsNaN(min)
}

// Max returns the largest value, skipping NaN.
func Max(values []float64) (float64, bool) {
	max := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max, !math.IsNaN(max)
}

// Extent returns the [min, max] of the values.
func Extent(values []float64) (min, max float64, ok bool) {
	min, okMin := Min(values)
	max, okMax := Max(values)
	return min, max, okMin && okMax
}

// Sum returns the sum of the values. The sum of an empty slice is 0.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return sum
}

// Mean returns the arithmetic mean.
func Mean(values []float64) (float64, bool) {
	var sum float64
	var n int
	for _, v := range values {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Median returns the middle value, interpolating between the two middle
// values for even counts. NaN values are skipped. The input is not
// reordered.
func Median(values []float64) (float64, bool) {
	return Quantile(values, 0.5)
}

// Quantile returns the p-quantile (p in [0, 1]) using linear
// interpolation between order statistics (the R-7 rule). NaN values are
// skipped and the input is not reordered.
func Quantile(values []float64, p float64) (float64, bool) {
	sorted := filterSorted(values)
	return QuantileSorted(sorted, p)
}

// QuantileSorted is Quantile for data already sorted ascending and free
// of NaN.
func QuantileSorted(sorted []float64, p float64) (float64, bool) {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return 0, false
	}
	if n == 1 {
		return sorted[0], true
	}
	if p <= 0 {
		return sorted[0], true
	}
	if p >= 1 {
		return sorted[n-1], true
	}
	h := float64(n-1) * p
	i := int(math.Floor(h))
	lo := sorted[i]
	hi := sorted[i+1]
	return lo + (hi-lo)*(h-float64(i)), true
}

// MedianInPlace sorts values ascending and returns their median.
// It is the explicit in-place variant of Median for callers who own
// the slice and want to avoid the copy.
func MedianInPlace(values []float64) (float64, bool) {
	sort.Float64s(values)
	return QuantileSorted(values, 0.5)
}

// Variance returns the Bessel-corrected (n-1) sample variance.
// At least two non-NaN values are required.
func Variance(values []float64) (float64, bool) {
	var mean, m2 float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		n++
		delta := v - mean
		mean += delta / float64(n)
		m2 += delta * (v - mean)
	}
	if n < 2 {
		return 0, false
	}
	return m2 / float64(n-1), true
}

// Deviation returns the sample standard deviation.
func Deviation(values []float64) (float64, bool) {
	v, ok := Variance(values)
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// CumSum returns the running sum of the values. NaN values contribute
// zero but keep their slot.
func CumSum(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		if !math.IsNaN(v) {
			sum += v
		}
		out[i] = sum
	}
	return out
}

// MinIndex returns the index of the smallest value, skipping NaN.
func MinIndex(values []float64) (int, bool) {
	idx := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if idx < 0 || v < values[idx] {
			idx = i
		}
	}
	return idx, idx >= 0
}

// MaxIndex returns the index of the largest value, skipping NaN.
func MaxIndex(values []float64) (int, bool) {
	idx := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if idx < 0 || v > values[idx] {
			idx = i
		}
	}
	return idx, idx >= 0
}

// Count returns the number of values satisfying pred.
func Count(values []float64, pred func(float64) bool) int {
	var n int
	for _, v := range values {
		if pred(v) {
			n++
		}
	}
	return n
}

// MinBy returns the smallest accessor result over the items.
func MinBy[T any](items []T, accessor func(T) float64) (float64, bool) {
	return Min(mapValues(items, accessor))
}

// MaxBy returns the largest accessor result over the items.
func MaxBy[T any](items []T, accessor func(T) float64) (float64, bool) {
	return Max(mapValues(items, accessor))
}

// ExtentBy returns the [min, max] of the accessor results.
func ExtentBy[T any](items []T, accessor func(T) float64) (min, max float64, ok bool) {
	return Extent(mapValues(items, accessor))
}

// SumBy returns the sum of the accessor results.
func SumBy[T any](items []T, accessor func(T) float64) float64 {
	return Sum(mapValues(items, accessor))
}

// MeanBy returns the mean of the accessor results.
func MeanBy[T any](items []T, accessor func(T) float64) (float64, bool) {
	return Mean(mapValues(items, accessor))
}

// MedianBy returns the median of the accessor results.
func MedianBy[T any](items []T, accessor func(T) float64) (float64, bool) {
	return Median(mapValues(items, accessor))
}

func mapValues[T any](items []T, accessor func(T) float64) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = accessor(it)
	}
	return out
}

// filterSorted returns a sorted copy of values with NaN removed.
func filterSorted(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}
