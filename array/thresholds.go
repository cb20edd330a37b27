package array

import "math"

// Threshold rules choose a set of evenly spaced levels for contouring
// and binning from the shape of the data.

// ThresholdSturges returns levels across [min, max] using Sturges'
// formula: n = ceil(log2(count)) + 1.
func ThresholdSturges(min, max float64, count int) []float64 {
	if count <= 0 || min >= max {
		return nil
	}
	n := int(math.Ceil(math.Log2(float64(count)))) + 1
	return linspace(min, max, n)
}

// ThresholdScott returns levels using Scott's normal reference rule,
// h = 3.5·σ/n^(1/3).
func ThresholdScott(values []float64, min, max float64) []float64 {
	if len(values) == 0 || min >= max {
		return nil
	}
	sd, ok := Deviation(values)
	if !ok || sd <= 0 {
		return []float64{(min + max) / 2}
	}
	h := 3.5 * sd / math.Cbrt(float64(len(values)))
	n := int(math.Ceil((max - min) / h))
	if n < 1 {
		n = 1
	}
	return linspace(min, max, n)
}

// ThresholdFreedmanDiaconis returns levels using the Freedman-Diaconis
// rule, h = 2·IQR/n^(1/3).
func ThresholdFreedmanDiaconis(values []float64, min, max float64) []float64 {
	if len(values) == 0 || min >= max {
		return nil
	}
	q1, ok1 := Quantile(values, 0.25)
	q3, ok3 := Quantile(values, 0.75)
	iqr := q3 - q1
	if !ok1 || !ok3 || iqr <= 0 {
		return []float64{(min + max) / 2}
	}
	h := 2 * iqr / math.Cbrt(float64(len(values)))
	n := int(math.Ceil((max - min) / h))
	if n < 1 {
		n = 1
	}
	return linspace(min, max, n)
}

// linspace returns n evenly spaced values from min to max inclusive.
func linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{(min + max) / 2}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = min + (max-min)*float64(i)/float64(n-1)
	}
	return out
}
