package array

import "math"

// Ticks returns approximately count nicely rounded values spanning
// [start, stop]. The step is of the form {1, 2, 5}·10^k. When start >
// stop the ticks come back in descending order.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || start == stop {
		return []float64{start}
	}
	reverse := start > stop
	if reverse {
		start, stop = stop, start
	}

	step := TickStep(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{start}
	}

	tickStart := math.Ceil(start/step) * step
	tickStop := math.Floor(stop/step) * step
	n := int(math.Round((tickStop-tickStart)/step)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, tickStart+step*float64(i))
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// TickStep returns the nice step size that yields approximately count
// ticks across [start, stop]. Thresholds at √10·{5, 2, 1} pick the
// multiplier that minimizes the error against the requested count.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	step0 := math.Abs(stop-start) / float64(count)
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	err := step0 / step1
	switch {
	case err >= math.Sqrt(10)*5:
		return step1 * 10
	case err >= math.Sqrt(10)*2:
		return step1 * 5
	case err >= math.Sqrt(10):
		return step1 * 2
	default:
		return step1
	}
}

// Nice extends [start, stop] outward to multiples of the tick step.
func Nice(start, stop float64, count int) (float64, float64) {
	if start == stop {
		return start, stop
	}
	reverse := start > stop
	if reverse {
		start, stop = stop, start
	}
	step := TickStep(start, stop, count)
	if step > 0 {
		start = math.Floor(start/step) * step
		stop = math.Ceil(stop/step) * step
	}
	if reverse {
		return stop, start
	}
	return start, stop
}
