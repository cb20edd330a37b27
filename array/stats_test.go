package array

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMinMaxExtent(t *testing.T) {
	vs := []float64{3, math.NaN(), -1, 7, 2}
	if v, ok := Min(vs); !ok || v != -1 {
		t.Errorf("Min = %v, %v", v, ok)
	}
	if v, ok := Max(vs); !ok || v != 7 {
		t.Errorf("Max = %v, %v", v, ok)
	}
	min, max, ok := Extent(vs)
	if !ok || min != -1 || max != 7 {
		t.Errorf("Extent = %v, %v, %v", min, max, ok)
	}
	if _, ok := Min(nil); ok {
		t.Error("Min of empty should report false")
	}
	if _, ok := Max([]float64{math.NaN()}); ok {
		t.Error("Max of all-NaN should report false")
	}
}

func TestMeanMedianQuantile(t *testing.T) {
	vs := []float64{1, 2, 3, 4}
	if m, ok := Mean(vs); !ok || !approx(m, 2.5) {
		t.Errorf("Mean = %v", m)
	}
	if m, ok := Median(vs); !ok || !approx(m, 2.5) {
		t.Errorf("Median = %v", m)
	}
	if m, ok := Median([]float64{5, 1, 3}); !ok || m != 3 {
		t.Errorf("odd Median = %v", m)
	}
	// NaN skipped.
	if m, ok := Median([]float64{math.NaN(), 1, 3}); !ok || m != 2 {
		t.Errorf("NaN-skipping Median = %v", m)
	}
	// quantile(sorted, 0.5) == median(sorted)
	sorted := []float64{1, 2, 4, 8, 16}
	q, _ := QuantileSorted(sorted, 0.5)
	m, _ := Median(sorted)
	if q != m {
		t.Errorf("quantile 0.5 = %v, median = %v", q, m)
	}
	if q, ok := Quantile([]float64{4, 1, 3, 2}, 0.25); !ok || !approx(q, 1.75) {
		t.Errorf("Quantile(0.25) = %v", q)
	}
	// Input not reordered.
	unsorted := []float64{9, 1, 5}
	Median(unsorted)
	if unsorted[0] != 9 {
		t.Error("Median must not reorder the caller's slice")
	}
}

func TestVarianceDeviation(t *testing.T) {
	vs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	v, ok := Variance(vs)
	if !ok || !approx(v, 32.0/7.0) {
		t.Errorf("Variance = %v", v)
	}
	d, _ := Deviation(vs)
	if !approx(d*d, v) {
		t.Errorf("Deviation² = %v, want %v", d*d, v)
	}
	if _, ok := Variance([]float64{1}); ok {
		t.Error("Variance of one value should report false")
	}
}

func TestCumSumAndIndices(t *testing.T) {
	got := CumSum([]float64{1, 2, math.NaN(), 3})
	want := []float64{1, 3, 3, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CumSum[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if i, ok := MinIndex([]float64{4, math.NaN(), 1, 2}); !ok || i != 2 {
		t.Errorf("MinIndex = %d", i)
	}
	if i, ok := MaxIndex([]float64{4, 9, 1}); !ok || i != 1 {
		t.Errorf("MaxIndex = %d", i)
	}
	if n := Count([]float64{1, -2, 3}, func(v float64) bool { return v > 0 }); n != 2 {
		t.Errorf("Count = %d", n)
	}
}

func TestAccessorVariants(t *testing.T) {
	type row struct{ v float64 }
	rows := []row{{3}, {1}, {2}}
	if v, ok := MinBy(rows, func(r row) float64 { return r.v }); !ok || v != 1 {
		t.Errorf("MinBy = %v", v)
	}
	if v, ok := MedianBy(rows, func(r row) float64 { return r.v }); !ok || v != 2 {
		t.Errorf("MedianBy = %v", v)
	}
	if v := SumBy(rows, func(r row) float64 { return r.v }); v != 6 {
		t.Errorf("SumBy = %v", v)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		start, stop float64
		count       int
		want        []float64
	}{
		{0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{0, 1, 10, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{0, 100, 10, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
	}
	for _, tt := range tests {
		got := Ticks(tt.start, tt.stop, tt.count)
		if len(got) != len(tt.want) {
			t.Errorf("Ticks(%v, %v, %d) = %v", tt.start, tt.stop, tt.count, got)
			continue
		}
		for i := range got {
			if !approx(got[i], tt.want[i]) {
				t.Errorf("Ticks(%v, %v, %d)[%d] = %v, want %v",
					tt.start, tt.stop, tt.count, i, got[i], tt.want[i])
			}
		}
	}
	// Descending domain reverses the ticks.
	desc := Ticks(10, 0, 5)
	if desc[0] != 10 || desc[len(desc)-1] != 0 {
		t.Errorf("descending Ticks = %v", desc)
	}
}

func TestTickStep(t *testing.T) {
	if s := TickStep(0, 100, 10); s != 10 {
		t.Errorf("TickStep = %v, want 10", s)
	}
	if s := TickStep(0, 10, 5); s != 2 {
		t.Errorf("TickStep = %v, want 2", s)
	}
	if s := TickStep(0, 1, 2); s != 0.5 {
		t.Errorf("TickStep = %v, want 0.5", s)
	}
}

func TestNice(t *testing.T) {
	lo, hi := Nice(0.134, 0.867, 5)
	if lo > 0.134 || hi < 0.867 {
		t.Errorf("Nice = (%v, %v) does not cover the domain", lo, hi)
	}
	if !approx(lo, 0.1) || !approx(hi, 0.9) {
		t.Errorf("Nice = (%v, %v), want (0.1, 0.9)", lo, hi)
	}
}

func TestThresholdRules(t *testing.T) {
	vs := make([]float64, 100)
	for i := range vs {
		vs[i] = float64(i)
	}
	st := ThresholdSturges(0, 100, 100)
	if len(st) != 8 {
		t.Errorf("Sturges for n=100 should give 8 levels, got %d", len(st))
	}
	sc := ThresholdScott(vs, 0, 100)
	if len(sc) == 0 {
		t.Error("Scott returned no levels")
	}
	fd := ThresholdFreedmanDiaconis(vs, 0, 100)
	if len(fd) == 0 {
		t.Error("Freedman-Diaconis returned no levels")
	}
	if got := ThresholdSturges(0, 0, 10); got != nil {
		t.Errorf("degenerate domain should return nil, got %v", got)
	}
}
