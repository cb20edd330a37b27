package scale

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/viz"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLinearValue(t *testing.T) {
	s := NewLinear().Domain(0, 10).Range(0, 100)
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{5, 50},
		{10, 100},
		{-1, -10},  // extrapolates without clamp
		{11, 110},
	}
	for _, tt := range tests {
		if got := s.Value(tt.x); !approx(got, tt.want, 1e-12) {
			t.Errorf("Value(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestLinearClamp(t *testing.T) {
	s := NewLinear().Domain(0, 10).Range(0, 100).Clamp(true)
	if got := s.Value(-5); got != 0 {
		t.Errorf("clamped Value(-5) = %v, want 0", got)
	}
	if got := s.Value(15); got != 100 {
		t.Errorf("clamped Value(15) = %v, want 100", got)
	}
}

func TestLinearInvertRoundTrip(t *testing.T) {
	s := NewLinear().Domain(-3, 17).Range(40, 600)
	for _, x := range []float64{-3, -1.5, 0, 2.718, 8, 17} {
		got := s.Invert(s.Value(x))
		if !approx(got, x, 1e-9) {
			t.Errorf("Invert(Value(%v)) = %v", x, got)
		}
	}
}

func TestLinearInvertedRange(t *testing.T) {
	// Screen-space y axes run top-down.
	s := NewLinear().Domain(0, 10).Range(400, 0)
	if got := s.Value(0); got != 400 {
		t.Errorf("Value(0) = %v, want 400", got)
	}
	if got := s.Value(10); got != 0 {
		t.Errorf("Value(10) = %v, want 0", got)
	}
	if got := s.Invert(200); !approx(got, 5, 1e-9) {
		t.Errorf("Invert(200) = %v, want 5", got)
	}
}

func TestLinearTicks(t *testing.T) {
	got := NewLinear().Domain(0, 10).Range(0, 100).Ticks(5)
	want := []float64{0, 2, 4, 6, 8, 10}
	if len(got) != len(want) {
		t.Fatalf("Ticks(5) = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i], 1e-12) {
			t.Errorf("Ticks(5)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinearInvalidDomain(t *testing.T) {
	s := NewLinear().Domain(math.NaN(), 10).Range(0, 100)
	if !errors.Is(s.Err(), viz.ErrInvalidDomain) {
		t.Fatalf("Err() = %v, want ErrInvalidDomain", s.Err())
	}
	if !math.IsNaN(s.Value(5)) {
		t.Errorf("invalid scale Value(5) = %v, want NaN", s.Value(5))
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear().Domain(7, 7).Range(0, 100)
	if got := s.Value(7); got != 50 {
		t.Errorf("degenerate Value(7) = %v, want range midpoint 50", got)
	}
}

func TestLogValue(t *testing.T) {
	s := NewLog().Domain(10, 10000).Range(0, 300)
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := s.Value(100); !approx(got, 100, 1e-9) {
		t.Errorf("Value(100) = %v, want 100", got)
	}
	if got := s.Invert(200); !approx(got, 1000, 1e-6) {
		t.Errorf("Invert(200) = %v, want 1000", got)
	}
}

func TestLogInvertRoundTrip(t *testing.T) {
	s := NewLog().Domain(1, 1e6).Range(0, 500)
	for _, x := range []float64{1, 3.5, 100, 9999, 1e6} {
		got := s.Invert(s.Value(x))
		if math.Abs(got-x)/x > 1e-6 {
			t.Errorf("Invert(Value(%v)) = %v", x, got)
		}
	}
}

func TestLogNegativeDomain(t *testing.T) {
	s := NewLog().Domain(-1, -1000).Range(0, 3)
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := s.Value(-10); !approx(got, 1, 1e-9) {
		t.Errorf("Value(-10) = %v, want 1", got)
	}
	if got := s.Invert(2); !approx(got, -100, 1e-6) {
		t.Errorf("Invert(2) = %v, want -100", got)
	}
}

func TestLogInvalidDomain(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
	}{
		{"zero low", 0, 100},
		{"zero high", 1, 0},
		{"straddles zero", -10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLog().Domain(tt.d0, tt.d1)
			if !errors.Is(s.Err(), viz.ErrInvalidDomain) {
				t.Errorf("Err() = %v, want ErrInvalidDomain", s.Err())
			}
		})
	}
}

func TestLogOppositeSignInput(t *testing.T) {
	s := NewLog().Domain(1, 100).Range(0, 1)
	if !math.IsNaN(s.Value(-5)) {
		t.Errorf("Value(-5) = %v, want NaN", s.Value(-5))
	}
	if !math.IsNaN(s.Value(0)) {
		t.Errorf("Value(0) = %v, want NaN", s.Value(0))
	}
}

func TestLogTicks(t *testing.T) {
	got := NewLog().Domain(1, 100).Ticks(10)
	want := []float64{1, 2, 5, 10, 20, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("Ticks = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i], 1e-9) {
			t.Errorf("Ticks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLogNice(t *testing.T) {
	s := NewLog().Domain(3, 800).Nice()
	d0, d1 := s.d0, s.d1
	if !approx(d0, 1, 1e-9) || !approx(d1, 1000, 1e-9) {
		t.Errorf("Nice() domain = (%v, %v), want (1, 1000)", d0, d1)
	}
}

func TestSymlogThroughZero(t *testing.T) {
	s := NewSymlog().Domain(-100, 100).Range(0, 1)
	if got := s.Value(0); !approx(got, 0.5, 1e-12) {
		t.Errorf("Value(0) = %v, want 0.5", got)
	}
	// Symmetry about the midpoint.
	if a, b := s.Value(-50), s.Value(50); !approx(a+b, 1, 1e-12) {
		t.Errorf("Value(-50)+Value(50) = %v, want 1", a+b)
	}
	for _, x := range []float64{-100, -7, 0, 0.3, 42, 100} {
		got := s.Invert(s.Value(x))
		if !approx(got, x, 1e-6*math.Max(1, math.Abs(x))) {
			t.Errorf("Invert(Value(%v)) = %v", x, got)
		}
	}
}

func TestPowSqrt(t *testing.T) {
	s := NewSqrt().Domain(0, 100).Range(0, 10)
	if got := s.Value(25); !approx(got, 5, 1e-9) {
		t.Errorf("Value(25) = %v, want 5", got)
	}
	for _, x := range []float64{0, 1, 10, 64, 100} {
		got := s.Invert(s.Value(x))
		if !approx(got, x, 1e-6*math.Max(1, x)) {
			t.Errorf("Invert(Value(%v)) = %v", x, got)
		}
	}
}

func TestPowNegativeInput(t *testing.T) {
	// Sign-preserving transform keeps odd symmetry.
	s := NewSqrt().Domain(-100, 100).Range(-10, 10)
	if got := s.Value(-25); !approx(got, -5, 1e-9) {
		t.Errorf("Value(-25) = %v, want -5", got)
	}
}

func TestPowZeroExponent(t *testing.T) {
	s := NewPow().Exponent(0)
	if !errors.Is(s.Err(), viz.ErrInvalidDomain) {
		t.Fatalf("Err() = %v, want ErrInvalidDomain", s.Err())
	}
}

func TestTimeValueInvert(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := NewTime().Domain(t0, t1).Range(0, 240)
	noon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := s.Value(noon); !approx(got, 120, 1e-9) {
		t.Errorf("Value(noon) = %v, want 120", got)
	}
	if got := s.Invert(120); !got.Equal(noon) {
		t.Errorf("Invert(120) = %v, want %v", got, noon)
	}
}

func TestTimeTicksHourly(t *testing.T) {
	t0 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ticks := NewTime().Domain(t0, t1).Range(0, 100).Ticks(12)
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Sub(ticks[i-1]) != time.Hour {
			t.Fatalf("tick step %v, want 1h", ticks[i].Sub(ticks[i-1]))
		}
	}
	for _, tk := range ticks {
		if tk.Before(t0) || tk.After(t1) {
			t.Errorf("tick %v outside domain", tk)
		}
	}
}

func TestSequentialClamp(t *testing.T) {
	s := NewSequential(func(u float64) viz.RGBA {
		return viz.Black.Lerp(viz.White, u)
	}).Domain(0, 100)
	if got := s.Value(0); got != viz.Black {
		t.Errorf("Value(0) = %v, want black", got)
	}
	if got := s.Value(100); got != viz.White {
		t.Errorf("Value(100) = %v, want white", got)
	}
	if got := s.Value(250); got != viz.White {
		t.Errorf("clamped Value(250) = %v, want white", got)
	}
	mid := s.Value(50)
	if !approx(mid.R, 0.5, 1e-9) {
		t.Errorf("Value(50).R = %v, want 0.5", mid.R)
	}
}

func TestDivergingMidpoint(t *testing.T) {
	s := NewDiverging(func(u float64) viz.RGBA {
		return viz.RGBA{R: u, A: 1}
	}).Domain(-10, 0, 30)
	if got := s.Value(0); !approx(got.R, 0.5, 1e-12) {
		t.Errorf("Value(midpoint).R = %v, want 0.5", got.R)
	}
	if got := s.Value(-10); !approx(got.R, 0, 1e-12) {
		t.Errorf("Value(-10).R = %v, want 0", got.R)
	}
	if got := s.Value(30); !approx(got.R, 1, 1e-12) {
		t.Errorf("Value(30).R = %v, want 1", got.R)
	}
	// Asymmetric halves normalize independently.
	if got := s.Value(15); !approx(got.R, 0.75, 1e-12) {
		t.Errorf("Value(15).R = %v, want 0.75", got.R)
	}
}

func TestQuantileBuckets(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	s := NewQuantile(data, []string{"low", "mid", "high"})
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := s.Value(1); got != "low" {
		t.Errorf("Value(1) = %q, want low", got)
	}
	if got := s.Value(5.5); got != "mid" {
		t.Errorf("Value(5.5) = %q, want mid", got)
	}
	if got := s.Value(10); got != "high" {
		t.Errorf("Value(10) = %q, want high", got)
	}
	if n := len(s.Quantiles()); n != 2 {
		t.Errorf("Quantiles() has %d boundaries, want 2", n)
	}
}

func TestQuantileOutlierResistance(t *testing.T) {
	// A huge outlier should not pull the inner boundaries.
	data := []float64{1, 2, 3, 4, 1e9}
	s := NewQuantile(data, []int{0, 1})
	q := s.Quantiles()
	if len(q) != 1 || q[0] > 4 {
		t.Errorf("Quantiles() = %v, want single boundary <= 4", q)
	}
}

func TestQuantizeSegments(t *testing.T) {
	s := NewQuantize(0, 100, []string{"a", "b", "c", "d"})
	tests := []struct {
		x    float64
		want string
	}{
		{0, "a"}, {24, "a"}, {25, "b"}, {49, "b"},
		{50, "c"}, {74, "c"}, {75, "d"}, {100, "d"},
		{-10, "a"}, {200, "d"},
	}
	for _, tt := range tests {
		if got := s.Value(tt.x); got != tt.want {
			t.Errorf("Value(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestThresholdIntervals(t *testing.T) {
	s := NewThreshold([]float64{0, 100}, []string{"neg", "small", "big"})
	tests := []struct {
		x    float64
		want string
	}{
		{-5, "neg"}, {0, "small"}, {50, "small"}, {100, "big"}, {1e6, "big"},
	}
	for _, tt := range tests {
		if got := s.Value(tt.x); got != tt.want {
			t.Errorf("Value(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestThresholdDimensionMismatch(t *testing.T) {
	s := NewThreshold([]float64{0, 1}, []string{"a", "b"})
	if !errors.Is(s.Err(), viz.ErrDimensionMismatch) {
		t.Fatalf("Err() = %v, want ErrDimensionMismatch", s.Err())
	}
}

func TestBandLayout(t *testing.T) {
	s := NewBand[string]().
		Domain([]string{"a", "b", "c"}).
		Range(0, 120)
	if got := s.Step(); !approx(got, 40, 1e-9) {
		t.Errorf("Step() = %v, want 40", got)
	}
	if got := s.Bandwidth(); !approx(got, 40, 1e-9) {
		t.Errorf("Bandwidth() = %v, want 40", got)
	}
	for i, k := range []string{"a", "b", "c"} {
		got, ok := s.Value(k)
		if !ok {
			t.Fatalf("Value(%q) not ok", k)
		}
		if want := float64(i) * 40; !approx(got, want, 1e-9) {
			t.Errorf("Value(%q) = %v, want %v", k, got, want)
		}
	}
	if _, ok := s.Value("zzz"); ok {
		t.Error("Value of unknown key reported ok")
	}
}

func TestBandPadding(t *testing.T) {
	s := NewBand[string]().
		Domain([]string{"a", "b"}).
		Range(0, 100).
		PaddingInner(0.2).
		PaddingOuter(0.1)
	// step = 100 / (2 - 0.2 + 0.2) = 50
	if got := s.Step(); !approx(got, 50, 1e-9) {
		t.Errorf("Step() = %v, want 50", got)
	}
	if got := s.Bandwidth(); !approx(got, 40, 1e-9) {
		t.Errorf("Bandwidth() = %v, want 40", got)
	}
	a, _ := s.Value("a")
	b, _ := s.Value("b")
	if !approx(b-a, 50, 1e-9) {
		t.Errorf("band spacing = %v, want 50", b-a)
	}
}

func TestBandReversedRange(t *testing.T) {
	s := NewBand[string]().
		Domain([]string{"a", "b", "c"}).
		Range(120, 0)
	a, _ := s.Value("a")
	c, _ := s.Value("c")
	if a <= c {
		t.Errorf("reversed range: Value(a)=%v should exceed Value(c)=%v", a, c)
	}
}

func TestPointSpacing(t *testing.T) {
	s := NewPoint[string]().
		Domain([]string{"a", "b", "c"}).
		Range(0, 100)
	a, _ := s.Value("a")
	b, _ := s.Value("b")
	c, _ := s.Value("c")
	if !approx(a, 0, 1e-9) || !approx(b, 50, 1e-9) || !approx(c, 100, 1e-9) {
		t.Errorf("points = %v, %v, %v, want 0, 50, 100", a, b, c)
	}
}

func TestOrdinalCycling(t *testing.T) {
	s := NewOrdinal[string, int]().
		Domain([]string{"a", "b", "c", "d", "e"}).
		Range([]int{10, 20, 30})
	tests := []struct {
		k    string
		want int
	}{
		{"a", 10}, {"b", 20}, {"c", 30}, {"d", 10}, {"e", 20},
	}
	for _, tt := range tests {
		got, ok := s.Value(tt.k)
		if !ok || got != tt.want {
			t.Errorf("Value(%q) = %v, %v, want %v, true", tt.k, got, ok, tt.want)
		}
	}
	if _, ok := s.Value("x"); ok {
		t.Error("Value of unknown key reported ok")
	}
}

func TestOrdinalColorScheme(t *testing.T) {
	s := NewOrdinal[string, viz.RGBA]().
		Domain([]string{"apples", "oranges"}).
		Range(viz.SchemeCategory10)
	got, ok := s.Value("apples")
	if !ok || got != viz.SchemeCategory10[0] {
		t.Errorf("Value(apples) = %v, want first scheme color", got)
	}
}
