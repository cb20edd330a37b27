package scale

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/viz"
)

// TimeScale maps instants onto a numeric range, linear in epoch
// milliseconds.
type TimeScale struct {
	t0, t1 time.Time
	r0, r1 float64
	err    error
}

// NewTime creates a time scale spanning the Unix epoch's first day.
func NewTime() TimeScale {
	epoch := time.Unix(0, 0).UTC()
	return TimeScale{t0: epoch, t1: epoch.Add(24 * time.Hour), r0: 0, r1: 1}
}

// Domain sets the input instants.
func (s TimeScale) Domain(t0, t1 time.Time) TimeScale {
	if t0.Equal(t1) {
		s.err = fmt.Errorf("%w: time domain is a single instant", viz.ErrInvalidDomain)
		return s
	}
	s.t0, s.t1 = t0, t1
	return s
}

// Range sets the output interval.
func (s TimeScale) Range(r0, r1 float64) TimeScale {
	if !isFinite(r0) || !isFinite(r1) {
		s.err = fmt.Errorf("%w: time range (%v, %v)", viz.ErrInvalidRange, r0, r1)
		return s
	}
	s.r0, s.r1 = r0, r1
	return s
}

// Err returns the first validation error recorded by a setter.
func (s TimeScale) Err() error { return s.err }

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Value maps an instant from the domain to the range.
func (s TimeScale) Value(t time.Time) float64 {
	if s.err != nil {
		return math.NaN()
	}
	u := normalize(millis(t), millis(s.t0), millis(s.t1))
	return lerp(u, s.r0, s.r1)
}

// Invert maps y from the range back to an instant.
func (s TimeScale) Invert(y float64) time.Time {
	u := normalize(y, s.r0, s.r1)
	ms := lerp(u, millis(s.t0), millis(s.t1))
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// DomainValues returns the current domain instants.
func (s TimeScale) DomainValues() (time.Time, time.Time) { return s.t0, s.t1 }

// RangeValues returns the current range endpoints.
func (s TimeScale) RangeValues() (float64, float64) { return s.r0, s.r1 }

// tickIntervals are the candidate time steps for tick generation, in
// ascending duration.
var tickIntervals = []time.Duration{
	time.Second, 5 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 2 * 24 * time.Hour, 7 * 24 * time.Hour,
	30 * 24 * time.Hour, 90 * 24 * time.Hour, 365 * 24 * time.Hour,
}

// Ticks returns approximately count instants at calendar-friendly
// steps (seconds, minutes, hours, days, weeks, months, years).
func (s TimeScale) Ticks(count int) []time.Time {
	if s.err != nil || count <= 0 {
		return nil
	}
	t0, t1 := s.t0, s.t1
	if t1.Before(t0) {
		t0, t1 = t1, t0
	}
	span := t1.Sub(t0)
	target := span / time.Duration(count)

	step := tickIntervals[len(tickIntervals)-1]
	for _, iv := range tickIntervals {
		if iv >= target {
			step = iv
			break
		}
	}
	// Multi-year spans step in whole multiples of a year.
	if target > step {
		years := math.Ceil(float64(target) / float64(365*24*time.Hour))
		step = time.Duration(years) * 365 * 24 * time.Hour
	}

	first := t0.Truncate(step)
	if first.Before(t0) {
		first = first.Add(step)
	}
	var out []time.Time
	for t := first; !t.After(t1); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
