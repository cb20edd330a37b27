package interact

import (
	"math"

	"github.com/gogpu/viz"
)

// logDomainFloor keeps log-axis domains away from zero.
const logDomainFloor = 1e-10

// wheelFactor is the zoom applied per wheel notch.
const wheelFactor = 1.1

// maxZoomHistory bounds the undo stack.
const maxZoomHistory = 64

// Zoom holds the current domain rectangle plus a bounded undo stack,
// the model behind brush-zoom and wheel-zoom.
type Zoom struct {
	original Rect
	current  Rect
	history  []Rect
	xLog     bool
	yLog     bool
}

// NewZoom starts at the given full domain.
func NewZoom(domain Rect) *Zoom {
	return &Zoom{original: domain, current: domain}
}

// LogX marks the x axis logarithmic; its domain is clamped positive.
func (z *Zoom) LogX(on bool) *Zoom {
	z.xLog = on
	z.current = z.clamp(z.current)
	return z
}

// LogY marks the y axis logarithmic.
func (z *Zoom) LogY(on bool) *Zoom {
	z.yLog = on
	z.current = z.clamp(z.current)
	return z
}

// Domain returns the current domain rectangle.
func (z *Zoom) Domain() Rect { return z.current }

// ZoomTo pushes the current domain onto the history and switches to
// the new rectangle.
func (z *Zoom) ZoomTo(r Rect) {
	z.history = append(z.history, z.current)
	if len(z.history) > maxZoomHistory {
		z.history = z.history[1:]
	}
	z.current = z.clamp(r)
}

// ZoomBack pops the most recent domain. Reports false at the bottom
// of the stack.
func (z *Zoom) ZoomBack() bool {
	if len(z.history) == 0 {
		return false
	}
	z.current = z.history[len(z.history)-1]
	z.history = z.history[:len(z.history)-1]
	return true
}

// CanZoomBack reports whether history remains.
func (z *Zoom) CanZoomBack() bool { return len(z.history) > 0 }

// Reset clears the history and restores the original domain.
func (z *Zoom) Reset() {
	z.history = z.history[:0]
	z.current = z.original
}

func (z *Zoom) clamp(r Rect) Rect {
	if z.xLog {
		r.X0 = math.Max(r.X0, logDomainFloor)
		r.X1 = math.Max(r.X1, logDomainFloor)
	}
	if z.yLog {
		r.Y0 = math.Max(r.Y0, logDomainFloor)
		r.Y1 = math.Max(r.Y1, logDomainFloor)
	}
	return r
}

// Wheel zooms about the domain point under the mouse. The viewport is
// the plot area in screen pixels (y down); notches is the wheel delta,
// positive to zoom in. The anchored point stays under the cursor.
func (z *Zoom) Wheel(mouse viz.Point, viewport Rect, notches float64) {
	if viewport.Width() <= 0 || viewport.Height() <= 0 || notches == 0 {
		return
	}
	factor := math.Pow(wheelFactor, -notches)
	fx := (mouse.X - viewport.X0) / viewport.Width()
	// Screen y grows downward while the domain grows upward.
	fy := (viewport.Y1 - mouse.Y) / viewport.Height()

	x0, x1 := zoomAxis(z.current.X0, z.current.X1, fx, factor, z.xLog)
	y0, y1 := zoomAxis(z.current.Y0, z.current.Y1, fy, factor, z.yLog)
	z.ZoomTo(Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// zoomAxis rescales one axis about the fractional anchor position.
// Log axes zoom in log space so ratios, not differences, are
// preserved.
func zoomAxis(lo, hi, frac, factor float64, logScale bool) (float64, float64) {
	if logScale {
		llo := math.Log10(math.Max(lo, logDomainFloor))
		lhi := math.Log10(math.Max(hi, logDomainFloor))
		anchor := llo + frac*(lhi-llo)
		w := (lhi - llo) * factor
		nlo := anchor - frac*w
		return math.Pow(10, nlo), math.Pow(10, nlo+w)
	}
	anchor := lo + frac*(hi-lo)
	w := (hi - lo) * factor
	nlo := anchor - frac*w
	return nlo, nlo + w
}
