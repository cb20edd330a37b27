package flow

import "github.com/gogpu/viz"

// Zoom bounds and the wheel step factor.
const (
	MinZoom       = 0.25
	MaxZoom       = 4.0
	zoomWheelStep = 0.1
)

// Viewport is the canvas pan and zoom state. Screen = canvas·zoom +
// offset.
type Viewport struct {
	// Offset is the pan offset in screen pixels.
	Offset viz.Point
	// Zoom is clamped to [MinZoom, MaxZoom].
	Zoom float64
	// Width and Height are the canvas element size in pixels.
	Width, Height float64
}

// NewViewport returns an 800x600 viewport at zoom 1.
func NewViewport() Viewport {
	return Viewport{Zoom: 1, Width: 800, Height: 600}
}

// ScreenToCanvas converts a screen point to canvas coordinates.
func (v Viewport) ScreenToCanvas(p viz.Point) viz.Point {
	return viz.Pt((p.X-v.Offset.X)/v.Zoom, (p.Y-v.Offset.Y)/v.Zoom)
}

// CanvasToScreen converts a canvas point to screen coordinates.
func (v Viewport) CanvasToScreen(p viz.Point) viz.Point {
	return viz.Pt(p.X*v.Zoom+v.Offset.X, p.Y*v.Zoom+v.Offset.Y)
}

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.Offset.X += dx
	v.Offset.Y += dy
}

// ZoomAt applies a wheel delta centered on a screen point. The canvas
// point under the cursor stays put.
func (v *Viewport) ZoomAt(delta float64, at viz.Point) {
	oldZoom := v.Zoom
	v.Zoom = clampZoom(v.Zoom * (1 + delta*zoomWheelStep))
	change := v.Zoom / oldZoom
	v.Offset.X = at.X - (at.X-v.Offset.X)*change
	v.Offset.Y = at.Y - (at.Y-v.Offset.Y)*change
}

// SetZoom sets the zoom directly, clamped, keeping the canvas center
// fixed.
func (v *Viewport) SetZoom(zoom float64) {
	center := viz.Pt(v.Width/2, v.Height/2)
	oldZoom := v.Zoom
	v.Zoom = clampZoom(zoom)
	change := v.Zoom / oldZoom
	v.Offset.X = center.X - (center.X-v.Offset.X)*change
	v.Offset.Y = center.Y - (center.Y-v.Offset.Y)*change
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
