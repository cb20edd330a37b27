// Package interact implements the pointer-driven chart interactions:
// rectangular brushing, domain zooming with history, and timed
// transitions.
package interact

import (
	"math"

	"github.com/gogpu/viz"
)

// Rect is an axis-aligned rectangle. Construction normalizes corner
// order, so X0 <= X1 and Y0 <= Y1 throughout the package.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect builds a rect from any two opposite corners.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1), Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1), Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p viz.Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// BrushState is the brush interaction phase.
type BrushState uint8

const (
	// BrushIdle means no drag is in progress.
	BrushIdle BrushState = iota
	// BrushActive means a drag started and the selection is growing.
	BrushActive
)

// defaultBrushMinSize discards accidental click-drags.
const defaultBrushMinSize = 5.0

// Brush tracks a drag-to-select rectangle in screen pixels.
type Brush struct {
	state   BrushState
	start   viz.Point
	current viz.Point
	minSize float64
}

// NewBrush returns an idle brush with the 5px minimum selection.
func NewBrush() *Brush {
	return &Brush{minSize: defaultBrushMinSize}
}

// MinSize overrides the minimum width and height in pixels.
func (b *Brush) MinSize(px float64) *Brush {
	b.minSize = px
	return b
}

// State returns the interaction phase.
func (b *Brush) State() BrushState { return b.state }

// Start begins a drag at p.
func (b *Brush) Start(p viz.Point) {
	b.state = BrushActive
	b.start = p
	b.current = p
}

// Update records the latest drag position. Ignored while idle.
func (b *Brush) Update(p viz.Point) {
	if b.state != BrushActive {
		return
	}
	b.current = p
}

// Rect returns the in-progress selection while active.
func (b *Brush) Rect() (Rect, bool) {
	if b.state != BrushActive {
		return Rect{}, false
	}
	return NewRect(b.start.X, b.start.Y, b.current.X, b.current.Y), true
}

// End finishes the drag. The selection is returned only when both its
// width and height reach the minimum size.
func (b *Brush) End() (Rect, bool) {
	if b.state != BrushActive {
		return Rect{}, false
	}
	b.state = BrushIdle
	r := NewRect(b.start.X, b.start.Y, b.current.X, b.current.Y)
	if r.Width() < b.minSize || r.Height() < b.minSize {
		return Rect{}, false
	}
	return r, true
}

// Cancel abandons the drag without producing a selection.
func (b *Brush) Cancel() {
	b.state = BrushIdle
}

// DomainSelection inverts a screen-space selection through the
// caller's scale inversions, one per axis.
func DomainSelection(sel Rect, invertX, invertY func(float64) float64) Rect {
	return NewRect(
		invertX(sel.X0), invertY(sel.Y0),
		invertX(sel.X1), invertY(sel.Y1),
	)
}
