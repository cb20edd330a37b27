// Package axis lays out chart reference geometry: axes with tick
// marks and labels, background grids, and legends. The package
// produces positioned primitives; rendering them is the host's job.
package axis

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// Scale is the part of a continuous scale an axis needs: forward
// mapping, tick generation, and the pixel range it spans. The scale
// types in the scale package all satisfy it.
type Scale interface {
	Value(x float64) float64
	Ticks(count int) []float64
	RangeValues() (float64, float64)
}

// Orientation places the axis relative to the plot area.
type Orientation uint8

const (
	// Bottom draws ticks downward and labels below the line.
	Bottom Orientation = iota
	// Top draws ticks upward and labels above the line.
	Top
	// Left draws ticks leftward and right-aligned labels.
	Left
	// Right draws ticks rightward and left-aligned labels.
	Right
)

// Anchor tells the renderer how to align a label against its
// position.
type Anchor uint8

const (
	// AnchorMiddleBelow centers horizontally, text hangs below.
	AnchorMiddleBelow Anchor = iota
	// AnchorMiddleAbove centers horizontally, text sits above.
	AnchorMiddleAbove
	// AnchorEndCenter right-aligns, vertically centered.
	AnchorEndCenter
	// AnchorStartCenter left-aligns, vertically centered.
	AnchorStartCenter
)

// Tick is one positioned tick: the mark segment plus its label.
type Tick struct {
	Value    float64
	Line     [2]viz.Point
	Label    string
	LabelPos viz.Point
	Anchor   Anchor
}

// TitleLabel is the positioned axis title.
type TitleLabel struct {
	Text     string
	Position viz.Point
	// Vertical is set for left/right axes, where the title reads
	// bottom to top.
	Vertical bool
}

// Layout is everything a renderer needs to draw one axis.
type Layout struct {
	// Domain is the axis line itself.
	Domain [2]viz.Point
	Ticks  []Tick
	// MinorTicks carry marks only, no labels.
	MinorTicks []Tick
	Title      *TitleLabel
}

// Axis computes tick geometry for a scale and orientation.
type Axis struct {
	scale       Scale
	orientation Orientation
	tickCount   int
	tickValues  []float64
	minorValues []float64
	tickSize    float64
	minorSize   float64
	tickPadding float64
	format      func(float64) string
	title       string
	titlePad    float64
	fontSize    float64
}

// New creates an axis for the scale with default tick styling.
func New(s Scale, o Orientation) Axis {
	return Axis{
		scale:       s,
		orientation: o,
		tickCount:   10,
		tickSize:    6,
		minorSize:   3,
		tickPadding: 4,
		titlePad:    8,
		fontSize:    10,
	}
}

// Ticks sets the approximate tick count.
func (a Axis) Ticks(count int) Axis {
	a.tickCount = count
	return a
}

// TickValues sets explicit tick values, overriding the count.
func (a Axis) TickValues(values []float64) Axis {
	a.tickValues = values
	return a
}

// MinorTickValues sets positions for shorter unlabeled ticks.
func (a Axis) MinorTickValues(values []float64) Axis {
	a.minorValues = values
	return a
}

// TickSize sets the tick mark length in pixels.
func (a Axis) TickSize(px float64) Axis {
	a.tickSize = px
	return a
}

// MinorTickSize sets the minor tick mark length in pixels.
func (a Axis) MinorTickSize(px float64) Axis {
	a.minorSize = px
	return a
}

// TickPadding sets the gap between tick mark and label.
func (a Axis) TickPadding(px float64) Axis {
	a.tickPadding = px
	return a
}

// TickFormat sets a custom label formatter. Returning an empty string
// hides the label.
func (a Axis) TickFormat(f func(float64) string) Axis {
	a.format = f
	return a
}

// Title sets the axis title.
func (a Axis) Title(s string) Axis {
	a.title = s
	return a
}

// FontSize sets the label font size used when estimating title
// placement.
func (a Axis) FontSize(px float64) Axis {
	a.fontSize = px
	return a
}

// Layout positions the axis at the given cross coordinate: the y of a
// horizontal axis line, or the x of a vertical one.
func (a Axis) Layout(cross float64) Layout {
	values := a.tickValues
	if values == nil {
		values = a.scale.Ticks(a.tickCount)
	}
	r0, r1 := a.scale.RangeValues()
	lo, hi := math.Min(r0, r1), math.Max(r0, r1)

	var out Layout
	out.Domain = a.domainLine(cross, lo, hi)
	for _, v := range values {
		out.Ticks = append(out.Ticks, a.tick(v, cross, a.tickSize, true))
	}
	for _, v := range a.minorValues {
		p := a.scale.Value(v)
		if p < lo || p > hi {
			continue
		}
		out.MinorTicks = append(out.MinorTicks, a.tick(v, cross, a.minorSize, false))
	}
	if a.title != "" {
		out.Title = a.titleLabel(cross, lo, hi)
	}
	return out
}

func (a Axis) domainLine(cross, lo, hi float64) [2]viz.Point {
	if a.horizontal() {
		return [2]viz.Point{viz.Pt(lo, cross), viz.Pt(hi, cross)}
	}
	return [2]viz.Point{viz.Pt(cross, lo), viz.Pt(cross, hi)}
}

func (a Axis) tick(value, cross, size float64, labeled bool) Tick {
	pos := a.scale.Value(value)
	t := Tick{Value: value}
	switch a.orientation {
	case Bottom:
		t.Line = [2]viz.Point{viz.Pt(pos, cross), viz.Pt(pos, cross+size)}
		t.LabelPos = viz.Pt(pos, cross+a.tickSize+a.tickPadding)
		t.Anchor = AnchorMiddleBelow
	case Top:
		t.Line = [2]viz.Point{viz.Pt(pos, cross), viz.Pt(pos, cross-size)}
		t.LabelPos = viz.Pt(pos, cross-a.tickSize-a.tickPadding)
		t.Anchor = AnchorMiddleAbove
	case Left:
		t.Line = [2]viz.Point{viz.Pt(cross, pos), viz.Pt(cross-size, pos)}
		t.LabelPos = viz.Pt(cross-a.tickSize-a.tickPadding, pos)
		t.Anchor = AnchorEndCenter
	case Right:
		t.Line = [2]viz.Point{viz.Pt(cross, pos), viz.Pt(cross+size, pos)}
		t.LabelPos = viz.Pt(cross+a.tickSize+a.tickPadding, pos)
		t.Anchor = AnchorStartCenter
	}
	if labeled {
		t.Label = a.formatTick(value)
	}
	return t
}

func (a Axis) titleLabel(cross, lo, hi float64) *TitleLabel {
	mid := (lo + hi) / 2
	offset := a.tickSize + a.tickPadding + a.fontSize + a.titlePad
	switch a.orientation {
	case Bottom:
		return &TitleLabel{Text: a.title, Position: viz.Pt(mid, cross+offset)}
	case Top:
		return &TitleLabel{Text: a.title, Position: viz.Pt(mid, cross-offset)}
	case Left:
		return &TitleLabel{Text: a.title, Position: viz.Pt(cross-offset, mid), Vertical: true}
	default:
		return &TitleLabel{Text: a.title, Position: viz.Pt(cross+offset, mid), Vertical: true}
	}
}

func (a Axis) horizontal() bool {
	return a.orientation == Bottom || a.orientation == Top
}

func (a Axis) formatTick(v float64) string {
	if a.format != nil {
		return a.format(v)
	}
	return defaultFormat(v)
}

// defaultFormat keeps tick labels compact: integers without a
// decimal point, scientific notation outside [0.01, 1000).
func defaultFormat(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs < 1e-10:
		return "0"
	case abs >= 1000 || abs < 0.01:
		return fmt.Sprintf("%.1e", v)
	case math.Abs(v-math.Round(v)) < 1e-10:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
