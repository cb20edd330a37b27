// Package contour generates isolines, filled bands and heatmap
// tessellations from rank-2 scalar grids using marching squares.
package contour

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

// Grid is a rank-2 scalar field in row-major order: Values[j*Width+i]
// is the sample at column i, row j. Output coordinates default to grid
// indices; a linear range or explicit per-column/per-row coordinate
// vectors (for log-spaced axes) can be attached.
type Grid struct {
	Values []float64
	Width  int
	Height int

	x0, x1 float64
	y0, y1 float64
	xs, ys []float64
}

// NewGrid wraps values as a width-by-height grid with index
// coordinates.
func NewGrid(values []float64, width, height int) (Grid, error) {
	if width < 2 || height < 2 {
		return Grid{}, fmt.Errorf("%w: grid %dx%d needs at least 2 samples per axis",
			viz.ErrInvalidDomain, width, height)
	}
	if len(values) != width*height {
		return Grid{}, fmt.Errorf("%w: %d values for %dx%d grid",
			viz.ErrDimensionMismatch, len(values), width, height)
	}
	return Grid{
		Values: values,
		Width:  width,
		Height: height,
		x1:     float64(width - 1),
		y1:     float64(height - 1),
	}, nil
}

// X maps the column axis linearly onto [x0, x1].
func (g Grid) X(x0, x1 float64) Grid {
	g.x0, g.x1 = x0, x1
	g.xs = nil
	return g
}

// Y maps the row axis linearly onto [y0, y1].
func (g Grid) Y(y0, y1 float64) Grid {
	g.y0, g.y1 = y0, y1
	g.ys = nil
	return g
}

// XValues attaches explicit per-column coordinates, allowing
// non-linear spacing. len(xs) must equal Width.
func (g Grid) XValues(xs []float64) (Grid, error) {
	if len(xs) != g.Width {
		return g, fmt.Errorf("%w: %d x coordinates for width %d",
			viz.ErrDimensionMismatch, len(xs), g.Width)
	}
	g.xs = xs
	return g, nil
}

// YValues attaches explicit per-row coordinates. len(ys) must equal
// Height.
func (g Grid) YValues(ys []float64) (Grid, error) {
	if len(ys) != g.Height {
		return g, fmt.Errorf("%w: %d y coordinates for height %d",
			viz.ErrDimensionMismatch, len(ys), g.Height)
	}
	g.ys = ys
	return g, nil
}

// at returns the sample at column i, row j.
func (g Grid) at(i, j int) float64 {
	return g.Values[j*g.Width+i]
}

// transformX maps a fractional column position to output coordinates.
func (g Grid) transformX(px float64) float64 {
	return transformAxis(px, g.xs, g.x0, g.x1, g.Width)
}

// transformY maps a fractional row position to output coordinates.
func (g Grid) transformY(py float64) float64 {
	return transformAxis(py, g.ys, g.y0, g.y1, g.Height)
}

func transformAxis(p float64, explicit []float64, lo, hi float64, n int) float64 {
	if explicit != nil {
		idx := int(math.Floor(p))
		frac := p - math.Floor(p)
		switch {
		case idx+1 < len(explicit):
			return explicit[idx] + frac*(explicit[idx+1]-explicit[idx])
		case idx < len(explicit):
			return explicit[idx]
		}
	}
	return lo + p/float64(n-1)*(hi-lo)
}

// point converts fractional grid coordinates to an output point.
func (g Grid) point(px, py float64) viz.Point {
	return viz.Pt(g.transformX(px), g.transformY(py))
}
