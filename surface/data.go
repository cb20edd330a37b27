// Package surface builds renderable 3D meshes from gridded samples of
// z = f(x, y), with log-aware normalization, finite-difference
// normals, colormaps and both CPU (painter) and GPU (buffer upload)
// render paths.
package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/viz"
)

const logFloor = 1e-10

// Data holds a rectangular sampling of a scalar field. Z is row-major:
// Z[yi*len(X)+xi] is the sample at column xi, row yi. Axis ranges
// default to the first and last coordinate; the z range defaults to
// the finite extent of the samples.
type Data struct {
	X, Y []float64
	Z    []float64

	xMin, xMax float64
	yMin, yMax float64
	zMin, zMax float64

	xLog, yLog, zLog bool
}

// NewData wraps coordinate vectors and a sample grid.
func NewData(x, y, z []float64) (Data, error) {
	if len(z) != len(x)*len(y) {
		return Data{}, fmt.Errorf("%w: %d samples for %dx%d grid",
			viz.ErrDimensionMismatch, len(z), len(x), len(y))
	}
	d := Data{X: x, Y: y, Z: z}
	if len(x) > 0 {
		d.xMin, d.xMax = x[0], x[len(x)-1]
	}
	if len(y) > 0 {
		d.yMin, d.yMax = y[0], y[len(y)-1]
	}
	d.zMin, d.zMax = finiteExtent(z)
	return d, nil
}

// FromFunction samples f over a regular grid of nx-by-ny points.
func FromFunction(x0, x1, y0, y1 float64, nx, ny int, f func(x, y float64) float64) Data {
	x := make([]float64, nx)
	for i := range x {
		x[i] = x0 + (x1-x0)*float64(i)/float64(nx-1)
	}
	y := make([]float64, ny)
	for j := range y {
		y[j] = y0 + (y1-y0)*float64(j)/float64(ny-1)
	}
	z := make([]float64, nx*ny)
	for j, yv := range y {
		for i, xv := range x {
			z[j*nx+i] = f(xv, yv)
		}
	}
	d, _ := NewData(x, y, z)
	return d
}

func finiteExtent(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		lo, hi = 0, 1
	}
	return lo, hi
}

// LogX marks the x axis logarithmic for normalization.
func (d Data) LogX(on bool) Data { d.xLog = on; return d }

// LogY marks the y axis logarithmic.
func (d Data) LogY(on bool) Data { d.yLog = on; return d }

// LogZ marks the z axis logarithmic.
func (d Data) LogZ(on bool) Data { d.zLog = on; return d }

// ZRange overrides the z extent, pinning the colormap across frames.
func (d Data) ZRange(lo, hi float64) Data {
	d.zMin, d.zMax = lo, hi
	return d
}

// XCount returns the number of grid columns.
func (d Data) XCount() int { return len(d.X) }

// YCount returns the number of grid rows.
func (d Data) YCount() int { return len(d.Y) }

// At returns the sample at column xi, row yi.
func (d Data) At(xi, yi int) float64 {
	return d.Z[yi*len(d.X)+xi]
}

// NormalizeX maps an x coordinate to [-1, 1].
func (d Data) NormalizeX(x float64) float64 {
	return normalizeSigned(x, d.xMin, d.xMax, d.xLog)
}

// NormalizeY maps a y coordinate to [-1, 1].
func (d Data) NormalizeY(y float64) float64 {
	return normalizeSigned(y, d.yMin, d.yMax, d.yLog)
}

// NormalizeZ maps a sample to [0, 1], the colormap parameter.
func (d Data) NormalizeZ(z float64) float64 {
	lo, hi := d.zMin, d.zMax
	if d.zLog {
		z = math.Log(math.Max(z, logFloor))
		lo = math.Log(math.Max(lo, logFloor))
		hi = math.Log(math.Max(hi, logFloor))
	}
	if math.Abs(hi-lo) < 1e-12 {
		return 0.5
	}
	return (z - lo) / (hi - lo)
}

func normalizeSigned(v, lo, hi float64, logScale bool) float64 {
	if logScale {
		v = math.Log(math.Max(v, logFloor))
		lo = math.Log(math.Max(lo, logFloor))
		hi = math.Log(math.Max(hi, logFloor))
	}
	if math.Abs(hi-lo) < 1e-12 {
		return 0
	}
	return 2*(v-lo)/(hi-lo) - 1
}
