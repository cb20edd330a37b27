package contour

import (
	"github.com/gogpu/viz"
)

// HeatmapCell is one grid cell with its bounds, sampled value and
// resolved color. Adjacent cells share bounds exactly, so a renderer
// drawing them as quads produces no seams.
type HeatmapCell struct {
	X0, Y0 float64
	X1, Y1 float64
	Value  float64
	Color  viz.RGBA
}

// Heatmap tessellates the grid into (Width-1)×(Height-1) cells, each
// valued at the mean of its four corner samples and colored through
// the given interpolating scale.
func (g Grid) Heatmap(color func(float64) viz.RGBA) []HeatmapCell {
	out := make([]HeatmapCell, 0, (g.Width-1)*(g.Height-1))
	for j := 0; j < g.Height-1; j++ {
		for i := 0; i < g.Width-1; i++ {
			v := (g.at(i, j) + g.at(i+1, j) + g.at(i+1, j+1) + g.at(i, j+1)) / 4
			cell := HeatmapCell{
				X0:    g.transformX(float64(i)),
				Y0:    g.transformY(float64(j)),
				X1:    g.transformX(float64(i + 1)),
				Y1:    g.transformY(float64(j + 1)),
				Value: v,
			}
			if color != nil {
				cell.Color = color(v)
			}
			out = append(out, cell)
		}
	}
	return out
}

// HeatmapVertex is one corner of a heatmap triangle, ready for a flat
// vertex buffer.
type HeatmapVertex struct {
	X, Y  float64
	Color viz.RGBA
}

// Triangles expands heatmap cells into two triangles each (six
// vertices per cell, counter-clockwise) for direct upload.
func Triangles(cells []HeatmapCell) []HeatmapVertex {
	out := make([]HeatmapVertex, 0, len(cells)*6)
	for _, c := range cells {
		bl := HeatmapVertex{X: c.X0, Y: c.Y0, Color: c.Color}
		br := HeatmapVertex{X: c.X1, Y: c.Y0, Color: c.Color}
		tr := HeatmapVertex{X: c.X1, Y: c.Y1, Color: c.Color}
		tl := HeatmapVertex{X: c.X0, Y: c.Y1, Color: c.Color}
		out = append(out, bl, br, tr, bl, tr, tl)
	}
	return out
}
