package axis

import "github.com/gogpu/viz"

// Position anchors a legend relative to the chart.
type Position uint8

const (
	TopRight Position = iota
	TopLeft
	BottomLeft
	BottomRight
	// PosTop centers the legend above the chart.
	PosTop
	// PosBottom centers the legend below the chart.
	PosBottom
	// PosLeft centers the legend at the left edge.
	PosLeft
	// PosRight centers the legend at the right edge.
	PosRight
)

// LegendOrientation arranges legend items in a row or a column.
type LegendOrientation uint8

const (
	Vertical LegendOrientation = iota
	Horizontal
)

// SymbolKind is the marker drawn next to a legend label.
type SymbolKind uint8

const (
	SymbolCircle SymbolKind = iota
	SymbolSquare
	SymbolLine
	SymbolLineWithMarker
	SymbolDashedLine
	SymbolNone
)

// Item is one legend entry.
type Item struct {
	Label  string
	Color  viz.RGBA
	Symbol SymbolKind
}

// symbolLabelGap separates the symbol from its label.
const symbolLabelGap = 8.0

// Legend describes a chart legend. Dimensions are estimates from an
// average character width; the renderer measures text exactly.
type Legend struct {
	position    Position
	orientation LegendOrientation
	title       string
	items       []Item

	symbolSize  float64
	itemSpacing float64
	padding     float64
	fontSize    float64

	background      bool
	backgroundColor viz.RGBA
	borderWidth     float64
	borderColor     viz.RGBA
}

// NewLegend returns a vertical top-right legend with a white
// background and a light border.
func NewLegend() Legend {
	return Legend{
		position:        TopRight,
		orientation:     Vertical,
		symbolSize:      12,
		itemSpacing:     8,
		padding:         8,
		fontSize:        12,
		background:      true,
		backgroundColor: viz.RGB(1, 1, 1),
		borderWidth:     1,
		borderColor:     viz.FromHex(0xc8c8c8),
	}
}

// Position sets the anchor corner or edge.
func (l Legend) Position(p Position) Legend {
	l.position = p
	return l
}

// Orientation sets row or column item flow.
func (l Legend) Orientation(o LegendOrientation) Legend {
	l.orientation = o
	return l
}

// Title sets the legend heading.
func (l Legend) Title(s string) Legend {
	l.title = s
	return l
}

// Items replaces the entry list.
func (l Legend) Items(items []Item) Legend {
	l.items = items
	return l
}

// Add appends one entry.
func (l Legend) Add(item Item) Legend {
	l.items = append(l.items, item)
	return l
}

// SymbolSize sets the marker size in pixels.
func (l Legend) SymbolSize(px float64) Legend {
	l.symbolSize = px
	return l
}

// ItemSpacing sets the gap between entries.
func (l Legend) ItemSpacing(px float64) Legend {
	l.itemSpacing = px
	return l
}

// Padding sets the inset around the entries.
func (l Legend) Padding(px float64) Legend {
	l.padding = px
	return l
}

// FontSize sets the label font size.
func (l Legend) FontSize(px float64) Legend {
	l.fontSize = px
	return l
}

// Background toggles the backdrop fill.
func (l Legend) Background(on bool) Legend {
	l.background = on
	return l
}

// BackgroundColor sets the backdrop fill color.
func (l Legend) BackgroundColor(c viz.RGBA) Legend {
	l.backgroundColor = c
	return l
}

// Border sets the outline width and color. Zero width hides it.
func (l Legend) Border(width float64, c viz.RGBA) Legend {
	l.borderWidth = width
	l.borderColor = c
	return l
}

// ItemList returns the current entries.
func (l Legend) ItemList() []Item { return l.items }

// TitleText returns the heading, empty if unset.
func (l Legend) TitleText() string { return l.title }

// EstimateSize approximates the legend's width and height from the
// average character width of the label font.
func (l Legend) EstimateSize(avgCharWidth float64) (w, h float64) {
	if len(l.items) == 0 {
		return 0, 0
	}
	titleHeight := 0.0
	if l.title != "" {
		titleHeight = l.fontSize * 1.5
	}
	if l.orientation == Vertical {
		maxLabel := 0.0
		for _, it := range l.items {
			if lw := float64(len(it.Label)) * avgCharWidth; lw > maxLabel {
				maxLabel = lw
			}
		}
		w = l.padding*2 + l.symbolSize + symbolLabelGap + maxLabel
		h = l.padding*2 + titleHeight +
			float64(len(l.items))*(l.symbolSize+l.itemSpacing) - l.itemSpacing
		return w, h
	}
	total := 0.0
	for _, it := range l.items {
		total += l.symbolSize + symbolLabelGap +
			float64(len(it.Label))*avgCharWidth + l.itemSpacing
	}
	w = l.padding*2 + total - l.itemSpacing
	h = l.padding*2 + titleHeight + l.symbolSize
	return w, h
}

// Offset returns the legend's top-left corner within the chart, given
// the estimated legend size and an outer margin.
func (l Legend) Offset(chartW, chartH, legendW, legendH, margin float64) (x, y float64) {
	switch l.position {
	case TopLeft:
		return margin, margin
	case TopRight:
		return chartW - legendW - margin, margin
	case BottomLeft:
		return margin, chartH - legendH - margin
	case BottomRight:
		return chartW - legendW - margin, chartH - legendH - margin
	case PosTop:
		return (chartW - legendW) / 2, margin
	case PosBottom:
		return (chartW - legendW) / 2, chartH - legendH - margin
	case PosLeft:
		return margin, (chartH - legendH) / 2
	default:
		return chartW - legendW - margin, (chartH - legendH) / 2
	}
}

// LegendFromScale builds square-swatch entries by sampling a color
// scale at the given threshold values, for continuous encodings.
func LegendFromScale(scale func(float64) viz.RGBA, thresholds []float64, format func(float64) string) []Item {
	if format == nil {
		format = defaultFormat
	}
	items := make([]Item, 0, len(thresholds))
	for _, t := range thresholds {
		items = append(items, Item{
			Label:  format(t),
			Color:  scale(t),
			Symbol: SymbolSquare,
		})
	}
	return items
}
