package flow

import "github.com/gogpu/viz"

// Mode is the canvas interaction state.
type Mode uint8

const (
	Idle Mode = iota
	Panning
	DraggingNodes
	CreatingConnection
	BoxSelecting
)

// nodeDrag tracks an in-progress node drag for delta application and
// cancel.
type nodeDrag struct {
	ids        []NodeID
	startMouse viz.Point
	original   map[NodeID]viz.Point
}

// ConnectionDrag is an in-progress connection gesture from a port.
type ConnectionDrag struct {
	FromNode NodeID
	FromPort int
	IsOutput bool
	Current  viz.Point
}

// BoxSelect is an in-progress rubber-band selection in canvas
// coordinates.
type BoxSelect struct {
	Start   viz.Point
	Current viz.Point
}

// Rect returns the normalized box as x, y, width, height.
func (b BoxSelect) Rect() (x, y, w, h float64) {
	x = min(b.Start.X, b.Current.X)
	y = min(b.Start.Y, b.Current.Y)
	return x, y, max(b.Start.X, b.Current.X) - x, max(b.Start.Y, b.Current.Y) - y
}

// Canvas owns the interactive state around a graph: viewport,
// selection, and the current gesture.
type Canvas struct {
	Graph     *Graph
	Viewport  Viewport
	Selection *Selection
	tester    HitTester

	mode     Mode
	drag     *nodeDrag
	connDrag *ConnectionDrag
	box      *BoxSelect
}

// NewCanvas wraps a graph with fresh viewport and selection state.
func NewCanvas(g *Graph) *Canvas {
	return &Canvas{
		Graph:     g,
		Viewport:  NewViewport(),
		Selection: NewSelection(),
		tester:    NewHitTester(),
	}
}

// Mode returns the current interaction mode.
func (c *Canvas) Mode() Mode { return c.mode }

// HitTest probes a screen point against the canvas contents.
func (c *Canvas) HitTest(p viz.Point) Hit {
	return c.tester.Test(p, c.Graph, c.Viewport)
}

// StartPan begins a pan gesture.
func (c *Canvas) StartPan() {
	c.mode = Panning
}

// StartNodeDrag begins dragging the selected nodes from the given
// canvas mouse position, recording their original positions.
func (c *Canvas) StartNodeDrag(mouse viz.Point) {
	ids := c.Selection.Nodes(c.Graph)
	if len(ids) == 0 {
		return
	}
	original := make(map[NodeID]viz.Point, len(ids))
	for _, id := range ids {
		if n, ok := c.Graph.Node(id); ok {
			original[id] = n.Position
		}
	}
	c.drag = &nodeDrag{ids: ids, startMouse: mouse, original: original}
	c.mode = DraggingNodes
}

// UpdateNodeDrag moves every dragged node by the mouse delta from the
// drag start.
func (c *Canvas) UpdateNodeDrag(mouse viz.Point) {
	if c.mode != DraggingNodes || c.drag == nil {
		return
	}
	delta := mouse.Sub(c.drag.startMouse)
	for _, id := range c.drag.ids {
		if n, ok := c.Graph.Node(id); ok {
			n.Position = c.drag.original[id].Add(delta)
		}
	}
}

// EndNodeDrag commits the drag.
func (c *Canvas) EndNodeDrag() {
	c.drag = nil
	c.mode = Idle
}

// CancelNodeDrag restores the original positions.
func (c *Canvas) CancelNodeDrag() {
	if c.drag != nil {
		for _, id := range c.drag.ids {
			if n, ok := c.Graph.Node(id); ok {
				n.Position = c.drag.original[id]
			}
		}
	}
	c.drag = nil
	c.mode = Idle
}

// StartConnectionDrag begins a connection gesture from a port.
func (c *Canvas) StartConnectionDrag(node NodeID, port int, isOutput bool, mouse viz.Point) {
	c.connDrag = &ConnectionDrag{FromNode: node, FromPort: port, IsOutput: isOutput, Current: mouse}
	c.mode = CreatingConnection
}

// UpdateConnectionDrag tracks the mouse while wiring.
func (c *Canvas) UpdateConnectionDrag(mouse viz.Point) {
	if c.connDrag != nil {
		c.connDrag.Current = mouse
	}
}

// ConnectionDragState returns the current gesture, nil when idle.
func (c *Canvas) ConnectionDragState() *ConnectionDrag { return c.connDrag }

// DropConnection finishes the gesture over a hit target. A drop on a
// compatible port adds the connection; anything else cancels. The
// drag always ends.
func (c *Canvas) DropConnection(target Hit) (ConnectionID, bool) {
	drag := c.connDrag
	c.connDrag = nil
	c.mode = Idle
	if drag == nil {
		return ConnectionID{}, false
	}
	var id ConnectionID
	var err error
	switch {
	case drag.IsOutput && target.Kind == HitInputPort:
		id, err = c.Graph.Connect(drag.FromNode, drag.FromPort, target.Node, target.Port)
	case !drag.IsOutput && target.Kind == HitOutputPort:
		id, err = c.Graph.Connect(target.Node, target.Port, drag.FromNode, drag.FromPort)
	default:
		return ConnectionID{}, false
	}
	if err != nil {
		viz.Logger().Warn("connection rejected", "err", err)
		return ConnectionID{}, false
	}
	return id, true
}

// StartBoxSelect begins a rubber-band selection at a canvas point.
func (c *Canvas) StartBoxSelect(start viz.Point) {
	c.box = &BoxSelect{Start: start, Current: start}
	c.mode = BoxSelecting
}

// UpdateBoxSelect grows the rubber band.
func (c *Canvas) UpdateBoxSelect(current viz.Point) {
	if c.box != nil {
		c.box.Current = current
	}
}

// BoxSelectState returns the current rubber band, nil when idle.
func (c *Canvas) BoxSelectState() *BoxSelect { return c.box }

// EndBoxSelect selects every node intersecting the box. Without
// additive the box replaces the selection.
func (c *Canvas) EndBoxSelect(additive bool) {
	box := c.box
	c.box = nil
	c.mode = Idle
	if box == nil {
		return
	}
	if !additive {
		c.Selection.Clear()
	}
	x, y, w, h := box.Rect()
	for _, id := range c.tester.NodesInRect(x, y, w, h, c.Graph) {
		c.Selection.SelectNode(id, true)
	}
}

// EndPan finishes a pan gesture.
func (c *Canvas) EndPan() {
	if c.mode == Panning {
		c.mode = Idle
	}
}
