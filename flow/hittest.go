package flow

import "github.com/gogpu/viz"

// HitKind says what a probe landed on.
type HitKind uint8

const (
	// HitCanvas is the empty background.
	HitCanvas HitKind = iota
	HitNode
	HitInputPort
	HitOutputPort
	HitConnection
)

// Hit is a hit test result. Node and Port are set for node and port
// hits, Connection for connection hits.
type Hit struct {
	Kind       HitKind
	Node       NodeID
	Port       int
	Connection ConnectionID
}

// Default hit zone sizes in screen pixels. They do not scale with
// zoom.
const (
	defaultPortRadius          = 10.0
	defaultConnectionTolerance = 5.0
)

// HitTester probes the canvas in priority order: output ports, input
// ports, nodes, connections, background.
type HitTester struct {
	portRadius          float64
	connectionTolerance float64
}

// NewHitTester uses the 10px port radius and 5px connection
// tolerance.
func NewHitTester() HitTester {
	return HitTester{
		portRadius:          defaultPortRadius,
		connectionTolerance: defaultConnectionTolerance,
	}
}

// PortRadius overrides the port hit radius.
func (h HitTester) PortRadius(px float64) HitTester {
	h.portRadius = px
	return h
}

// ConnectionTolerance overrides the connection hit distance.
func (h HitTester) ConnectionTolerance(px float64) HitTester {
	h.connectionTolerance = px
	return h
}

// Test probes a screen point. The viewport is needed because the node
// border is a fixed pixel width while the rest of the node scales, so
// port screen positions cannot be derived from canvas coordinates
// alone.
func (h HitTester) Test(p viz.Point, g *Graph, vp Viewport) Hit {
	for _, node := range g.Nodes() {
		for i := 0; i < node.Outputs; i++ {
			if p.Distance(h.portScreen(node, i, false, vp)) <= h.portRadius {
				return Hit{Kind: HitOutputPort, Node: node.ID, Port: i}
			}
		}
		for i := 0; i < node.Inputs; i++ {
			if p.Distance(h.portScreen(node, i, true, vp)) <= h.portRadius {
				return Hit{Kind: HitInputPort, Node: node.ID, Port: i}
			}
		}
	}
	for _, node := range g.Nodes() {
		if h.inNodeScreen(p, node, vp) {
			return Hit{Kind: HitNode, Node: node.ID}
		}
	}
	for _, conn := range g.connections {
		if h.onConnectionScreen(p, conn, g, vp) {
			return Hit{Kind: HitConnection, Connection: conn.ID}
		}
	}
	return Hit{Kind: HitCanvas}
}

// portScreen computes a port's screen position. Header and padding
// scale with zoom; the border stays fixed, so ports sit just inside
// the scaled node edge.
func (h HitTester) portScreen(n *Node, index int, input bool, vp Viewport) viz.Point {
	count := n.Outputs
	if input {
		count = n.Inputs
	}

	origin := vp.CanvasToScreen(n.Position)
	header := headerHeight * vp.Zoom
	padding := contentPadding * vp.Zoom
	width := n.Width * vp.Zoom
	height := n.Height * vp.Zoom

	var y float64
	if count == 0 {
		y = origin.Y + height/2
	} else {
		content := height - header - 2*borderWidth
		available := content - 2*padding
		spacing := available / float64(count)
		y = origin.Y + borderWidth + header + padding + spacing*(float64(index)+0.5)
	}
	x := origin.X + borderWidth
	if !input {
		x = origin.X + width - borderWidth
	}
	return viz.Pt(x, y)
}

func (h HitTester) inNodeScreen(p viz.Point, n *Node, vp Viewport) bool {
	origin := vp.CanvasToScreen(n.Position)
	return p.X >= origin.X && p.X <= origin.X+n.Width*vp.Zoom &&
		p.Y >= origin.Y && p.Y <= origin.Y+n.Height*vp.Zoom
}

func (h HitTester) onConnectionScreen(p viz.Point, c Connection, g *Graph, vp Viewport) bool {
	from, ok := g.nodes[c.FromNode]
	if !ok {
		return false
	}
	to, ok := g.nodes[c.ToNode]
	if !ok {
		return false
	}
	path := ConnectionPath(
		h.portScreen(from, c.FromPort, false, vp),
		h.portScreen(to, c.ToPort, true, vp),
		flattenTolerance,
	)
	for i := 0; i+1 < len(path); i++ {
		if p.SegmentDistance(path[i], path[i+1]) <= h.connectionTolerance {
			return true
		}
	}
	return false
}

// NodesInRect returns ids of nodes whose canvas rects intersect the
// axis-aligned rectangle, in insertion order.
func (h HitTester) NodesInRect(x, y, w, hgt float64, g *Graph) []NodeID {
	var out []NodeID
	for _, n := range g.Nodes() {
		if n.Position.X+n.Width < x || n.Position.X > x+w ||
			n.Position.Y+n.Height < y || n.Position.Y > y+hgt {
			continue
		}
		out = append(out, n.ID)
	}
	return out
}
