// Package flow models an editable node-and-wire workflow graph: the
// graph itself with acyclic connection rules, canvas viewport state,
// selection, and pixel-accurate hit testing.
package flow

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/gogpu/viz"
)

// NodeID identifies a node.
type NodeID = uuid.UUID

// ConnectionID identifies a connection.
type ConnectionID = uuid.UUID

// Port layout constants matching the node chrome: a title header, the
// content padding, and the node border. The border stays fixed under
// zoom; the header and padding scale.
const (
	headerHeight   = 28.0
	contentPadding = 8.0
	borderWidth    = 2.0
)

// Default node dimensions.
const (
	defaultNodeWidth  = 180.0
	defaultNodeHeight = 100.0
)

// Node is one workflow node. Position is the top-left corner in
// canvas coordinates.
type Node struct {
	ID       NodeID
	Position viz.Point
	Width    float64
	Height   float64
	Title    string
	Inputs   int
	Outputs  int
	UserData json.RawMessage
}

// positionJSON keeps the persisted position keys lowercase without
// tagging the shared Point type.
type positionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// nodeJSON is the stable serialized node shape.
type nodeJSON struct {
	ID       NodeID          `json:"id"`
	Position positionJSON    `json:"position"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Title    string          `json:"title"`
	Inputs   int             `json:"input_count"`
	Outputs  int             `json:"output_count"`
	UserData json.RawMessage `json:"user_data,omitempty"`
}

// MarshalJSON writes the stable node shape with a lowercase x/y
// position object.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		ID:       n.ID,
		Position: positionJSON{X: n.Position.X, Y: n.Position.Y},
		Width:    n.Width,
		Height:   n.Height,
		Title:    n.Title,
		Inputs:   n.Inputs,
		Outputs:  n.Outputs,
		UserData: n.UserData,
	})
}

// UnmarshalJSON reads the stable node shape.
func (n *Node) UnmarshalJSON(b []byte) error {
	var doc nodeJSON
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*n = Node{
		ID:       doc.ID,
		Position: viz.Pt(doc.Position.X, doc.Position.Y),
		Width:    doc.Width,
		Height:   doc.Height,
		Title:    doc.Title,
		Inputs:   doc.Inputs,
		Outputs:  doc.Outputs,
		UserData: doc.UserData,
	}
	return nil
}

// NewNode creates a 180x100 node with one input and one output port.
func NewNode(title string, pos viz.Point) Node {
	return Node{
		ID:       uuid.New(),
		Position: pos,
		Width:    defaultNodeWidth,
		Height:   defaultNodeHeight,
		Title:    title,
		Inputs:   1,
		Outputs:  1,
	}
}

// WithPorts sets the input and output port counts.
func (n Node) WithPorts(inputs, outputs int) Node {
	n.Inputs = inputs
	n.Outputs = outputs
	return n
}

// WithSize sets the node dimensions.
func (n Node) WithSize(w, h float64) Node {
	n.Width = w
	n.Height = h
	return n
}

// WithUserData attaches application data carried through
// serialization untouched.
func (n Node) WithUserData(data json.RawMessage) Node {
	n.UserData = data
	return n
}

// Center returns the node's center point.
func (n Node) Center() viz.Point {
	return viz.Pt(n.Position.X+n.Width/2, n.Position.Y+n.Height/2)
}

// InputPort returns the canvas position of input port index on the
// left edge. Ports are spread evenly over the content area below the
// header.
func (n Node) InputPort(index int) viz.Point {
	return viz.Pt(n.Position.X, n.portY(index, n.Inputs))
}

// OutputPort returns the canvas position of output port index on the
// right edge.
func (n Node) OutputPort(index int) viz.Point {
	return viz.Pt(n.Position.X+n.Width, n.portY(index, n.Outputs))
}

func (n Node) portY(index, count int) float64 {
	if count == 0 {
		return n.Position.Y + n.Height/2
	}
	content := n.Height - headerHeight - 2*borderWidth
	available := content - 2*contentPadding
	spacing := available / float64(count)
	return n.Position.Y + borderWidth + headerHeight + contentPadding +
		spacing*(float64(index)+0.5)
}

// LinkType tags a connection for stroke weight and style.
type LinkType uint8

const (
	// Fat carries all channels bundled together.
	Fat LinkType = iota
	// Thin carries a single channel.
	Thin
)

// MarshalJSON encodes the link type as "Fat" or "Thin".
func (l LinkType) MarshalJSON() ([]byte, error) {
	if l == Thin {
		return []byte(`"Thin"`), nil
	}
	return []byte(`"Fat"`), nil
}

// UnmarshalJSON accepts "Fat" and "Thin", lowercase included;
// anything else defaults to fat.
func (l *LinkType) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"Thin"`, `"thin"`:
		*l = Thin
	default:
		*l = Fat
	}
	return nil
}

// Connection wires an output port to an input port.
type Connection struct {
	ID       ConnectionID `json:"id"`
	FromNode NodeID       `json:"from_node"`
	FromPort int          `json:"from_port"`
	ToNode   NodeID       `json:"to_node"`
	ToPort   int          `json:"to_port"`
	Link     LinkType     `json:"link_type"`
}

// Graph is the workflow: nodes plus directed acyclic connections.
// Node order is insertion order, which keeps hit testing and
// serialization deterministic.
type Graph struct {
	nodes       map[NodeID]*Node
	order       []NodeID
	connections []Connection
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// AddNode inserts the node and returns its id.
func (g *Graph) AddNode(n Node) NodeID {
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = &n
	return n.ID
}

// Node returns the node by id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// RemoveNode deletes the node and every connection touching it.
func (g *Graph) RemoveNode(id NodeID) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	kept := g.connections[:0]
	for _, c := range g.connections {
		if c.FromNode != id && c.ToNode != id {
			kept = append(kept, c)
		}
	}
	g.connections = kept
	return true
}

// Connect adds a fat connection from an output port to an input port.
func (g *Graph) Connect(from NodeID, fromPort int, to NodeID, toPort int) (ConnectionID, error) {
	return g.ConnectLink(from, fromPort, to, toPort, Fat)
}

// ConnectLink adds a connection with an explicit link type. It fails
// when either node is missing, the connection would be a self-loop or
// a duplicate, or it would close a cycle.
func (g *Graph) ConnectLink(from NodeID, fromPort int, to NodeID, toPort int, link LinkType) (ConnectionID, error) {
	if _, ok := g.nodes[from]; !ok {
		return uuid.Nil, fmt.Errorf("%w: source node %s not found", viz.ErrInvalidConnection, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return uuid.Nil, fmt.Errorf("%w: target node %s not found", viz.ErrInvalidConnection, to)
	}
	if from == to {
		return uuid.Nil, fmt.Errorf("%w: self-loop on node %s", viz.ErrInvalidConnection, from)
	}
	for _, c := range g.connections {
		if c.FromNode == from && c.FromPort == fromPort && c.ToNode == to && c.ToPort == toPort {
			return uuid.Nil, fmt.Errorf("%w: duplicate connection", viz.ErrInvalidConnection)
		}
	}
	if g.wouldCreateCycle(from, to) {
		return uuid.Nil, fmt.Errorf("%w: connection %s -> %s would create a cycle",
			viz.ErrInvalidConnection, from, to)
	}
	conn := Connection{
		ID:       uuid.New(),
		FromNode: from,
		FromPort: fromPort,
		ToNode:   to,
		ToPort:   toPort,
		Link:     link,
	}
	g.connections = append(g.connections, conn)
	return conn.ID, nil
}

// wouldCreateCycle walks forward from the target; reaching the source
// means the new edge would close a loop.
func (g *Graph) wouldCreateCycle(from, to NodeID) bool {
	visited := make(map[NodeID]bool)
	queue := []NodeID{to}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == from {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, c := range g.connections {
			if c.FromNode == current {
				queue = append(queue, c.ToNode)
			}
		}
	}
	return false
}

// RemoveConnection deletes the connection by id.
func (g *Graph) RemoveConnection(id ConnectionID) bool {
	for i, c := range g.connections {
		if c.ID == id {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			return true
		}
	}
	return false
}

// Connections returns all connections in insertion order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

// ConnectionsFrom returns the connections leaving a node.
func (g *Graph) ConnectionsFrom(id NodeID) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.FromNode == id {
			out = append(out, c)
		}
	}
	return out
}

// ConnectionsTo returns the connections entering a node.
func (g *Graph) ConnectionsTo(id NodeID) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.ToNode == id {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the node count.
func (g *Graph) Len() int { return len(g.nodes) }

// Empty reports whether the graph has no nodes.
func (g *Graph) Empty() bool { return len(g.nodes) == 0 }

// graphJSON is the stable serialized shape.
type graphJSON struct {
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// MarshalJSON writes nodes in insertion order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	doc := graphJSON{
		Nodes:       make([]Node, 0, len(g.order)),
		Connections: g.connections,
	}
	for _, id := range g.order {
		doc.Nodes = append(doc.Nodes, *g.nodes[id])
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the graph's contents.
func (g *Graph) UnmarshalJSON(b []byte) error {
	var doc graphJSON
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	g.nodes = make(map[NodeID]*Node, len(doc.Nodes))
	g.order = g.order[:0]
	for _, n := range doc.Nodes {
		node := n
		g.nodes[node.ID] = &node
		g.order = append(g.order, node.ID)
	}
	g.connections = doc.Connections
	return nil
}
