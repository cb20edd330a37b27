package flow

// Selection is the set of selected nodes and connections.
type Selection struct {
	nodes       map[NodeID]struct{}
	connections map[ConnectionID]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{
		nodes:       make(map[NodeID]struct{}),
		connections: make(map[ConnectionID]struct{}),
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	clear(s.nodes)
	clear(s.connections)
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool {
	return len(s.nodes) == 0 && len(s.connections) == 0
}

// SelectNode adds a node. Without additive, the selection is replaced
// first (single click); with it, the node joins the selection
// (shift-click keeps the rest).
func (s *Selection) SelectNode(id NodeID, additive bool) {
	if !additive {
		s.Clear()
	}
	s.nodes[id] = struct{}{}
}

// SelectConnection adds a connection, replacing the selection unless
// additive.
func (s *Selection) SelectConnection(id ConnectionID, additive bool) {
	if !additive {
		s.Clear()
	}
	s.connections[id] = struct{}{}
}

// ToggleNode flips a node's membership, leaving the rest alone.
func (s *Selection) ToggleNode(id NodeID) {
	if _, ok := s.nodes[id]; ok {
		delete(s.nodes, id)
	} else {
		s.nodes[id] = struct{}{}
	}
}

// ToggleConnection flips a connection's membership.
func (s *Selection) ToggleConnection(id ConnectionID) {
	if _, ok := s.connections[id]; ok {
		delete(s.connections, id)
	} else {
		s.connections[id] = struct{}{}
	}
}

// NodeSelected reports membership.
func (s *Selection) NodeSelected(id NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// ConnectionSelected reports membership.
func (s *Selection) ConnectionSelected(id ConnectionID) bool {
	_, ok := s.connections[id]
	return ok
}

// Nodes returns the selected node ids in the graph's insertion order.
func (s *Selection) Nodes(g *Graph) []NodeID {
	out := make([]NodeID, 0, len(s.nodes))
	for _, id := range g.order {
		if _, ok := s.nodes[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Count returns the number of selected nodes plus connections.
func (s *Selection) Count() int {
	return len(s.nodes) + len(s.connections)
}
