// File: methods.go
// Role: Node and edge lifecycle: AddNode/RemoveNode/AddEdge/RemoveEdge and queries.
// Determinism:
//   - Nodes() and Edges() follow insertion order; NodeIDs() is sorted.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package graph

import (
	"fmt"
	"sort"
)

// AddNode adds a node. An empty label defaults to the ID.
//
// Errors: ErrEmptyNodeID, ErrDuplicateNode.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if label == "" {
		label = id
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Label: label}
	g.nodeSeq = append(g.nodeSeq, id)

	return nil
}

// RemoveNode deletes a node together with every edge touching it.
// Removed edges are also dropped from the edge order.
//
// Errors: ErrNodeNotFound.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	// Incident edges first, so the order never references a vanished node.
	var eid string
	for _, eid = range append([]string(nil), g.edgeSeq...) {
		e := g.edges[eid]
		if e.From == id || e.To == id {
			g.removeEdgeLocked(eid)
		}
	}

	delete(g.nodes, id)
	g.nodeSeq = without(g.nodeSeq, id)

	return nil
}

// AddEdge creates a directed edge from→to and appends it to the edge order.
// The edge ID defaults to "from-to"; both endpoints must already exist.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}

	e := &Edge{ID: EdgeID(from, to), From: from, To: to, Weight: weight, Arrows: DefaultArrows}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if _, ok := g.edges[e.ID]; ok {
		return "", fmt.Errorf("%w: %q", ErrDuplicateEdge, e.ID)
	}

	g.edges[e.ID] = e
	g.edgeSeq = append(g.edgeSeq, e.ID)
	g.order = append(g.order, e.ID)

	return e.ID, nil
}

// RemoveEdge deletes one edge and drops it from the edge order.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(E).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	g.removeEdgeLocked(id)

	return nil
}

// removeEdgeLocked assumes g.mu is held for writing and id exists.
func (g *Graph) removeEdgeLocked(id string) {
	delete(g.edges, id)
	g.edgeSeq = without(g.edgeSeq, id)
	g.order = without(g.order, id)
}

// Clear removes all nodes, edges and the edge order.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.nodeSeq = nil
	g.edgeSeq = nil
	g.order = nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether an edge with the given ID exists.
func (g *Graph) HasEdge(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	return *e, nil
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodeSeq))
	for _, id := range g.nodeSeq {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs sorted ascending.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	ids := append([]string(nil), g.nodeSeq...)
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeSeq))
	for _, id := range g.edgeSeq {
		out = append(out, *g.edges[id])
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Snapshot returns value copies of nodes, edges and the edge order taken
// under a single read lock, ready to hand to the engine.
func (g *Graph) Snapshot() ([]Node, []Edge, []string) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodeSeq))
	for _, id := range g.nodeSeq {
		nodes = append(nodes, *g.nodes[id])
	}
	edges := make([]Edge, 0, len(g.edgeSeq))
	for _, id := range g.edgeSeq {
		edges = append(edges, *g.edges[id])
	}

	return nodes, edges, append([]string(nil), g.order...)
}

// without returns s with every occurrence of id removed, reusing s's backing array.
func without(s []string, id string) []string {
	out := s[:0]
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
