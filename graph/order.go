package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Order returns a copy of the edge-processing order.
func (g *Graph) Order() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// SetOrder replaces the edge order. Every ID must name an existing edge;
// the order may omit edges (see ValidateOrder) or repeat them.
//
// Errors: ErrEdgeNotFound (the order is left unchanged).
func (g *Graph) SetOrder(ids []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		if _, ok := g.edges[id]; !ok {
			return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
		}
	}
	g.order = append([]string(nil), ids...)

	return nil
}

// SortOrder orders all edges by tail node ID, then head node ID.
func (g *Graph) SortOrder() {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := append([]string(nil), g.edgeSeq...)
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := g.edges[ids[i]], g.edges[ids[j]]
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})
	g.order = ids
}

// ResetOrder restores the edge order to edge insertion order.
func (g *Graph) ResetOrder() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = append([]string(nil), g.edgeSeq...)
}

// MissingFromOrder returns, in insertion order, the IDs of edges that the
// edge order does not mention.
func (g *Graph) MissingFromOrder() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	inOrder := make(map[string]struct{}, len(g.order))
	for _, id := range g.order {
		inOrder[id] = struct{}{}
	}

	var missing []string
	for _, id := range g.edgeSeq {
		if _, ok := inOrder[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

// ValidateOrder returns ErrEdgeMissingFromOrder if some edge would never be
// examined by the engine.
func (g *Graph) ValidateOrder() error {
	if missing := g.MissingFromOrder(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrEdgeMissingFromOrder, strings.Join(missing, ", "))
	}

	return nil
}
