// Package demo holds the fixed five-node demonstration graph and its
// precomputed replay trace.
//
//	a ──5──► b ──(-4)──► e
//	│        ▲           │
//	(-3)     2           1
//	▼        │           ▼
//	c ──3──► d ◄─────────┘
//
// Edges are examined in the order a-b, a-c, d-b, c-d, b-e, e-d from
// source a. The cycle d → b → e → d weighs 2 − 4 + 1 = −1, so the final
// check step reports a negative cycle witnessed by d-b.
package demo

import (
	"sync"

	"github.com/katalvlaran/relaxlab/bellmanford"
	"github.com/katalvlaran/relaxlab/graph"
)

// Source is the source node of the demonstration.
const Source = "a"

var (
	nodes = []graph.Node{
		{ID: "a", Label: "a"},
		{ID: "b", Label: "b"},
		{ID: "c", Label: "c"},
		{ID: "d", Label: "d"},
		{ID: "e", Label: "e"},
	}

	edges = []graph.Edge{
		{ID: "a-b", From: "a", To: "b", Weight: 5, Arrows: graph.DefaultArrows},
		{ID: "a-c", From: "a", To: "c", Weight: -3, Arrows: graph.DefaultArrows},
		{ID: "d-b", From: "d", To: "b", Weight: 2, Arrows: graph.DefaultArrows},
		{ID: "c-d", From: "c", To: "d", Weight: 3, Arrows: graph.DefaultArrows},
		{ID: "b-e", From: "b", To: "e", Weight: -4, Arrows: graph.DefaultArrows},
		{ID: "e-d", From: "e", To: "d", Weight: 1, Arrows: graph.DefaultArrows},
	}

	order = []string{"a-b", "a-c", "d-b", "c-d", "b-e", "e-d"}
)

// Nodes returns a copy of the demonstration nodes.
func Nodes() []graph.Node { return append([]graph.Node(nil), nodes...) }

// Edges returns a copy of the demonstration edges.
func Edges() []graph.Edge { return append([]graph.Edge(nil), edges...) }

// Order returns a copy of the demonstration edge order.
func Order() []string { return append([]string(nil), order...) }

// Graph returns a fresh builder loaded with the demonstration graph, ready
// to be edited.
func Graph() *graph.Graph {
	g := graph.New()
	for _, n := range nodes {
		// The dataset is static and valid; errors cannot occur.
		_ = g.AddNode(n.ID, n.Label)
	}
	for _, e := range edges {
		_, _ = g.AddEdge(e.From, e.To, e.Weight, graph.WithEdgeID(e.ID), graph.WithArrows(e.Arrows))
	}
	_ = g.SetOrder(order)

	return g
}

var trace = sync.OnceValues(func() ([]bellmanford.Step, error) {
	return bellmanford.Trace(nodes, edges, order, Source)
})

// Steps returns the replay trace of the demonstration graph. The trace is
// computed once; every call returns deep copies.
func Steps() []bellmanford.Step {
	steps, err := trace()
	if err != nil {
		// Unreachable for the static dataset.
		panic(err)
	}

	out := make([]bellmanford.Step, len(steps))
	for i, s := range steps {
		out[i] = s.Clone()
	}

	return out
}
