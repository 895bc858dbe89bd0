// Package graph defines the caller-side graph builder used to feed the
// Bellman-Ford engine: nodes with display labels, directed weighted edges,
// and the explicit edge-processing order.
//
// The builder enforces what the engine only assumes: node IDs are unique,
// edge endpoints exist, and edge IDs are unique. Every edge added is
// appended to the edge order; removing a node cascades to its incident
// edges and drops them from the order.
//
// All methods are safe for concurrent use. Query methods return copies so
// callers can never mutate the builder through a returned value.
//
// Errors:
//
//	ErrEmptyNodeID          - node ID is the empty string.
//	ErrDuplicateNode        - a node with the same ID already exists.
//	ErrNodeNotFound         - requested node does not exist.
//	ErrDuplicateEdge        - an edge with the same ID already exists.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrEdgeMissingFromOrder - some edge is absent from the edge order.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph building operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID already exists.
	ErrDuplicateNode = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrDuplicateEdge indicates that an edge with the same ID already exists.
	ErrDuplicateEdge = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEdgeMissingFromOrder indicates that the edge order does not cover every edge.
	ErrEdgeMissingFromOrder = errors.New("graph: edges missing from relaxation order")
)

// DefaultArrows is the rendering hint given to edges created without WithArrows.
const DefaultArrows = "to"

// Node is a vertex of the graph.
type Node struct {
	// ID uniquely identifies the node.
	ID string

	// Label is the display label. Defaults to ID.
	Label string
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// ID uniquely identifies the edge. Defaults to "from-to".
	ID string

	// From is the tail node ID.
	From string

	// To is the head node ID.
	To string

	// Weight may be negative or zero.
	Weight int64

	// Arrows is a rendering hint carried through untouched.
	Arrows string
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeID overrides the default "from-to" edge identifier.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// WithArrows sets the edge rendering hint.
func WithArrows(arrows string) EdgeOption {
	return func(e *Edge) { e.Arrows = arrows }
}

// EdgeID returns the default identifier of an edge from→to.
func EdgeID(from, to string) string {
	return from + "-" + to
}

// Graph is the mutable graph builder.
//
// nodeSeq and edgeSeq remember insertion order, which is both the display
// order and the order restored by ResetOrder. order is the edge-processing
// order handed to the engine.
type Graph struct {
	mu sync.RWMutex

	nodes   map[string]*Node
	nodeSeq []string
	edges   map[string]*Edge
	edgeSeq []string
	order   []string
}

// New creates an empty Graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}
