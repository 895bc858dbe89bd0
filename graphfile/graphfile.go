// Package graphfile reads and writes graph descriptions for the CLI harness.
//
// Two encodings are accepted, chosen by file extension:
//
//	.toml
//	  source = "a"
//	  order  = ["a-b", "b-c"]
//	  [[node]]
//	  id = "a"
//	  [[edge]]
//	  from = "a"
//	  to = "b"
//	  weight = 5
//
//	.hcl
//	  source = "a"
//	  order  = ["a-b", "b-c"]
//	  node "a" {}
//	  edge "a" "b" { weight = 5 }
//
// Edge IDs default to "from-to"; an empty order keeps edge insertion order.
// The encoding is a harness convenience, not part of the algorithm contract.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/relaxlab/graph"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .toml or .hcl.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported file format")

	// ErrUnknownField indicates keys in a TOML document that map to no field.
	ErrUnknownField = errors.New("graphfile: unknown field")
)

// Document is the decoded form of a graph file.
type Document struct {
	Source string     `toml:"source,omitempty"`
	Order  []string   `toml:"order,omitempty"`
	Nodes  []NodeSpec `toml:"node"`
	Edges  []EdgeSpec `toml:"edge"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	ID    string `toml:"id"`
	Label string `toml:"label,omitempty"`
}

// EdgeSpec describes one directed edge.
type EdgeSpec struct {
	ID     string `toml:"id,omitempty"`
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
	Arrows string `toml:"arrows,omitempty"`
}

// Load reads the graph file at path, picking the decoder by extension.
func Load(path string) (Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var doc Document
		md, err := toml.DecodeFile(path, &doc)
		if err != nil {
			return Document{}, fmt.Errorf("graphfile: decode %s: %w", path, err)
		}

		return doc, checkUndecoded(md)
	case ".hcl":
		return loadHCL(path)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// DecodeTOML decodes a TOML graph document from r.
func DecodeTOML(r io.Reader) (Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Document{}, fmt.Errorf("graphfile: decode toml: %w", err)
	}

	return doc, checkUndecoded(md)
}

// EncodeTOML writes doc to w as TOML.
func EncodeTOML(w io.Writer, doc Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode toml: %w", err)
	}

	return nil
}

// checkUndecoded rejects typos such as "wieght" that would otherwise be
// silently ignored.
func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(names, ", "))
}

// Build creates a graph builder from doc. Nodes and edges are added in
// document order; a non-empty Order replaces the insertion order.
func (doc Document) Build() (*graph.Graph, error) {
	g := graph.New()
	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Label); err != nil {
			return nil, err
		}
	}

	for _, e := range doc.Edges {
		var opts []graph.EdgeOption
		if e.ID != "" {
			opts = append(opts, graph.WithEdgeID(e.ID))
		}
		if e.Arrows != "" {
			opts = append(opts, graph.WithArrows(e.Arrows))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("graphfile: edge %s→%s: %w", e.From, e.To, err)
		}
	}

	if len(doc.Order) > 0 {
		if err := g.SetOrder(doc.Order); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// FromGraph captures g and source as a Document.
func FromGraph(g *graph.Graph, source string) Document {
	nodes, edges, order := g.Snapshot()

	doc := Document{Source: source, Order: order}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, NodeSpec{ID: n.ID, Label: n.Label})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Arrows: e.Arrows})
	}

	return doc
}
