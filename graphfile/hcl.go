package graphfile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclDocument is the block layout of an .hcl graph file.
type hclDocument struct {
	Source string     `hcl:"source,optional"`
	Order  []string   `hcl:"order,optional"`
	Nodes  []*hclNode `hcl:"node,block"`
	Edges  []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID    string `hcl:"id,label"`
	Label string `hcl:"label,optional"`
}

type hclEdge struct {
	From   string `hcl:"from,label"`
	To     string `hcl:"to,label"`
	ID     string `hcl:"id,optional"`
	Weight int64  `hcl:"weight"`
	Arrows string `hcl:"arrows,optional"`
}

// loadHCL parses and decodes an HCL graph file.
func loadHCL(path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("graphfile: read %s: %w", path, err)
	}

	return DecodeHCL(src, path)
}

// DecodeHCL decodes an HCL graph document. filename is used in diagnostics only.
func DecodeHCL(src []byte, filename string) (Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Document{}, fmt.Errorf("graphfile: parse %s: %w", filename, diags)
	}

	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Document{}, fmt.Errorf("graphfile: decode %s: %w", filename, diags)
	}

	return raw.document(), nil
}

// document converts the HCL layout into the common Document.
func (h hclDocument) document() Document {
	doc := Document{Source: h.Source, Order: h.Order}
	for _, n := range h.Nodes {
		doc.Nodes = append(doc.Nodes, NodeSpec{ID: n.ID, Label: n.Label})
	}
	for _, e := range h.Edges {
		doc.Edges = append(doc.Edges, EdgeSpec{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Arrows: e.Arrows})
	}

	return doc
}
