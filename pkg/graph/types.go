package graph

import (
	"fmt"

	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// =============================================================================
// Element Kinds
// =============================================================================

// Kind is the kind of element an attribute is attached to.
type Kind int

// Element kinds. The string forms match GraphML's key "for" attribute.
const (
	KindGraph Kind = iota
	KindNode
	KindEdge
)

// String returns "graph", "node" or "edge".
func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a GraphML "for" value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "graph":
		return KindGraph, nil
	case "node":
		return KindNode, nil
	case "edge":
		return KindEdge, nil
	default:
		return 0, fmt.Errorf("unknown element kind %q", s)
	}
}

// =============================================================================
// Records
// =============================================================================

// Attributes is the ordered attribute list of a record. Adding a name twice
// turns its entry into a list; see [value.Dict.Add].
type Attributes = value.Dict

// NewAttributes returns an empty attribute list.
func NewAttributes() *Attributes { return value.NewDict() }

// Graph holds document-level information. Directed is nil until the input
// states it; writers treat nil as undirected.
type Graph struct {
	Directed *bool
	Attrs    *Attributes
}

// NewGraph returns a graph record with no attributes.
func NewGraph() *Graph {
	return &Graph{Attrs: NewAttributes()}
}

// IsDirected reports whether the graph was declared directed.
func (g *Graph) IsDirected() bool {
	return g.Directed != nil && *g.Directed
}

// SetDirected records the graph's directedness.
func (g *Graph) SetDirected(d bool) {
	g.Directed = &d
}

// Node is a single vertex and its attributes.
type Node struct {
	ID    string
	Attrs *Attributes
}

// NewNode returns an empty node record.
func NewNode() *Node {
	return &Node{Attrs: NewAttributes()}
}

// Reset clears n for reuse by the next block.
func (n *Node) Reset() {
	n.ID = ""
	n.Attrs = NewAttributes()
}

// Edge is a connection between two node ids and its attributes.
type Edge struct {
	Source string
	Target string
	Attrs  *Attributes
}

// NewEdge returns an empty edge record.
func NewEdge() *Edge {
	return &Edge{Attrs: NewAttributes()}
}

// Reset clears e for reuse by the next block.
func (e *Edge) Reset() {
	e.Source = ""
	e.Target = ""
	e.Attrs = NewAttributes()
}
