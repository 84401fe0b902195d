package graph

import (
	"errors"

	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// Sink receives the records of one document in input order.
//
// Parsers call WriteGraph exactly once, before the first node or edge (or at
// the end of an empty graph), then WriteNode and WriteEdge as each element
// closes. Close is called by the owner of the sink once the input is
// exhausted; writers that defer output (GraphML) assemble the document
// there.
//
// Records passed to a sink are only valid for the duration of the call: the
// parser resets and reuses them.
type Sink interface {
	WriteGraph(g *Graph) error
	WriteNode(n *Node) error
	WriteEdge(e *Edge) error
	Close() error
}

// GraphAttrWriter is implemented by sinks that accept graph attributes
// after nodes or edges have been written. Both GML and GraphML allow graph
// attributes anywhere inside the graph element.
type GraphAttrWriter interface {
	WriteGraphAttr(name string, v value.Value) error
}

// ErrLateGraphAttr is returned by [WriteGraphAttr] for sinks that do not
// implement [GraphAttrWriter].
var ErrLateGraphAttr = errors.New("sink does not accept graph attributes after the first node or edge")

// WriteGraphAttr hands a graph attribute that arrived after the graph record
// to s.
func WriteGraphAttr(s Sink, name string, v value.Value) error {
	if w, ok := s.(GraphAttrWriter); ok {
		return w.WriteGraphAttr(name, v)
	}
	return ErrLateGraphAttr
}

// Stats counts the records that passed through a [Counter].
type Stats struct {
	Nodes int
	Edges int
	Attrs int
}

// Counter wraps a Sink and counts records on their way through.
type Counter struct {
	Sink
	Stats Stats
}

// NewCounter wraps s.
func NewCounter(s Sink) *Counter {
	return &Counter{Sink: s}
}

// WriteGraph forwards g.
func (c *Counter) WriteGraph(g *Graph) error {
	c.Stats.Attrs += g.Attrs.Len()
	return c.Sink.WriteGraph(g)
}

// WriteNode forwards n.
func (c *Counter) WriteNode(n *Node) error {
	c.Stats.Nodes++
	c.Stats.Attrs += n.Attrs.Len()
	return c.Sink.WriteNode(n)
}

// WriteEdge forwards e.
func (c *Counter) WriteEdge(e *Edge) error {
	c.Stats.Edges++
	c.Stats.Attrs += e.Attrs.Len()
	return c.Sink.WriteEdge(e)
}

// WriteGraphAttr forwards a late graph attribute.
func (c *Counter) WriteGraphAttr(name string, v value.Value) error {
	c.Stats.Attrs++
	return WriteGraphAttr(c.Sink, name, v)
}

// Recorder is an in-memory Sink that keeps copies of everything written to
// it. It is used by tests and by callers that need the whole graph.
type Recorder struct {
	Graph  *Graph
	Nodes  []Node
	Edges  []Edge
	Closed bool
}

// WriteGraph stores g.
func (r *Recorder) WriteGraph(g *Graph) error {
	cp := *g
	r.Graph = &cp
	return nil
}

// WriteNode appends a copy of n.
func (r *Recorder) WriteNode(n *Node) error {
	r.Nodes = append(r.Nodes, *n)
	return nil
}

// WriteEdge appends a copy of e.
func (r *Recorder) WriteEdge(e *Edge) error {
	r.Edges = append(r.Edges, *e)
	return nil
}

// WriteGraphAttr adds a late graph attribute to the recorded graph.
func (r *Recorder) WriteGraphAttr(name string, v value.Value) error {
	if r.Graph == nil {
		r.Graph = NewGraph()
	}
	r.Graph.Attrs.Add(name, v)
	return nil
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}

var (
	_ Sink = (*Counter)(nil)
	_ Sink = (*Recorder)(nil)

	_ GraphAttrWriter = (*Counter)(nil)
	_ GraphAttrWriter = (*Recorder)(nil)
)
