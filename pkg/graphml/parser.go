package graphml

import (
	"context"
	"encoding/xml"
	stderrors "errors"
	"io"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/keys"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// Options configures a [Parser].
type Options struct {
	// NodePrefix is stripped from node ids when the rest is an integer.
	NodePrefix string
	// Lenient keeps non-numeric values under numeric keys as text instead
	// of failing with a TypeMismatchError.
	Lenient bool
}

// Parser converts a GraphML token stream into graph records. Like the GML
// parser, it hands the graph record to its sink before the first node or
// edge and each element once its end tag is read.
type Parser struct {
	sink  graph.Sink
	opts  Options
	table *keys.Table

	graph *graph.Graph
	node  *graph.Node
	edge  *graph.Edge

	// attrs receives <data> values; nil outside graph, node and edge.
	attrs      *graph.Attributes
	kind       graph.Kind
	inGraph    bool
	inKey      bool
	headerDone bool

	data   *keys.Key
	dataAt int64
	text   strings.Builder
}

// NewParser returns a parser that writes records to sink.
func NewParser(sink graph.Sink, opts Options) *Parser {
	return &Parser{
		sink:  sink,
		opts:  opts,
		table: keys.NewTable(),
		graph: graph.NewGraph(),
		node:  graph.NewNode(),
		edge:  graph.NewEdge(),
	}
}

// Keys returns the key declarations read so far.
func (p *Parser) Keys() *keys.Table { return p.table }

const ctxCheckInterval = 1024

// Parse reads r until EOF. It does not close the sink.
func (p *Parser) Parse(ctx context.Context, r io.Reader) error {
	dec := xml.NewDecoder(r)
	for n := 1; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		off := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			var syn *xml.SyntaxError
			if stderrors.As(err, &syn) {
				return errors.OffsetError(dec.InputOffset(), err, "malformed xml")
			}
			return errors.IO(err, "read graphml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			err = p.startElement(t, off)
		case xml.EndElement:
			err = p.endElement(t)
		case xml.CharData:
			if p.data != nil {
				p.text.Write(t)
			}
		}
		if err != nil {
			return err
		}
	}
	return p.flushGraph()
}

func (p *Parser) startElement(t xml.StartElement, off int64) error {
	switch t.Name.Local {
	case "graphml":
		return nil
	case "key":
		p.inKey = true
		return p.declareKey(t, off)
	case "default":
		if !p.inKey {
			return &errors.UnsupportedTagError{Tag: t.Name.Local, Offset: off}
		}
		return nil
	case "graph":
		if p.inGraph {
			return errors.OffsetError(off, nil, "nested graphs are not supported")
		}
		p.inGraph = true
		if v, ok := attrValue(t, "edgedefault"); ok {
			p.graph.SetDirected(v == "directed")
		}
		p.attrs, p.kind = p.graph.Attrs, graph.KindGraph
		return nil
	case "node":
		if err := p.enterElement(off); err != nil {
			return err
		}
		id, _ := attrValue(t, "id")
		p.node.ID = stripPrefix(p.opts.NodePrefix, id)
		p.attrs, p.kind = p.node.Attrs, graph.KindNode
		return nil
	case "edge":
		if err := p.enterElement(off); err != nil {
			return err
		}
		src, _ := attrValue(t, "source")
		dst, _ := attrValue(t, "target")
		p.edge.Source = stripPrefix(p.opts.NodePrefix, src)
		p.edge.Target = stripPrefix(p.opts.NodePrefix, dst)
		p.attrs, p.kind = p.edge.Attrs, graph.KindEdge
		return nil
	case "data":
		return p.startData(t, off)
	default:
		return &errors.UnsupportedTagError{Tag: t.Name.Local, Offset: off}
	}
}

// enterElement checks that a node or edge opens directly inside the graph
// and flushes the graph record.
func (p *Parser) enterElement(off int64) error {
	if !p.inGraph || p.kind != graph.KindGraph {
		return errors.OffsetError(off, nil, "node or edge outside of a graph")
	}
	return p.flushGraph()
}

func (p *Parser) endElement(t xml.EndElement) error {
	switch t.Name.Local {
	case "key":
		p.inKey = false
	case "graph":
		p.inGraph = false
		p.attrs = nil
		return p.flushGraph()
	case "node":
		p.attrs, p.kind = p.graph.Attrs, graph.KindGraph
		if err := p.sink.WriteNode(p.node); err != nil {
			return err
		}
		p.node.Reset()
	case "edge":
		p.attrs, p.kind = p.graph.Attrs, graph.KindGraph
		if err := p.sink.WriteEdge(p.edge); err != nil {
			return err
		}
		p.edge.Reset()
	case "data":
		return p.endData()
	}
	return nil
}

func (p *Parser) declareKey(t xml.StartElement, off int64) error {
	id, ok := attrValue(t, "id")
	if !ok || id == "" {
		return errors.OffsetError(off, nil, "key without id")
	}
	k := keys.Key{ID: id, Name: id}
	if name, ok := attrValue(t, "attr.name"); ok && name != "" {
		k.Name = name
	}
	typ, _ := attrValue(t, "attr.type")
	var err error
	if k.Type, err = keys.ParseType(typ); err != nil {
		return errors.OffsetError(off, err, "key %s", id)
	}
	if f, _ := attrValue(t, "for"); f != "" && f != "all" {
		if k.For, err = graph.ParseKind(f); err != nil {
			return errors.OffsetError(off, err, "key %s", id)
		}
	}
	p.table.Declare(k)
	return nil
}

func (p *Parser) startData(t xml.StartElement, off int64) error {
	if p.attrs == nil {
		return errors.OffsetError(off, nil, "data outside of graph, node or edge")
	}
	id, _ := attrValue(t, "key")
	k, ok := p.table.Get(id)
	if !ok {
		return &errors.KeyNotFoundError{Key: id, Offset: off}
	}
	p.data = &k
	p.dataAt = off
	p.text.Reset()
	return nil
}

func (p *Parser) endData() error {
	k := p.data
	p.data = nil
	text := p.text.String()
	p.text.Reset()

	v, ok, err := p.decode(k, text)
	if err != nil || !ok {
		return err
	}
	if p.kind == graph.KindGraph && p.headerDone {
		err := graph.WriteGraphAttr(p.sink, k.Name, v)
		if stderrors.Is(err, graph.ErrLateGraphAttr) {
			return errors.OffsetError(p.dataAt, err, "graph data after the first node or edge")
		}
		return err
	}
	p.attrs.Add(k.Name, v)
	return nil
}

// decode turns <data> content into a value according to its key. Empty
// content and "" are dropped.
func (p *Parser) decode(k *keys.Key, text string) (value.Value, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == `""` {
		return value.Value{}, false, nil
	}
	if k.Type.IsNumeric() {
		v := value.Infer(trimmed)
		if v.Kind() == value.KindNumber {
			return v, true, nil
		}
		if !p.opts.Lenient {
			return value.Value{}, false, &errors.TypeMismatchError{
				Key:    k.ID,
				Name:   k.Name,
				Type:   string(k.Type),
				Value:  trimmed,
				Offset: p.dataAt,
			}
		}
		return value.Text(trimmed), true, nil
	}
	return value.Unfold(text), true, nil
}

func (p *Parser) flushGraph() error {
	if p.headerDone {
		return nil
	}
	p.headerDone = true
	return p.sink.WriteGraph(p.graph)
}

func attrValue(t xml.StartElement, name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}
