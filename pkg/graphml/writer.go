package graphml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/keys"
	"github.com/Maxyme/gml-to-graphml/pkg/spool"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns" ` +
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" ` +
	`xsi:schemaLocation="http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd">
`

const footer = "\n</graphml>\n"

// DefaultIndent is the indentation used for each nesting level.
const DefaultIndent = "  "

// WriterOptions configures a [Writer].
type WriterOptions struct {
	// NodePrefix is prepended to integer node ids. Empty writes ids as is.
	NodePrefix string
	// Indent is repeated once per nesting level. Defaults to two spaces.
	Indent string
	// SpoolDir and SpoolThreshold configure the body buffer; see [spool.New].
	SpoolDir       string
	SpoolThreshold int64
}

// Writer renders graph records as GraphML. Nothing reaches the underlying
// writer before Close.
type Writer struct {
	out    io.Writer
	opts   WriterOptions
	reg    *keys.Registry
	body   *spool.Spool
	enc    *xml.Encoder
	err    error
	header bool
	closed bool
}

// NewWriter returns a writer that emits to w.
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	body := spool.New(opts.SpoolDir, opts.SpoolThreshold)
	enc := xml.NewEncoder(body)
	enc.Indent(opts.Indent, opts.Indent)
	return &Writer{
		out:  w,
		opts: opts,
		reg:  keys.NewRegistry(),
		body: body,
		enc:  enc,
	}
}

// Registry exposes the keys allocated so far.
func (w *Writer) Registry() *keys.Registry { return w.reg }

// Spilled reports whether the body outgrew memory and moved to a temporary
// file.
func (w *Writer) Spilled() bool { return w.body.Spilled() }

// BodySize returns the number of body bytes buffered so far.
func (w *Writer) BodySize() int64 { return w.body.Size() }

// WriteGraph opens the <graph> element and writes the graph attributes.
func (w *Writer) WriteGraph(g *graph.Graph) error {
	w.header = true
	edgedefault := "undirected"
	if g.IsDirected() {
		edgedefault = "directed"
	}
	w.start("graph", attr("edgedefault", edgedefault))
	w.data(graph.KindGraph, g.Attrs)
	return w.err
}

// WriteNode writes a <node> element.
func (w *Writer) WriteNode(n *graph.Node) error {
	w.ensureHeader()
	w.start("node", attr("id", addPrefix(w.opts.NodePrefix, n.ID)))
	w.data(graph.KindNode, n.Attrs)
	w.end("node")
	return w.err
}

// WriteEdge writes an <edge> element.
func (w *Writer) WriteEdge(e *graph.Edge) error {
	w.ensureHeader()
	w.start("edge",
		attr("source", addPrefix(w.opts.NodePrefix, e.Source)),
		attr("target", addPrefix(w.opts.NodePrefix, e.Target)))
	w.data(graph.KindEdge, e.Attrs)
	w.end("edge")
	return w.err
}

// WriteGraphAttr writes a graph <data> element after nodes or edges.
func (w *Writer) WriteGraphAttr(name string, v value.Value) error {
	w.ensureHeader()
	attrs := graph.NewAttributes()
	attrs.Add(name, v)
	w.data(graph.KindGraph, attrs)
	return w.err
}

// Close assembles the document: declaration, key declarations, the
// buffered body. It removes the spool file and does not close the
// underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	defer w.body.Close()

	w.ensureHeader()
	w.end("graph")
	if w.err == nil {
		w.err = errors.IO(w.enc.Flush(), "write graphml body")
	}
	if w.err != nil {
		return w.err
	}

	bw := bufio.NewWriter(w.out)
	bw.WriteString(header)
	for _, k := range w.reg.Keys() {
		fmt.Fprintf(bw, "%s<key id=%q for=%q attr.name=\"%s\" attr.type=%q/>\n",
			w.opts.Indent, k.ID, k.For.String(), escape(k.Name), string(k.Type))
	}
	if _, err := w.body.WriteTo(bw); err != nil {
		w.err = errors.IO(err, "copy graphml body")
		return w.err
	}
	bw.WriteString(footer)
	w.err = errors.IO(bw.Flush(), "write graphml")
	return w.err
}

// Discard drops the buffered body without writing anything. Later calls to
// Close are no-ops.
func (w *Writer) Discard() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.body.Close()
}

func (w *Writer) ensureHeader() {
	if !w.header {
		w.WriteGraph(graph.NewGraph())
	}
}

// data writes one <data> element per attribute.
func (w *Writer) data(kind graph.Kind, attrs *graph.Attributes) {
	attrs.Range(func(name string, v value.Value) bool {
		id := w.reg.Lookup(name, kind, v)
		text, err := dataText(v)
		if err != nil {
			w.fail(errors.Wrap(errors.ErrCodeInternal, err, "encode attribute %q", name))
			return false
		}
		w.start("data", attr("key", id))
		w.token(xml.CharData(text))
		w.end("data")
		return w.err == nil
	})
}

// dataText renders v as <data> content. Containers become JSON.
func dataText(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindList, value.KindDict:
		return value.EncodeJSON(v)
	default:
		return v.Literal(), nil
	}
}

func (w *Writer) token(t xml.Token) {
	if w.err == nil {
		if err := w.enc.EncodeToken(t); err != nil {
			w.err = errors.IO(err, "write graphml body")
		}
	}
}

func (w *Writer) start(name string, attrs ...xml.Attr) {
	w.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *Writer) end(name string) {
	w.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func attr(name, val string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: val}
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

var (
	_ graph.Sink            = (*Writer)(nil)
	_ graph.GraphAttrWriter = (*Writer)(nil)
)
