package gml

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// DefaultIndent is the indentation used for each nesting level.
const DefaultIndent = "  "

// WriterOptions configures a [Writer].
type WriterOptions struct {
	// Indent is repeated once per nesting level. Defaults to two spaces.
	Indent string
}

// Writer renders graph records as GML. Its output parses back with
// [Parser] into the same value trees: dicts become bracketed sub-blocks and
// lists become the same name repeated.
type Writer struct {
	w          *bufio.Writer
	indent     string
	headerDone bool
	closed     bool
}

// NewWriter returns a writer that emits to w. Output is buffered until
// [Writer.Close].
func NewWriter(w io.Writer, opts WriterOptions) *Writer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Writer{w: bufio.NewWriter(w), indent: opts.Indent}
}

// WriteGraph opens the document and writes the graph attributes.
func (w *Writer) WriteGraph(g *graph.Graph) error {
	w.headerDone = true
	w.w.WriteString("graph [\n")
	directed := "0"
	if g.IsDirected() {
		directed = "1"
	}
	w.line(1, "directed "+directed)
	w.attrs(1, g.Attrs)
	return nil
}

// WriteNode writes a node block.
func (w *Writer) WriteNode(n *graph.Node) error {
	if err := w.ensureHeader(); err != nil {
		return err
	}
	w.line(1, "node [")
	w.line(2, "id "+token(n.ID))
	w.attrs(2, n.Attrs)
	w.line(1, "]")
	return nil
}

// WriteEdge writes an edge block.
func (w *Writer) WriteEdge(e *graph.Edge) error {
	if err := w.ensureHeader(); err != nil {
		return err
	}
	w.line(1, "edge [")
	w.line(2, "source "+token(e.Source))
	w.line(2, "target "+token(e.Target))
	w.attrs(2, e.Attrs)
	w.line(1, "]")
	return nil
}

// WriteGraphAttr writes a graph attribute after nodes or edges.
func (w *Writer) WriteGraphAttr(name string, v value.Value) error {
	if err := w.ensureHeader(); err != nil {
		return err
	}
	w.attr(1, name, v)
	return nil
}

// Close closes the document and flushes buffered output. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.ensureHeader(); err != nil {
		return err
	}
	w.w.WriteString("]\n")
	return errors.IO(w.w.Flush(), "write gml")
}

func (w *Writer) ensureHeader() error {
	if w.headerDone {
		return nil
	}
	return w.WriteGraph(graph.NewGraph())
}

func (w *Writer) attrs(depth int, attrs *graph.Attributes) {
	attrs.Range(func(name string, v value.Value) bool {
		w.attr(depth, name, v)
		return true
	})
}

// attr writes one attribute. Lists are written as one line per item under
// the same name; nested lists are flattened since repetition cannot express
// them.
func (w *Writer) attr(depth int, name string, v value.Value) {
	switch v.Kind() {
	case value.KindNumber:
		w.line(depth, name+" "+v.Literal())
	case value.KindText:
		w.line(depth, name+" "+quote(v.Literal()))
	case value.KindList:
		for _, item := range v.Items() {
			w.attr(depth, name, item)
		}
	case value.KindDict:
		w.line(depth, name+" [")
		w.attrs(depth+1, v.Dict())
		w.line(depth, "]")
	}
}

func (w *Writer) line(depth int, s string) {
	for range depth {
		w.w.WriteString(w.indent)
	}
	w.w.WriteString(s)
	w.w.WriteByte('\n')
}

// escaper keeps a quoted value on one line.
var escaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", "\n", "&#10;", "\r", "&#13;")

func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// token writes integer ids bare and quotes anything else.
func token(id string) string {
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return id
	}
	return quote(id)
}

var (
	_ graph.Sink            = (*Writer)(nil)
	_ graph.GraphAttrWriter = (*Writer)(nil)
)
