package nodelink

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// DefaultLabelAttr is the attribute used for node labels.
const DefaultLabelAttr = "label"

// Options configures node-link diagram rendering.
type Options struct {
	// LabelAttr names the attribute used as node label.
	LabelAttr string
	// Detailed includes the remaining attributes in node labels.
	// When false, only the label (or node ID) is shown.
	Detailed bool
}

// Writer emits DOT source for the records it receives.
type Writer struct {
	w      *bufio.Writer
	opts   Options
	edgeOp string
	header bool
	closed bool
}

// NewWriter returns a writer that emits DOT to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	if opts.LabelAttr == "" {
		opts.LabelAttr = DefaultLabelAttr
	}
	return &Writer{w: bufio.NewWriter(w), opts: opts}
}

// WriteGraph writes the graph header and default styles.
func (w *Writer) WriteGraph(g *graph.Graph) error {
	w.header = true
	kind, op := "graph", "--"
	if g.IsDirected() {
		kind, op = "digraph", "->"
	}
	w.edgeOp = op

	fmt.Fprintf(w.w, "%s G {\n", kind)
	w.w.WriteString("  rankdir=TB;\n")
	w.w.WriteString("  bgcolor=\"transparent\";\n")
	w.w.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	w.w.WriteString("  ranksep=0.5;\n")
	w.w.WriteString("  nodesep=0.3;\n")
	if v, ok := g.Attrs.Get(w.opts.LabelAttr); ok {
		fmt.Fprintf(w.w, "  label=%s;\n", quote(v.String()))
	}
	w.w.WriteString("\n")
	return nil
}

// WriteNode writes one node statement.
func (w *Writer) WriteNode(n *graph.Node) error {
	w.ensureHeader()
	fmt.Fprintf(w.w, "  %s [label=%s];\n", quote(n.ID), quote(w.fmtLabel(n)))
	return nil
}

// WriteEdge writes one edge statement.
func (w *Writer) WriteEdge(e *graph.Edge) error {
	w.ensureHeader()
	fmt.Fprintf(w.w, "  %s %s %s", quote(e.Source), w.edgeOp, quote(e.Target))
	if v, ok := e.Attrs.Get(w.opts.LabelAttr); ok {
		fmt.Fprintf(w.w, " [label=%s]", quote(v.String()))
	}
	w.w.WriteString(";\n")
	return nil
}

// WriteGraphAttr sets the graph label when it arrives after nodes or edges.
// Other graph attributes are not drawn.
func (w *Writer) WriteGraphAttr(name string, v value.Value) error {
	w.ensureHeader()
	if name == w.opts.LabelAttr {
		fmt.Fprintf(w.w, "  label=%s;\n", quote(v.String()))
	}
	return nil
}

// Close ends the graph and flushes output.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.ensureHeader()
	w.w.WriteString("}\n")
	return errors.IO(w.w.Flush(), "write dot")
}

func (w *Writer) ensureHeader() {
	if !w.header {
		w.WriteGraph(graph.NewGraph())
	}
}

func (w *Writer) fmtLabel(n *graph.Node) string {
	label := n.ID
	if v, ok := n.Attrs.Get(w.opts.LabelAttr); ok {
		label = v.String()
	}
	if !w.opts.Detailed {
		return label
	}

	var parts []string
	n.Attrs.Range(func(name string, v value.Value) bool {
		if name != w.opts.LabelAttr {
			parts = append(parts, fmt.Sprintf("%s: %s", name, v))
		}
		return true
	})
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// quote returns s as a DOT double-quoted string. Line breaks become the \n
// label escape; other control characters except tab are dropped.
func quote(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return `"` + dotEscaper.Replace(s) + `"`
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

var (
	_ graph.Sink            = (*Writer)(nil)
	_ graph.GraphAttrWriter = (*Writer)(nil)
)
