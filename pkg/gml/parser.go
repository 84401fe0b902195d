package gml

import (
	"bufio"
	"context"
	stderrors "errors"
	"html"
	"io"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

// state is the element whose block is currently open.
type state int

const (
	inGraph state = iota
	inNode
	inEdge
)

func (s state) String() string {
	switch s {
	case inNode:
		return "node"
	case inEdge:
		return "edge"
	default:
		return "graph"
	}
}

// frame is an open attribute sub-block: `name [`.
type frame struct {
	name string
	dict *value.Dict
}

// Options controls value clean-up while parsing.
type Options struct {
	// Unfold decodes text holding embedded JSON ("{...}" or "[...]") into
	// dicts and lists, as some exporters flatten nested attributes that way.
	Unfold bool
	// DropEmpty skips attributes whose value is empty text or "".
	DropEmpty bool
	// DropNaN skips numeric attributes whose value is NaN.
	DropNaN bool
}

// Parser is the GML line state machine. It hands a graph record to its sink
// before the first node or edge, then each node and edge as its block
// closes, in input order.
//
// A Parser handles one document and is not safe for concurrent use.
type Parser struct {
	sink graph.Sink
	opts Options

	graph *graph.Graph
	node  *graph.Node
	edge  *graph.Edge

	state      state
	blocks     []frame
	headerDone bool
	line       int
}

// NewParser returns a parser that writes records to sink.
func NewParser(sink graph.Sink, opts Options) *Parser {
	return &Parser{
		sink:  sink,
		opts:  opts,
		graph: graph.NewGraph(),
		node:  graph.NewNode(),
		edge:  graph.NewEdge(),
	}
}

// ctxCheckInterval is how many lines are read between cancellation checks.
const ctxCheckInterval = 1024

// Parse reads r line by line until EOF and then calls [Parser.Finish]. It
// does not close the sink.
func (p *Parser) Parse(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if perr := p.ParseLine(line); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.IO(err, "read line %d", p.line+1)
		}
		if p.line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	return p.Finish()
}

// ParseLine feeds one line to the state machine.
func (p *Parser) ParseLine(raw string) error {
	p.line++
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if line == "]" {
		return p.close()
	}

	name, val, ok := splitLine(line)
	if !ok {
		return errors.LineError(p.line, line, "expected a name and a value")
	}
	if val == "[" {
		return p.open(name)
	}
	if strings.HasPrefix(val, "[") {
		return errors.LineError(p.line, line, "inline blocks are not supported")
	}
	return p.data(name, val)
}

// Finish checks that every block was closed and flushes the graph record if
// the document had no nodes or edges.
func (p *Parser) Finish() error {
	if n := len(p.blocks); n > 0 {
		return errors.LineError(p.line, "", "unexpected end of input inside %q block", p.blocks[n-1].name)
	}
	if p.state != inGraph {
		return errors.LineError(p.line, "", "unexpected end of input inside %s block", p.state)
	}
	return p.flushGraph()
}

// open handles `name [`.
func (p *Parser) open(name string) error {
	if len(p.blocks) == 0 && p.state == inGraph {
		switch name {
		case "graph":
			return nil
		case "node":
			if err := p.flushGraph(); err != nil {
				return err
			}
			p.state = inNode
			return nil
		case "edge":
			if err := p.flushGraph(); err != nil {
				return err
			}
			p.state = inEdge
			return nil
		}
	}
	p.blocks = append(p.blocks, frame{name: name, dict: value.NewDict()})
	return nil
}

// close handles `]`: it closes the innermost sub-block, or the current node
// or edge. A stray bracket at graph level is ignored.
func (p *Parser) close() error {
	if n := len(p.blocks); n > 0 {
		top := p.blocks[n-1]
		p.blocks = p.blocks[:n-1]
		return p.add(top.name, value.FromDict(top.dict))
	}

	switch p.state {
	case inNode:
		p.state = inGraph
		if err := p.sink.WriteNode(p.node); err != nil {
			return err
		}
		p.node.Reset()
	case inEdge:
		p.state = inGraph
		if err := p.sink.WriteEdge(p.edge); err != nil {
			return err
		}
		p.edge.Reset()
	}
	return nil
}

// data handles a `name value` line.
func (p *Parser) data(name, val string) error {
	if len(p.blocks) == 0 {
		switch p.state {
		case inGraph:
			if name == "directed" {
				if p.headerDone {
					return errors.LineError(p.line, name+" "+val, "directed after the first node or edge")
				}
				p.graph.SetDirected(val == "1")
				return nil
			}
		case inNode:
			if name == "id" {
				p.node.ID = unquote(val)
				return nil
			}
		case inEdge:
			switch name {
			case "source":
				p.edge.Source = unquote(val)
				return nil
			case "target":
				p.edge.Target = unquote(val)
				return nil
			}
		}
	}

	v := p.scalar(val)
	if p.skip(v) {
		return nil
	}
	return p.add(name, v)
}

// add stores v under name in the innermost open dict or element. Graph
// attributes after the graph record went out are passed to the sink on
// their own.
func (p *Parser) add(name string, v value.Value) error {
	if n := len(p.blocks); n > 0 {
		p.blocks[n-1].dict.Add(name, v)
		return nil
	}
	switch p.state {
	case inNode:
		p.node.Attrs.Add(name, v)
	case inEdge:
		p.edge.Attrs.Add(name, v)
	default:
		if p.headerDone {
			err := graph.WriteGraphAttr(p.sink, name, v)
			if stderrors.Is(err, graph.ErrLateGraphAttr) {
				pe := errors.LineError(p.line, name, "graph attribute after the first node or edge")
				pe.Cause = err
				return pe
			}
			return err
		}
		p.graph.Attrs.Add(name, v)
	}
	return nil
}

func (p *Parser) scalar(val string) value.Value {
	if s, ok := quoted(val); ok {
		s = html.UnescapeString(s)
		if p.opts.Unfold {
			return value.Unfold(s)
		}
		return value.Text(s)
	}
	v := value.Infer(val)
	if p.opts.Unfold && v.Kind() == value.KindText {
		return value.Unfold(val)
	}
	return v
}

func (p *Parser) skip(v value.Value) bool {
	if p.opts.DropEmpty && v.IsBlank() {
		return true
	}
	return p.opts.DropNaN && v.IsNaN()
}

func (p *Parser) flushGraph() error {
	if p.headerDone {
		return nil
	}
	p.headerDone = true
	return p.sink.WriteGraph(p.graph)
}

// splitLine splits a trimmed line into a name and the rest of the line at
// the first run of whitespace.
func splitLine(line string) (name, val string, ok bool) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	name = line[:i]
	val = strings.TrimSpace(line[i:])
	if val == "" {
		return "", "", false
	}
	return name, val, true
}

// quoted returns the content of a double-quoted token.
func quoted(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], true
	}
	return "", false
}

func unquote(s string) string {
	if q, ok := quoted(s); ok {
		return html.UnescapeString(q)
	}
	return s
}
