package gml

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

func parse(t *testing.T, src string, opts Options) *graph.Recorder {
	t.Helper()
	rec := &graph.Recorder{}
	if err := NewParser(rec, opts).Parse(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return rec
}

func attr(t *testing.T, attrs *graph.Attributes, name string) value.Value {
	t.Helper()
	v, ok := attrs.Get(name)
	if !ok {
		t.Fatalf("attribute %q missing; have %v", name, attrs.Names())
	}
	return v
}

func TestParseBasic(t *testing.T) {
	src := `graph [
  directed 1
  label "test"
  node [
    id 1
    label "A"
    weight 3.5
  ]
  node [
    id 2
  ]
  edge [
    source 1
    target 2
    cost 7
  ]
]
`
	rec := parse(t, src, Options{})

	if rec.Graph == nil || !rec.Graph.IsDirected() {
		t.Fatal("graph should be directed")
	}
	if diff := cmp.Diff(value.Text("test"), attr(t, rec.Graph.Attrs, "label")); diff != "" {
		t.Errorf("graph label (-want +got):\n%s", diff)
	}
	if len(rec.Nodes) != 2 || len(rec.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(rec.Nodes), len(rec.Edges))
	}
	if rec.Nodes[0].ID != "1" || rec.Nodes[1].ID != "2" {
		t.Errorf("node ids = %q, %q", rec.Nodes[0].ID, rec.Nodes[1].ID)
	}
	if got := attr(t, rec.Nodes[0].Attrs, "weight"); got.IsInt() || got.Literal() != "3.5" {
		t.Errorf("weight = %v, want float 3.5", got)
	}
	e := rec.Edges[0]
	if e.Source != "1" || e.Target != "2" {
		t.Errorf("edge = %s -> %s", e.Source, e.Target)
	}
	if got := attr(t, e.Attrs, "cost"); !got.IsInt() {
		t.Errorf("cost = %v, want int", got)
	}
}

func TestParseDirectedDefault(t *testing.T) {
	rec := parse(t, "graph [\n  node [\n    id 1\n  ]\n]\n", Options{})
	if rec.Graph.Directed != nil {
		t.Errorf("Directed = %v, want unset", *rec.Graph.Directed)
	}
	if rec.Graph.IsDirected() {
		t.Error("graph without a directed line must be undirected")
	}
}

func TestParseRepeatedAttributeBecomesList(t *testing.T) {
	src := "graph [\n node [\n  id 1\n  weight 1\n  weight 2\n ]\n]\n"
	rec := parse(t, src, Options{})

	want := value.List(value.Int(1), value.Int(2))
	if diff := cmp.Diff(want, attr(t, rec.Nodes[0].Attrs, "weight")); diff != "" {
		t.Errorf("weight (-want +got):\n%s", diff)
	}
	if rec.Nodes[0].Attrs.Len() != 1 {
		t.Errorf("attrs = %v, want a single weight", rec.Nodes[0].Attrs.Names())
	}
}

func TestParseNestedBlock(t *testing.T) {
	src := `graph [
  node [
    id 1
    graphics [
      x 1.5
      y 2
      style [
        fill "#ff0000"
      ]
    ]
  ]
]
`
	rec := parse(t, src, Options{})

	style := value.NewDict()
	style.Add("fill", value.Text("#ff0000"))
	gfx := value.NewDict()
	gfx.Add("x", value.Infer("1.5"))
	gfx.Add("y", value.Int(2))
	gfx.Add("style", value.FromDict(style))

	if diff := cmp.Diff(value.FromDict(gfx), attr(t, rec.Nodes[0].Attrs, "graphics")); diff != "" {
		t.Errorf("graphics (-want +got):\n%s", diff)
	}
}

func TestParseGraphLevelBlock(t *testing.T) {
	src := "graph [\n  meta [\n    author \"x\"\n  ]\n  node [\n    id 1\n  ]\n]\n"
	rec := parse(t, src, Options{})
	if attr(t, rec.Graph.Attrs, "meta").Kind() != value.KindDict {
		t.Error("meta should be a dict")
	}
}

func TestParseQuotedIsText(t *testing.T) {
	src := "graph [\n node [\n  id \"a\"\n  code \"42\"\n  name \"say &quot;hi&quot; &amp; go\"\n ]\n]\n"
	rec := parse(t, src, Options{})

	n := rec.Nodes[0]
	if n.ID != "a" {
		t.Errorf("ID = %q, want a", n.ID)
	}
	if got := attr(t, n.Attrs, "code"); got.Kind() != value.KindText {
		t.Errorf("code kind = %v, want text", got.Kind())
	}
	if got := attr(t, n.Attrs, "name").Literal(); got != `say "hi" & go` {
		t.Errorf("name = %q", got)
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	src := "# exported\n\ngraph [\n  # nodes\n  node [\n    id 1\n\n  ]\n]\n"
	rec := parse(t, src, Options{})
	if len(rec.Nodes) != 1 {
		t.Errorf("got %d nodes, want 1", len(rec.Nodes))
	}
}

func TestParseEmptyGraph(t *testing.T) {
	rec := parse(t, "graph [\n  directed 0\n  name \"empty\"\n]\n", Options{})
	if rec.Graph == nil {
		t.Fatal("empty graph must still be flushed")
	}
	if rec.Graph.Attrs.Len() != 1 {
		t.Errorf("graph attrs = %v", rec.Graph.Attrs.Names())
	}
}

func TestParseHeaderFlushedOnFirstEdge(t *testing.T) {
	var order []string
	sink := &orderSink{order: &order}
	src := "graph [\n  edge [\n    source 1\n    target 2\n  ]\n]\n"
	if err := NewParser(sink, Options{}).Parse(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"graph", "edge"}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

type orderSink struct{ order *[]string }

func (s *orderSink) WriteGraph(*graph.Graph) error { *s.order = append(*s.order, "graph"); return nil }
func (s *orderSink) WriteNode(*graph.Node) error   { *s.order = append(*s.order, "node"); return nil }
func (s *orderSink) WriteEdge(*graph.Edge) error   { *s.order = append(*s.order, "edge"); return nil }
func (s *orderSink) Close() error                  { return nil }

func TestParseOptions(t *testing.T) {
	src := `graph [
  node [
    id 1
    empty ""
    quotes "&quot;&quot;"
    score NaN
    meta "{&quot;a&quot;: 1}"
    keep "x"
  ]
]
`
	rec := parse(t, src, Options{Unfold: true, DropEmpty: true, DropNaN: true})

	attrs := rec.Nodes[0].Attrs
	if diff := cmp.Diff([]string{"meta", "keep"}, attrs.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if attr(t, attrs, "meta").Kind() != value.KindDict {
		t.Error("meta should unfold into a dict")
	}

	rec = parse(t, src, Options{})
	want := []string{"empty", "quotes", "score", "meta", "keep"}
	if diff := cmp.Diff(want, rec.Nodes[0].Attrs.Names()); diff != "" {
		t.Errorf("without options all attributes are kept (-want +got):\n%s", diff)
	}
}

func TestParseLateGraphAttributes(t *testing.T) {
	src := `graph [
  node [
    id 1
  ]
  label "late"
  meta [
    a 1
  ]
]
`
	rec := parse(t, src, Options{})
	if diff := cmp.Diff([]string{"label", "meta"}, rec.Graph.Attrs.Names()); diff != "" {
		t.Errorf("graph attrs (-want +got):\n%s", diff)
	}
	if attr(t, rec.Graph.Attrs, "meta").Kind() != value.KindDict {
		t.Error("late meta block should be a dict")
	}

	var order []string
	err := NewParser(&orderSink{&order}, Options{}).Parse(context.Background(), strings.NewReader(src))
	var pe *errors.ParseError
	if !stderrors.As(err, &pe) || pe.Line != 5 {
		t.Fatalf("error = %v, want *ParseError on line 5", err)
	}
	if !stderrors.Is(err, graph.ErrLateGraphAttr) {
		t.Error("error should wrap ErrLateGraphAttr")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing value", "graph [\n  node [\n    id\n  ]\n]\n", 3},
		{"inline block", "graph [\n  node [ id 1 ]\n]\n", 2},
		{"eof in node", "graph [\n  node [\n    id 1\n", 3},
		{"eof in sub-block", "graph [\n  node [\n    id 1\n    gfx [\n", 4},
		{"directed after node", "graph [\n  node [\n    id 1\n  ]\n  directed 1\n]\n", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParser(&graph.Recorder{}, Options{}).Parse(context.Background(), strings.NewReader(tt.src))
			var pe *errors.ParseError
			if !stderrors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, want %d", pe.Line, tt.line)
			}
			if errors.GetCode(err) != errors.ErrCodeParse {
				t.Errorf("code = %v", errors.GetCode(err))
			}
		})
	}
}

func TestParseCanceled(t *testing.T) {
	var b strings.Builder
	b.WriteString("graph [\n")
	for range 3 * ctxCheckInterval {
		b.WriteString("  node [\n    id 1\n  ]\n")
	}
	b.WriteString("]\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewParser(&graph.Recorder{}, Options{}).Parse(ctx, strings.NewReader(b.String()))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
