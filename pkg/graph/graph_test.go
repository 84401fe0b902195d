package graph

import (
	"errors"
	"testing"

	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindGraph, "graph"},
		{KindNode, "node"},
		{KindEdge, "edge"},
		{Kind(7), "Kind(7)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindGraph, KindNode, KindEdge} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("hyperedge"); err == nil {
		t.Error("ParseKind(hyperedge) should fail")
	}
}

func TestGraphDirected(t *testing.T) {
	g := NewGraph()
	if g.IsDirected() || g.Directed != nil {
		t.Error("new graph should be undirected and unset")
	}
	g.SetDirected(true)
	if !g.IsDirected() {
		t.Error("SetDirected(true) not applied")
	}
	g.SetDirected(false)
	if g.IsDirected() || g.Directed == nil {
		t.Error("SetDirected(false) should record an explicit false")
	}
}

func TestResetKeepsCopies(t *testing.T) {
	rec := &Recorder{}
	n := NewNode()

	n.ID = "1"
	n.Attrs.Add("label", value.Text("a"))
	rec.WriteNode(n)
	n.Reset()

	n.ID = "2"
	n.Attrs.Add("label", value.Text("b"))
	rec.WriteNode(n)

	if len(rec.Nodes) != 2 {
		t.Fatalf("recorded %d nodes, want 2", len(rec.Nodes))
	}
	first := rec.Nodes[0]
	if v, _ := first.Attrs.Get("label"); first.ID != "1" || v.Literal() != "a" {
		t.Errorf("first node changed after Reset: %s %v", first.ID, v)
	}
}

type failingSink struct{ Recorder }

var errSink = errors.New("sink failed")

func (f *failingSink) WriteEdge(*Edge) error { return errSink }

func TestCounter(t *testing.T) {
	rec := &failingSink{}
	c := NewCounter(rec)

	g := NewGraph()
	g.Attrs.Add("label", value.Text("g"))
	n := NewNode()
	n.Attrs.Add("x", value.Int(1))
	n.Attrs.Add("y", value.Int(2))

	c.WriteGraph(g)
	c.WriteNode(n)
	c.WriteNode(n)
	if err := c.WriteEdge(NewEdge()); !errors.Is(err, errSink) {
		t.Errorf("WriteEdge error = %v, want the sink's error", err)
	}
	if err := c.Close(); err != nil || !rec.Closed {
		t.Errorf("Close should reach the wrapped sink, err = %v", err)
	}

	want := Stats{Nodes: 2, Edges: 1, Attrs: 5}
	if c.Stats != want {
		t.Errorf("Stats = %+v, want %+v", c.Stats, want)
	}
	if len(rec.Nodes) != 2 || rec.Graph == nil {
		t.Errorf("records not forwarded: %+v", rec.Recorder)
	}
}

type plainSink struct{}

func (plainSink) WriteGraph(*Graph) error { return nil }
func (plainSink) WriteNode(*Node) error   { return nil }
func (plainSink) WriteEdge(*Edge) error   { return nil }
func (plainSink) Close() error            { return nil }

func TestWriteGraphAttr(t *testing.T) {
	rec := &Recorder{}
	c := NewCounter(rec)
	c.WriteGraph(NewGraph())
	c.WriteNode(NewNode())
	if err := c.WriteGraphAttr("label", value.Text("late")); err != nil {
		t.Fatalf("WriteGraphAttr() error: %v", err)
	}
	if v, _ := rec.Graph.Attrs.Get("label"); !v.Equal(value.Text("late")) {
		t.Errorf("label = %v, want late", v)
	}
	if c.Stats.Attrs != 1 {
		t.Errorf("Attrs = %d, want 1", c.Stats.Attrs)
	}

	if err := NewCounter(plainSink{}).WriteGraphAttr("label", value.Text("late")); !errors.Is(err, ErrLateGraphAttr) {
		t.Errorf("error = %v, want ErrLateGraphAttr", err)
	}
}
