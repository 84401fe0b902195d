package keys

import (
	"testing"

	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		tok  string
		want Type
	}{
		{"3", TypeInt},
		{"3.14", TypeFloat},
		{"hello", TypeString},
		{"-3", TypeFloat},
		{"99999999999", TypeFloat},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			if got := InferType(value.Infer(tt.tok)); got != tt.want {
				t.Errorf("InferType(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}

	if got := InferType(value.List(value.Int(1))); got != TypeString {
		t.Errorf("InferType(list) = %v, want string", got)
	}
}

func TestRegistryAllocatesSequentially(t *testing.T) {
	r := NewRegistry()
	ids := []string{
		r.Lookup("label", graph.KindGraph, value.Text("g")),
		r.Lookup("weight", graph.KindNode, value.Int(1)),
		r.Lookup("weight", graph.KindEdge, value.Float(0.5)),
		r.Lookup("weight", graph.KindNode, value.Int(2)),
	}
	want := []string{"d0", "d1", "d2", "d1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Lookup #%d = %s, want %s", i, ids[i], want[i])
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	keys := r.Keys()
	for i, k := range keys {
		if k.Index() != i {
			t.Errorf("Keys()[%d].ID = %s, keys must be in id order", i, k.ID)
		}
	}
	if keys[2].For != graph.KindEdge || keys[2].Type != TypeFloat {
		t.Errorf("edge weight key = %+v", keys[2])
	}
}

func TestRegistryWidening(t *testing.T) {
	tests := []struct {
		name   string
		values []value.Value
		want   Type
	}{
		{"int stays int", []value.Value{value.Int(1), value.Int(2)}, TypeInt},
		{"int then float keeps int", []value.Value{value.Int(1), value.Float(2.5)}, TypeInt},
		{"float then int keeps float", []value.Value{value.Float(2.5), value.Int(1)}, TypeFloat},
		{"repeated value widens", []value.Value{value.Int(1), value.List(value.Int(1), value.Int(2))}, TypeString},
		{"list first is string", []value.Value{value.List(value.Int(1), value.Int(2))}, TypeString},
		{"dict widens", []value.Value{value.Int(1), value.FromDict(value.NewDict())}, TypeString},
		{"text under int widens", []value.Value{value.Int(1), value.Text("x")}, TypeString},
		{"string stays string", []value.Value{value.Text("x"), value.Int(1)}, TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, v := range tt.values {
				r.Lookup("a", graph.KindNode, v)
			}
			k, ok := r.Get("a", graph.KindNode)
			if !ok {
				t.Fatal("key not registered")
			}
			if k.Type != tt.want {
				t.Errorf("Type = %v, want %v", k.Type, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tab := NewTable()
	tab.Declare(Key{ID: "d0", For: graph.KindNode, Name: "weight", Type: TypeInt})
	tab.Declare(Key{ID: "d0", For: graph.KindNode, Name: "weight", Type: TypeDouble})

	k, ok := tab.Get("d0")
	if !ok || k.Type != TypeDouble {
		t.Errorf("Get(d0) = %+v, %v; later declaration should win", k, ok)
	}
	if _, ok := tab.Get("d1"); ok {
		t.Error("Get(d1) should miss")
	}
	if tab.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tab.Len())
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"int", "long", "float", "double", "string", "boolean"} {
		if _, err := ParseType(s); err != nil {
			t.Errorf("ParseType(%q) error = %v", s, err)
		}
	}
	if got, _ := ParseType(""); got != TypeString {
		t.Errorf("ParseType(\"\") = %v, want string", got)
	}
	if _, err := ParseType("complex"); err == nil {
		t.Error("ParseType(complex) should fail")
	}
}
