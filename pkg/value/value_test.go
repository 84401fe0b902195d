package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		tok   string
		kind  Kind
		isInt bool
	}{
		{"3", KindNumber, true},
		{"0", KindNumber, true},
		{"4294967295", KindNumber, true},
		{"4294967296", KindNumber, false}, // overflows uint32, still a float
		{"3.14", KindNumber, false},
		{"-3", KindNumber, false}, // negative is not an unsigned integer
		{"1e5", KindNumber, false},
		{"NaN", KindNumber, false},
		{"hello", KindText, false},
		{"", KindText, false},
		{"12abc", KindText, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			v := Infer(tt.tok)
			if v.Kind() != tt.kind {
				t.Errorf("Infer(%q).Kind() = %v, want %v", tt.tok, v.Kind(), tt.kind)
			}
			if v.IsInt() != tt.isInt {
				t.Errorf("Infer(%q).IsInt() = %v, want %v", tt.tok, v.IsInt(), tt.isInt)
			}
			if v.Literal() != tt.tok {
				t.Errorf("Infer(%q).Literal() = %q, literal must be kept", tt.tok, v.Literal())
			}
		})
	}
}

func TestAppendPromotes(t *testing.T) {
	v := Int(1).Append(Int(2))
	if v.Kind() != KindList {
		t.Fatalf("Kind() = %v, want list", v.Kind())
	}
	v = v.Append(Int(3))
	want := List(Int(1), Int(2), Int(3))
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}

	if got := (Value{}).Append(Text("x")); !got.Equal(Text("x")) {
		t.Errorf("Append to invalid = %v, want x", got)
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := List(Int(1), Int(2))
	a := base.Append(Int(3))
	b := base.Append(Int(4))
	if a.Items()[2].Literal() != "3" || b.Items()[2].Literal() != "4" {
		t.Errorf("appends share backing array: %v %v", a, b)
	}
}

func TestDictAdd(t *testing.T) {
	d := NewDict()
	d.Add("weight", Int(1))
	d.Add("weight", Int(2))
	d.Add("label", Text("a"))
	d.Add("weight", Int(3))

	if got := d.Names(); !cmp.Equal(got, []string{"weight", "label"}) {
		t.Errorf("Names() = %v", got)
	}
	w, _ := d.Get("weight")
	if diff := cmp.Diff(List(Int(1), Int(2), Int(3)), w); diff != "" {
		t.Errorf("weight mismatch (-want +got):\n%s", diff)
	}
}

func TestDictEqualOrder(t *testing.T) {
	a := NewDict()
	a.Set("x", Int(1))
	a.Set("y", Int(2))
	b := NewDict()
	b.Set("y", Int(2))
	b.Set("x", Int(1))
	if a.Equal(b) {
		t.Error("dicts with different order should differ")
	}
	b.Clear()
	b.Set("x", Int(1))
	b.Set("y", Int(2))
	if !a.Equal(b) {
		t.Error("dicts with same content and order should be equal")
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"empty text", Text(""), true},
		{"empty quotes", Text(`""`), true},
		{"space", Text("  "), true},
		{"text", Text("a"), false},
		{"zero", Int(0), false},
		{"empty list", List(), true},
		{"empty dict", FromDict(NewDict()), true},
		{"invalid", Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsBlank(); got != tt.want {
				t.Errorf("IsBlank() = %v, want %v", got, tt.want)
			}
		})
	}
}
