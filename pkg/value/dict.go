package value

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is an insertion-ordered mapping from attribute name to value.
//
// Dict doubles as the attribute accumulator for graph, node and edge
// records. [Dict.Add] implements the list rule of line-oriented graph
// formats: there is no list marker on the wire, so a name that is added
// again is promoted to a list and the new value appended. A one-element
// list and a scalar are therefore indistinguishable once written.
type Dict struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewDict returns an empty dict.
func NewDict() *Dict {
	return &Dict{m: orderedmap.New[string, Value]()}
}

// Add inserts v under name. If name already holds a value the entry is
// promoted to a list (if it is not one already) and v is appended, keeping
// the entry's original position.
func (d *Dict) Add(name string, v Value) {
	if prev, ok := d.m.Get(name); ok {
		d.m.Set(name, prev.Append(v))
		return
	}
	d.m.Set(name, v)
}

// Set stores v under name, replacing any previous value.
func (d *Dict) Set(name string, v Value) {
	d.m.Set(name, v)
}

// Get returns the value stored under name.
func (d *Dict) Get(name string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	return d.m.Get(name)
}

// Delete removes name from the dict.
func (d *Dict) Delete(name string) {
	d.m.Delete(name)
}

// Len returns the number of distinct names.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return d.m.Len()
}

// Names returns the names in insertion order.
func (d *Dict) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, d.m.Len())
	for p := d.m.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Range calls fn for each entry in insertion order until fn returns false.
func (d *Dict) Range(fn func(name string, v Value) bool) {
	if d == nil {
		return
	}
	for p := d.m.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// Clear removes all entries.
func (d *Dict) Clear() {
	d.m = orderedmap.New[string, Value]()
}

// Equal reports whether d and o hold equal values under the same names in
// the same order.
func (d *Dict) Equal(o *Dict) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d.Len() == 0 {
		return true
	}
	p, q := d.m.Oldest(), o.m.Oldest()
	for p != nil && q != nil {
		if p.Key != q.Key || !p.Value.Equal(q.Value) {
			return false
		}
		p, q = p.Next(), q.Next()
	}
	return p == nil && q == nil
}
