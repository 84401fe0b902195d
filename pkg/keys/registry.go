package keys

import (
	"fmt"

	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/value"
)

type attrKey struct {
	name string
	kind graph.Kind
}

// Registry allocates key ids while a GraphML document is being written.
//
// The type of a key is fixed by the first value stored under it, with one
// exception: a key is widened to string once it has to hold something a
// number cannot, namely more than one value per element (written as a JSON
// array), a dict, or a text value under a key first seen as numeric. Mixing
// ints and floats keeps the first type.
//
// Because widening can happen at any point, key declarations are only final
// once the whole document has been seen.
type Registry struct {
	byAttr map[attrKey]*Key
	keys   []*Key
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byAttr: make(map[attrKey]*Key)}
}

// InferType returns the type a key would get from its first value.
func InferType(v value.Value) Type {
	switch v.Kind() {
	case value.KindNumber:
		if v.IsInt() {
			return TypeInt
		}
		return TypeFloat
	default:
		return TypeString
	}
}

// Lookup returns the id for attribute name on elements of the given kind,
// allocating "d<N>" on first sight, and applies the widening rule for v.
func (r *Registry) Lookup(name string, kind graph.Kind, v value.Value) string {
	ak := attrKey{name: name, kind: kind}
	k, ok := r.byAttr[ak]
	if !ok {
		k = &Key{
			ID:   fmt.Sprintf("d%d", len(r.keys)),
			For:  kind,
			Name: name,
			Type: InferType(v),
		}
		r.byAttr[ak] = k
		r.keys = append(r.keys, k)
		return k.ID
	}
	if k.Type != TypeString && widens(k.Type, v) {
		k.Type = TypeString
	}
	return k.ID
}

func widens(t Type, v value.Value) bool {
	switch v.Kind() {
	case value.KindList, value.KindDict:
		return true
	case value.KindText:
		return t.IsNumeric()
	default:
		return false
	}
}

// Get returns the key allocated for name on kind.
func (r *Registry) Get(name string, kind graph.Kind) (Key, bool) {
	k, ok := r.byAttr[attrKey{name: name, kind: kind}]
	if !ok {
		return Key{}, false
	}
	return *k, true
}

// Len returns the number of allocated keys.
func (r *Registry) Len() int { return len(r.keys) }

// Keys returns the keys in ascending id order.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.keys))
	// ids are allocated sequentially, so allocation order is id order.
	for i, k := range r.keys {
		out[i] = *k
	}
	return out
}
