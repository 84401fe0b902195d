// Package keys maps attribute names to GraphML key declarations.
//
// GraphML refers to attributes through short key ids declared once per
// document (<key id="d0" for="node" attr.name="weight" attr.type="int"/>).
// Two views of that mapping exist:
//
//   - [Registry] is the write side. It is indexed by (attribute name,
//     element kind), allocates ids in first-seen order and infers each key's
//     type from the values stored under it.
//   - [Table] is the read side. It is indexed by key id and resolves the
//     name and declared type of each <data> element.
//
// Both live for a single conversion and are owned by the writer or parser
// that created them.
package keys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Maxyme/gml-to-graphml/pkg/graph"
)

// Type is a GraphML attr.type.
type Type string

// Attribute types. The registry only ever infers int, float and string;
// the others are accepted when reading.
const (
	TypeInt     Type = "int"
	TypeLong    Type = "long"
	TypeFloat   Type = "float"
	TypeDouble  Type = "double"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
)

// ParseType validates a GraphML attr.type value. An empty value means
// string, the GraphML default.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeInt, TypeLong, TypeFloat, TypeDouble, TypeString, TypeBoolean:
		return t, nil
	case "":
		return TypeString, nil
	default:
		return "", fmt.Errorf("unknown attr.type %q", s)
	}
}

// IsNumeric reports whether values of t must parse as numbers.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeInt, TypeLong, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// Key is one attribute declaration.
type Key struct {
	ID   string
	For  graph.Kind
	Name string
	Type Type
}

// Index returns the numeric part of a "d<N>" id, or -1 if the id has
// another shape.
func (k Key) Index() int {
	if !strings.HasPrefix(k.ID, "d") {
		return -1
	}
	n, err := strconv.Atoi(k.ID[1:])
	if err != nil {
		return -1
	}
	return n
}
