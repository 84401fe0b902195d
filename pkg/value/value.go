package value

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant of the [Value] union is populated.
type Kind int

// Value kinds.
const (
	KindInvalid Kind = iota
	KindNumber
	KindText
	KindList
	KindDict
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "invalid"
	}
}

// Value is an attribute value: a number, a piece of text, a list of values
// or an insertion-ordered dict of named values.
//
// Numbers keep the literal they were parsed from so that "1.0" is written
// back as "1.0" and not "1". The zero Value is invalid.
type Value struct {
	kind  Kind
	lit   string
	isInt bool
	items []Value
	dict  *Dict
}

// Number returns a numeric value with the given literal. isInt records
// whether the literal was recognised as an integer.
func Number(lit string, isInt bool) Value {
	return Value{kind: KindNumber, lit: lit, isInt: isInt}
}

// Int returns an integer number.
func Int(n int64) Value {
	return Value{kind: KindNumber, lit: strconv.FormatInt(n, 10), isInt: true}
}

// Float returns a floating point number formatted with the shortest
// representation that round-trips.
func Float(f float64) Value {
	return Value{kind: KindNumber, lit: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Text returns a string value.
func Text(s string) Value {
	return Value{kind: KindText, lit: s}
}

// List returns a list holding items in order.
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// FromDict wraps d as a value.
func FromDict(d *Dict) Value {
	return Value{kind: KindDict, dict: d}
}

// Infer classifies a bare token. A token that parses as an unsigned 32-bit
// integer is an integer number; otherwise one that parses as a 64-bit float
// is a float number; anything else is text. The order matters: it decides
// the GraphML attr.type chosen for the attribute.
func Infer(tok string) Value {
	if _, err := strconv.ParseUint(tok, 10, 32); err == nil {
		return Number(tok, true)
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return Number(tok, false)
	}
	return Text(tok)
}

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds any variant.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// IsInt reports whether v is a number recognised as an integer.
func (v Value) IsInt() bool { return v.kind == KindNumber && v.isInt }

// Literal returns the source literal of a number or the content of a text
// value. It is empty for lists and dicts.
func (v Value) Literal() string { return v.lit }

// Float returns the numeric value of a number. ok is false for other kinds
// or when the literal cannot be parsed.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.lit, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNaN reports whether v is a number whose literal is NaN.
func (v Value) IsNaN() bool {
	f, ok := v.Float()
	return ok && math.IsNaN(f)
}

// Items returns the elements of a list, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}

// Dict returns the dict of a dict value, or nil for other kinds.
func (v Value) Dict() *Dict {
	if v.kind != KindDict {
		return nil
	}
	return v.dict
}

// Len returns the number of values carried: the item count for a list,
// one for everything else that is valid.
func (v Value) Len() int {
	switch v.kind {
	case KindInvalid:
		return 0
	case KindList:
		return len(v.items)
	default:
		return 1
	}
}

// Append returns a list containing v followed by item. A scalar or dict v
// is promoted to a one-element list first; appending to an invalid value
// yields item unchanged.
func (v Value) Append(item Value) Value {
	switch v.kind {
	case KindInvalid:
		return item
	case KindList:
		items := make([]Value, len(v.items), len(v.items)+1)
		copy(items, v.items)
		return List(append(items, item)...)
	default:
		return List(v, item)
	}
}

// Equal reports whether v and o carry the same tree. Numbers compare by
// literal, dicts by ordered content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.lit == o.lit && v.isInt == o.isInt
	case KindText:
		return v.lit == o.lit
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindDict:
		return v.dict.Equal(o.dict)
	default:
		return true
	}
}

// String renders v for logs and labels. Scalars print as their literal,
// containers as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNumber, KindText:
		return v.lit
	case KindInvalid:
		return "<invalid>"
	default:
		s, err := EncodeJSON(v)
		if err != nil {
			return "<" + v.kind.String() + ">"
		}
		return s
	}
}

// IsBlank reports whether v carries nothing worth writing: empty text,
// the two-character empty-quote token, or an empty list or dict.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindText:
		s := strings.TrimSpace(v.lit)
		return s == "" || s == `""`
	case KindList:
		return len(v.items) == 0
	case KindDict:
		return v.dict == nil || v.dict.Len() == 0
	case KindInvalid:
		return true
	default:
		return false
	}
}
