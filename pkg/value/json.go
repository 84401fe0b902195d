package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// EncodeJSON serialises v as compact JSON. Dict order is preserved and
// numbers are written with their source literal when it is a valid JSON
// number. NaN and infinities, which JSON cannot express, become strings.
func EncodeJSON(v Value) (string, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encode(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNumber:
		return encodeNumber(buf, v.lit)
	case KindText:
		return encodeString(buf, v.lit)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindDict:
		buf.WriteByte('{')
		var err error
		first := true
		v.dict.Range(func(name string, item Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err = encodeString(buf, name); err != nil {
				return false
			}
			buf.WriteByte(':')
			err = encode(buf, item)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("encode %s value", v.kind)
	}
}

func encodeNumber(buf *bytes.Buffer, lit string) error {
	if isJSONNumber(lit) {
		buf.WriteString(lit)
		return nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return fmt.Errorf("encode number %q: %w", lit, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return encodeString(buf, lit)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// isJSONNumber reports whether lit matches the JSON number grammar.
func isJSONNumber(lit string) bool {
	s := lit
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	digits := func() int {
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		s = s[n:]
		return n
	}
	if s == "" {
		return false
	}
	if s[0] == '0' {
		s = s[1:]
	} else if digits() == 0 {
		return false
	}
	if s != "" && s[0] == '.' {
		s = s[1:]
		if digits() == 0 {
			return false
		}
	}
	if s != "" && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s != "" && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}
		if digits() == 0 {
			return false
		}
	}
	return s == ""
}

// DecodeJSON parses a JSON object or array into a dict or list value.
// Numbers go through [Infer] so that they land in the same int/float
// family a GML token would. Booleans and null become text.
func DecodeJSON(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	v, err := decode(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decode(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			d := NewDict()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				name, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				item, err := decode(dec)
				if err != nil {
					return Value{}, err
				}
				d.Set(name, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return FromDict(d), nil
		case '[':
			items := []Value{}
			for dec.More() {
				item, err := decode(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return List(items...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		return Infer(t.String()), nil
	case string:
		return Text(t), nil
	case bool:
		return Text(strconv.FormatBool(t)), nil
	case nil:
		return Text("null"), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// Embedded reports whether s looks like a JSON object or array that was
// stored as a plain string, and returns it with any double quotes that
// hug the brackets removed (`"{...}"` becomes `{...}`).
func Embedded(s string) (string, bool) {
	t := strings.TrimSpace(s)
	if len(t) >= 4 && t[0] == '"' && t[len(t)-1] == '"' &&
		(t[1] == '{' || t[1] == '[') && (t[len(t)-2] == '}' || t[len(t)-2] == ']') {
		t = t[1 : len(t)-1]
	}
	if len(t) < 2 {
		return "", false
	}
	if (t[0] == '{' && t[len(t)-1] == '}') || (t[0] == '[' && t[len(t)-1] == ']') {
		return t, true
	}
	return "", false
}

// Unfold decodes s into a dict or list when it is embedded JSON and
// returns it as text otherwise. Strings that merely look bracketed but do
// not decode stay text.
func Unfold(s string) Value {
	raw, ok := Embedded(s)
	if !ok {
		return Text(s)
	}
	v, err := DecodeJSON(raw)
	if err != nil {
		return Text(s)
	}
	return v
}
