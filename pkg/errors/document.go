package errors

import "fmt"

// ParseError reports input that cannot be tokenised as expected. GML faults
// carry a 1-based Line; XML faults carry the byte Offset reported by the
// decoder.
type ParseError struct {
	Line   int    // 1-based line number, 0 if unknown
	Offset int64  // byte offset, -1 if unknown
	Text   string // offending line or token, may be empty
	Msg    string
	Cause  error
}

func (e *ParseError) Error() string {
	var loc string
	switch {
	case e.Line > 0:
		loc = fmt.Sprintf("line %d", e.Line)
	case e.Offset >= 0:
		loc = fmt.Sprintf("offset %d", e.Offset)
	default:
		loc = "input"
	}
	msg := fmt.Sprintf("parse error at %s: %s", loc, e.Msg)
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ErrorCode returns ErrCodeParse.
func (e *ParseError) ErrorCode() Code { return ErrCodeParse }

// LineError returns a ParseError for a GML line.
func LineError(line int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Offset: -1, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// OffsetError returns a ParseError for an XML byte offset.
func OffsetError(offset int64, cause error, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// UnsupportedTagError reports a GraphML element outside the supported
// vocabulary.
type UnsupportedTagError struct {
	Tag    string
	Offset int64
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported tag <%s> at offset %d", e.Tag, e.Offset)
}

// ErrorCode returns ErrCodeUnsupportedTag.
func (e *UnsupportedTagError) ErrorCode() Code { return ErrCodeUnsupportedTag }

// KeyNotFoundError reports a GraphML <data> element that references a key
// id with no <key> declaration.
type KeyNotFoundError struct {
	Key    string
	Offset int64
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("data references undeclared key %q at offset %d", e.Key, e.Offset)
}

// ErrorCode returns ErrCodeKeyNotFound.
func (e *KeyNotFoundError) ErrorCode() Code { return ErrCodeKeyNotFound }

// TypeMismatchError reports a value that does not parse as the type its
// key declares.
type TypeMismatchError struct {
	Key    string // key id
	Name   string // attribute name
	Type   string // declared attr.type
	Value  string
	Offset int64
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value %q of attribute %q (key %s) is not a valid %s at offset %d",
		e.Value, e.Name, e.Key, e.Type, e.Offset)
}

// ErrorCode returns ErrCodeTypeMismatch.
func (e *TypeMismatchError) ErrorCode() Code { return ErrCodeTypeMismatch }
