// Package gml reads and writes the line-oriented subset of GML (Graph
// Modelling Language) produced by common graph libraries.
//
// Every meaningful line holds either a `name value` pair, a `name [` block
// opener, or a lone `]`. Blank lines and lines starting with # are skipped.
// Compact single-line blocks such as `node [ id 1 ]` are rejected.
//
// # Reading
//
// [Parser] is a state machine over lines that feeds a [graph.Sink]:
//
//	p := gml.NewParser(sink, gml.Options{})
//	if err := p.Parse(ctx, r); err != nil {
//	    return err
//	}
//
// Quoted values are always text. Unquoted values are inferred: an unsigned
// 32-bit integer is an int, anything else that parses as a float is a
// float, and the rest is text. An attribute repeated inside one element
// becomes a list; a nested `name [` block becomes a dict. A list with one
// item cannot be told apart from a scalar, so it reads back as the scalar.
//
// # Writing
//
// [Writer] is the inverse and implements [graph.Sink]. Writing the records a
// Parser produced and parsing the result yields the same records.
package gml
