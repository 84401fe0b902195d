// Package value provides the attribute value model shared by the GML and
// GraphML front ends.
//
// # Variants
//
// A [Value] is one of:
//
//   - number: a literal recognised by [Infer] as an integer or a float
//   - text: any other string
//   - list: an ordered sequence of values
//   - dict: a [Dict], an insertion-ordered mapping of names to values
//
// Lists and dicts have no native syntax in either format. GML expresses a
// dict as a bracketed sub-block and a list as the same name repeated; GraphML
// stores both as JSON text (see [EncodeJSON] and [Unfold]).
//
// # Inference
//
// [Infer] applies a fixed policy: unsigned 32-bit integer first, then
// 64-bit float, then text. Negative integers therefore infer as floats. The
// literal is kept verbatim so that re-emitting a value never reformats it.
package value
