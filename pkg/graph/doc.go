// Package graph defines the records that flow between parsers and writers.
//
// A conversion never holds a whole graph in memory. Parsers emit one
// [Graph] record followed by [Node] and [Edge] records in input order, and
// hand each to a [Sink] as soon as its block or element closes. Writers
// implement Sink.
//
// # Core Types
//
//   - [Graph]: directedness and document-level attributes
//   - [Node], [Edge]: one element and its [Attributes]
//   - [Kind]: which of the three an attribute belongs to, as in GraphML's
//     key "for" attribute
//
// # Sinks
//
// [Counter] wraps another sink and counts what passes through it.
// [Recorder] keeps copies of every record, for tests and small graphs.
// Graph attributes that follow the first node or edge reach sinks
// implementing [GraphAttrWriter]; the rest reject them.
//
//	rec := &graph.Recorder{}
//	if err := gml.NewParser(rec, gml.Options{}).Parse(ctx, r); err != nil {
//	    return err
//	}
//	fmt.Println(len(rec.Nodes))
package graph
