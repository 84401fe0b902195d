// Package graphml reads and writes the GraphML subset used for attributed
// graphs: <graphml>, <key>, <graph>, <node>, <edge> and <data>.
//
// # Writing
//
// [Writer] implements [graph.Sink]. Attribute names are mapped to key ids
// by a [keys.Registry] as records stream in. Since a key's type may still
// be widened by a later record, the body is buffered in a [spool.Spool] and
// the document is assembled on Close:
//
//	<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
//	<graphml xmlns=...>
//	  <key id="d0" for="node" attr.name="weight" attr.type="int"/>
//	  <graph edgedefault="undirected">
//	    <node id="n1">
//	      <data key="d0">3</data>
//	    </node>
//	  </graph>
//	</graphml>
//
// Lists and dicts have no GraphML counterpart and are written as compact
// JSON text under a string key.
//
// # Reading
//
// [Parser] walks the XML token stream and resolves <data> elements through
// a [keys.Table]. Values under numeric keys are checked; JSON text under
// string keys is decoded back into lists and dicts. Empty values are
// dropped.
//
// # Node ids
//
// GraphML ids are XML-friendly names while GML ids are usually integers.
// The writer prefixes integer ids (n1, n2, ...) and the parser strips the
// prefix again when what remains is an integer.
package graphml
