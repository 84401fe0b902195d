// Package pkg provides the libraries behind graphconv, a streaming converter
// between GML and GraphML.
//
// # Overview
//
// The pkg directory is organized by stage of a conversion:
//
//  1. [value], [graph] - Attribute values and the records passed between stages
//  2. [gml], [graphml] - Parsers and writers for the two formats
//  3. [keys], [spool] - GraphML key allocation and body buffering
//  4. [render] - Node-link diagrams through Graphviz
//  5. [pipeline] - Orchestration (parse → write → render)
//
// Supporting packages are [errors] (coded errors), [config] (TOML
// defaults), [cache] (rendered diagram cache), [observability] (hooks) and
// [buildinfo] (version metadata).
//
// # Architecture
//
// The data flow of a conversion:
//
//	GML or GraphML input
//	         ↓
//	    [gml] or [graphml] parser (one record at a time)
//	         ↓
//	    [graph.Sink]
//	         ↓
//	    [gml], [graphml] or DOT writer
//	         ↓
//	    GML, GraphML, DOT, SVG, PDF or PNG output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/Maxyme/gml-to-graphml/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Convert(context.Background(), os.Stdin, os.Stdout,
//	    pipeline.Options{From: "gml", To: "graphml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.NodeCount, "nodes")
package pkg
