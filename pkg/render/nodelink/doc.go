// Package nodelink renders graph records as traditional node-link diagrams.
//
// # Overview
//
// [Writer] streams nodes and edges as Graphviz DOT source. It implements
// [graph.Sink], so it can sit at the end of either parser. The DOT text can
// then be rendered in-process with [RenderSVG], or converted further to PDF
// or PNG with the helpers in the parent render package.
//
// # Usage
//
//	var buf bytes.Buffer
//	w := nodelink.NewWriter(&buf, nodelink.Options{})
//	// ... feed records ...
//	w.Close()
//	svg, err := nodelink.RenderSVG(ctx, buf.Bytes())
//
// # Options
//
//   - LabelAttr: attribute shown as the node label (default "label"); the
//     node id is used when the attribute is missing.
//   - Detailed: when true, every other attribute is listed under the label.
//
// Directed graphs become a digraph with arrows; undirected graphs a plain
// graph. Nodes are rounded boxes laid out top to bottom.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
