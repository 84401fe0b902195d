// Package render turns graph records into pictures.
//
// The [nodelink] subpackage writes Graphviz DOT and renders it to SVG
// in-process. [ToPDF] and [ToPNG] convert any SVG further using the
// external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [nodelink]: github.com/Maxyme/gml-to-graphml/pkg/render/nodelink
package render
