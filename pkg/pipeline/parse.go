package pipeline

import (
	"context"
	"io"

	"github.com/Maxyme/gml-to-graphml/pkg/gml"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/graphml"
)

// Parse reads in according to opts.From and feeds every record to sink. It
// returns the number of GraphML key declarations read, zero for GML. The
// sink is not closed.
func Parse(ctx context.Context, in io.Reader, sink graph.Sink, opts Options) (int, error) {
	switch opts.From {
	case FormatGML:
		p := gml.NewParser(sink, gmlOptions(opts))
		return 0, p.Parse(ctx, in)
	case FormatGraphML:
		p := graphml.NewParser(sink, graphml.Options{
			NodePrefix: opts.Prefix(),
			Lenient:    opts.Lenient,
		})
		err := p.Parse(ctx, in)
		return p.Keys().Len(), err
	default:
		return 0, ValidateInputFormat(opts.From)
	}
}

func gmlOptions(opts Options) gml.Options {
	if !opts.Normalize {
		return gml.Options{}
	}
	return gml.Options{
		Unfold:    true,
		DropEmpty: true,
		DropNaN:   !opts.KeepNaN,
	}
}
