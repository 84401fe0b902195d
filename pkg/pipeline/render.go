package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Maxyme/gml-to-graphml/pkg/cache"
	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/gml"
	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/graphml"
	"github.com/Maxyme/gml-to-graphml/pkg/render"
	"github.com/Maxyme/gml-to-graphml/pkg/render/nodelink"
)

// output is the writing half of a conversion.
type output struct {
	sink    graph.Sink
	graphml *graphml.Writer
	// dot holds DOT source for rendered formats.
	dot *bytes.Buffer
}

// newOutput builds the sink for opts.To writing to w.
func newOutput(w io.Writer, opts Options) (*output, error) {
	switch opts.To {
	case FormatGML:
		return &output{sink: gml.NewWriter(w, gml.WriterOptions{Indent: opts.Indent})}, nil
	case FormatGraphML:
		gw := graphml.NewWriter(w, graphml.WriterOptions{
			NodePrefix:     opts.Prefix(),
			Indent:         opts.Indent,
			SpoolDir:       opts.SpoolDir,
			SpoolThreshold: opts.SpoolThreshold,
		})
		return &output{sink: gw, graphml: gw}, nil
	case FormatDOT:
		return &output{sink: nodelink.NewWriter(w, nodelinkOptions(opts))}, nil
	case FormatSVG, FormatPDF, FormatPNG:
		var buf bytes.Buffer
		return &output{sink: nodelink.NewWriter(&buf, nodelinkOptions(opts)), dot: &buf}, nil
	default:
		return nil, ValidateOutputFormat(opts.To)
	}
}

func nodelinkOptions(opts Options) nodelink.Options {
	return nodelink.Options{LabelAttr: opts.LabelAttr, Detailed: opts.Detailed}
}

// close finishes the document and, for pictures, renders it into w. It
// reports whether the picture came from opts.Cache.
func (o *output) close(ctx context.Context, w io.Writer, opts Options) (bool, error) {
	if err := o.sink.Close(); err != nil {
		return false, err
	}
	if o.dot == nil {
		return false, nil
	}

	data, cached, err := renderCached(ctx, o.dot.Bytes(), opts)
	if err != nil {
		return false, err
	}
	_, err = w.Write(data)
	return cached, errors.IO(err, "write %s", opts.To)
}

// renderCached renders dot, consulting opts.Cache first. Cache failures are
// logged and otherwise ignored.
func renderCached(ctx context.Context, dot []byte, opts Options) ([]byte, bool, error) {
	key := cache.RenderKey(dot, opts.To, opts.Scale)
	data, hit, err := opts.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("render cache read failed", "error", err)
	}
	if hit {
		opts.Logger.Debug("render cache hit", "format", opts.To)
		return data, true, nil
	}

	data, err = Render(ctx, dot, opts)
	if err != nil {
		return nil, false, err
	}
	if err := opts.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		opts.Logger.Warn("render cache write failed", "error", err)
	}
	return data, false, nil
}

// discard releases resources after a failed parse without writing the
// buffered document.
func (o *output) discard() {
	if o.graphml != nil {
		o.graphml.Discard()
	}
}

// Render turns DOT source into the picture format opts.To.
func Render(ctx context.Context, dot []byte, opts Options) ([]byte, error) {
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}

	switch opts.To {
	case FormatSVG:
		return svg, nil
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	case FormatPNG:
		return render.ToPNG(ctx, svg, opts.Scale)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "%s is not a rendered format", opts.To)
	}
}
