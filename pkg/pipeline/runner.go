package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Maxyme/gml-to-graphml/pkg/graph"
	"github.com/Maxyme/gml-to-graphml/pkg/observability"
)

// Runner executes conversions.
//
// The Runner is stateless except for the logger - it doesn't store
// conversion results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Convert reads in as opts.From and writes it to out as opts.To.
//
// Output may be partially written when an error is returned for GML and
// DOT; GraphML and rendered formats write nothing until the input has been
// read successfully.
func (r *Runner) Convert(ctx context.Context, in io.Reader, out io.Writer, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	hooks.OnConvertStart(ctx, opts.From, opts.To)

	start := time.Now()
	result, err := r.convert(ctx, in, out, opts)
	result.Stats.Duration = time.Since(start)

	hooks.OnConvertComplete(ctx, opts.From, opts.To, observability.Counts{
		Nodes: result.Stats.NodeCount,
		Edges: result.Stats.EdgeCount,
		Attrs: result.Stats.AttrCount,
		Keys:  result.Stats.KeyCount,
	}, result.Stats.Duration, err)

	if err != nil {
		return nil, err
	}

	opts.Logger.Info("converted graph",
		"from", opts.From,
		"to", opts.To,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"keys", result.Stats.KeyCount,
		"duration", result.Stats.Duration)
	return result, nil
}

func (r *Runner) convert(ctx context.Context, in io.Reader, out io.Writer, opts Options) (*Result, error) {
	result := &Result{}

	o, err := newOutput(out, opts)
	if err != nil {
		return result, err
	}
	counter := graph.NewCounter(o.sink)

	readKeys, err := Parse(ctx, in, counter, opts)
	result.Stats.NodeCount = counter.Stats.Nodes
	result.Stats.EdgeCount = counter.Stats.Edges
	result.Stats.AttrCount = counter.Stats.Attrs
	result.Stats.KeyCount = readKeys
	if err != nil {
		o.discard()
		return result, fmt.Errorf("parse %s: %w", opts.From, err)
	}
	opts.Logger.Debug("parsed input",
		"format", opts.From,
		"nodes", counter.Stats.Nodes,
		"edges", counter.Stats.Edges)

	if result.Cached, err = o.close(ctx, out, opts); err != nil {
		return result, fmt.Errorf("write %s: %w", opts.To, err)
	}

	if gw := o.graphml; gw != nil {
		result.Stats.KeyCount = gw.Registry().Len()
		result.Spilled = gw.Spilled()
		if result.Spilled {
			opts.Logger.Debug("graphml body spilled to disk", "bytes", gw.BodySize())
			observability.Spool().OnSpill(ctx, gw.BodySize())
		}
	}
	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
