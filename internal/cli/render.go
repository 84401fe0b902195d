package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// renderFormats are the formats the render command produces.
var renderFormats = []string{
	pipeline.FormatSVG,
	pipeline.FormatPDF,
	pipeline.FormatPNG,
	pipeline.FormatDOT,
}

// renderOpts holds the render-only flags.
type renderOpts struct {
	format    string
	labelAttr string
	detailed  bool
	scale     float64
	noCache   bool
}

// renderCommand creates the render command for node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var flags convertFlags
	var ropts renderOpts

	cmd := &cobra.Command{
		Use:   "render <input> [output]",
		Short: "Draw a graph as a node-link diagram",
		Long: `Draw a GML or GraphML graph as a node-link diagram.

Layout is done by Graphviz (dot). SVG needs nothing else; PDF and PNG are
converted from the SVG with rsvg-convert, which must be on PATH.`,
		Example: `  graphconv render network.gml
  graphconv render network.graphml network.png --label name --scale 3`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd.Flags(), &flags)
			if err := ropts.apply(cmd, &opts); err != nil {
				return err
			}
			if !ropts.noCache && !c.config.NoCache {
				opts.Cache = c.renderCache(cmd.Context())
			}
			input, output := args[0], ""
			if len(args) == 2 {
				output = args[1]
			}
			return c.runRender(cmd.Context(), input, output, opts)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "input format: gml, graphml (default: from extension)")
	cmd.Flags().StringVarP(&ropts.format, "format", "f", "", "output format: "+strings.Join(renderFormats, ", ")+" (default: from extension, else svg)")
	cmd.Flags().StringVar(&ropts.labelAttr, "label", pipeline.DefaultLabelAttr, "node attribute used as the label")
	cmd.Flags().BoolVar(&ropts.detailed, "detailed", false, "list every node attribute in its label")
	cmd.Flags().Float64Var(&ropts.scale, "scale", pipeline.DefaultScale, "PNG resolution factor")
	cmd.Flags().BoolVar(&ropts.noCache, "no-cache", false, "render even if a cached picture exists")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "drop empty and NaN values in GML input")
	flags.register(cmd.Flags())

	return cmd
}

// apply copies render flags into opts. --format becomes opts.To.
func (r *renderOpts) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	fs := cmd.Flags()
	if r.format != "" {
		if !isRenderFormat(r.format) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid render format: %q (must be one of: %s)",
				r.format, strings.Join(renderFormats, ", "))
		}
		opts.To = r.format
	}
	if fs.Changed("label") {
		opts.LabelAttr = r.labelAttr
	}
	if fs.Changed("detailed") {
		opts.Detailed = r.detailed
	}
	if fs.Changed("scale") {
		if r.scale <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive: %g", r.scale)
		}
		opts.Scale = r.scale
	}
	return nil
}

func isRenderFormat(f string) bool {
	return slices.Contains(renderFormats, f)
}

// runRender renders input, showing a spinner during layout.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options) error {
	if opts.To == "" && output != "" && output != stdio {
		if f, err := pipeline.DetectFormat(output); err == nil && isRenderFormat(f) {
			opts.To = f
		}
	}
	if opts.To == "" {
		opts.To = pipeline.FormatSVG
	}
	if err := resolveFormats(input, &output, &opts); err != nil {
		return err
	}
	if err := errors.ValidatePaths(input, output); err != nil {
		return err
	}

	u := c.ui()
	var spinner *Spinner
	if u.interactive() && opts.IsRendered() {
		spinner = newSpinner(ctx, u, fmt.Sprintf("Rendering %s...", opts.To))
		spinner.Start()
	} else if opts.IsRendered() {
		u.info("Rendering %s with Graphviz", opts.To)
	}

	result, err := c.convert(ctx, input, output, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Rendering failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	if result.Cached {
		u.success("Rendered %s (cached)", strings.ToUpper(opts.To))
	} else {
		u.success("Rendered %s", strings.ToUpper(opts.To))
	}
	u.stats(result, opts.To)
	u.file(output)
	return nil
}
