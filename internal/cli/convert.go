package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// convertFlags holds the command-line flags shared by the conversion
// commands. Values from the config file apply first; flags the user set
// override them.
type convertFlags struct {
	from           string
	to             string
	nodePrefix     string
	rawIDs         bool
	indent         string
	lenient        bool
	normalize      bool
	keepNaN        bool
	spoolDir       string
	spoolThreshold int64
}

// register adds the flags to fs. The format flags are left to each command.
func (f *convertFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.nodePrefix, "node-prefix", pipeline.DefaultNodePrefix, "prefix for integer node ids in GraphML")
	fs.BoolVar(&f.rawIDs, "raw-ids", false, "write and read GraphML node ids without a prefix")
	fs.StringVar(&f.indent, "indent", pipeline.DefaultIndent, "indentation per nesting level")
	fs.BoolVar(&f.lenient, "lenient", false, "keep non-numeric values under numeric GraphML keys as text")
	fs.BoolVar(&f.keepNaN, "keep-nan", false, "keep NaN values when normalizing")
	fs.StringVar(&f.spoolDir, "spool-dir", "", "directory for the GraphML spool file (default: system temp dir)")
	fs.Int64Var(&f.spoolThreshold, "spool-threshold", 0, "bytes of GraphML body kept in memory before spooling to disk (default 8MiB, negative: never)")
}

// options builds pipeline options from the config and the changed flags.
func (c *CLI) options(fs *pflag.FlagSet, f *convertFlags) pipeline.Options {
	var opts pipeline.Options
	c.config.Apply(&opts)

	if fs.Changed("from") {
		opts.From = f.from
	}
	if fs.Changed("to") {
		opts.To = f.to
	}
	if fs.Changed("node-prefix") {
		opts.NodePrefix = f.nodePrefix
	}
	if fs.Changed("raw-ids") {
		opts.RawIDs = f.rawIDs
	}
	if fs.Changed("indent") {
		opts.Indent = f.indent
	}
	if fs.Changed("lenient") {
		opts.Lenient = f.lenient
	}
	if fs.Changed("normalize") {
		opts.Normalize = f.normalize
	}
	if fs.Changed("keep-nan") {
		opts.KeepNaN = f.keepNaN
	}
	if fs.Changed("spool-dir") {
		opts.SpoolDir = f.spoolDir
	}
	if fs.Changed("spool-threshold") {
		opts.SpoolThreshold = f.spoolThreshold
	}
	return opts
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert a graph between GML and GraphML",
		Long: `Convert a graph between GML and GraphML.

Formats are detected from file extensions (.gml, .graphml, .xml) unless
--from or --to is given. Without an output path, the input path is reused
with the extension of the other format. Use "-" for stdin or stdout.`,
		Example: `  graphconv convert network.gml
  graphconv convert network.graphml network.gml
  cat network.gml | graphconv convert --from gml --to graphml - -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd.Flags(), &flags)
			input, output := args[0], ""
			if len(args) == 2 {
				output = args[1]
			}
			return c.runConvert(cmd.Context(), input, output, opts)
		},
	}

	cmd.Flags().StringVar(&flags.from, "from", "", "input format: gml, graphml (default: from extension)")
	cmd.Flags().StringVar(&flags.to, "to", "", "output format: gml, graphml, dot, svg, pdf, png (default: the other of gml and graphml)")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "drop empty and NaN values and decode embedded JSON in GML input")
	flags.register(cmd.Flags())

	return cmd
}

// runConvert resolves paths and formats, then runs the pipeline.
func (c *CLI) runConvert(ctx context.Context, input, output string, opts pipeline.Options) error {
	if err := resolveFormats(input, &output, &opts); err != nil {
		return err
	}
	if err := errors.ValidatePaths(input, output); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	logger.Debug("converting", "input", input, "output", output, "from", opts.From, "to", opts.To)

	result, err := c.convert(ctx, input, output, opts)
	if err != nil {
		return err
	}

	u := c.ui()
	u.success("Converted %s to %s", opts.From, opts.To)
	u.stats(result, opts.To)
	u.file(output)
	return nil
}

// convert streams input to output. A file created for output is removed
// again when the conversion fails.
func (c *CLI) convert(ctx context.Context, input, output string, opts pipeline.Options) (*pipeline.Result, error) {
	in, err := c.openInput(input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := c.createOutput(output)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := c.newRunner().Convert(ctx, in, out, opts)
	if err = out.finish(err); err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("wrote output", "path", output, "elapsed", time.Since(start))
	return result, nil
}

// resolveFormats fills in missing formats and the output path.
func resolveFormats(input string, output *string, opts *pipeline.Options) error {
	if opts.From == "" {
		if input == stdio {
			return errors.New(errors.ErrCodeInvalidFormat, "--from is required when reading stdin")
		}
		f, err := pipeline.DetectFormat(input)
		if err != nil {
			return err
		}
		opts.From = f
	}

	if opts.To == "" && *output != "" && *output != stdio {
		f, err := pipeline.DetectFormat(*output)
		if err != nil {
			return err
		}
		opts.To = f
	}
	if opts.To == "" {
		opts.To = counterpart(opts.From)
	}

	if *output == "" {
		if input == stdio {
			*output = stdio
		} else {
			*output = derivePath(input, opts.To)
		}
	}
	return nil
}

// counterpart returns the default target for an input format.
func counterpart(from string) string {
	if from == pipeline.FormatGraphML {
		return pipeline.FormatGML
	}
	return pipeline.FormatGraphML
}
