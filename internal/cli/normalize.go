package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
	"github.com/Maxyme/gml-to-graphml/pkg/pipeline"
)

// normalizeCommand creates the normalize command. It rewrites GML through
// the GML writer with value clean-up enabled.
func (c *CLI) normalizeCommand() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "normalize <input> <output>",
		Short: "Rewrite a GML file with empty and NaN values dropped",
		Long: `Rewrite a GML file in canonical form.

Empty values and NaN numbers are dropped (use --keep-nan to keep NaN), and
quoted JSON objects or arrays are expanded into nested blocks and repeated
attributes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd.Flags(), &flags)
			opts.From, opts.To = pipeline.FormatGML, pipeline.FormatGML
			opts.Normalize = true
			return c.runNormalize(cmd.Context(), args[0], args[1], opts)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runNormalize(ctx context.Context, input, output string, opts pipeline.Options) error {
	if err := errors.ValidatePaths(input, output); err != nil {
		return err
	}

	result, err := c.convert(ctx, input, output, opts)
	if err != nil {
		return err
	}

	u := c.ui()
	u.success("Normalized %s", input)
	u.stats(result, opts.To)
	u.file(output)
	return nil
}
