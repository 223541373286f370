package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// demoDoc is the sample document rendered by the demo command, a small
// search tree with one lopsided branch so the stub rows show up.
const demoDoc = `{
  "value": "7",
  "left": {
    "value": "4",
    "left": {"value": "3", "left": {"value": "1"}},
    "right": {"value": "6"}
  },
  "right": {
    "value": "10",
    "left": {"value": "8"},
    "right": {"value": "14"}
  }
}`

// demoCommand creates the demo command, which renders a built-in sample
// tree. Useful for a first look at the output formats without writing a
// document by hand.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a built-in sample tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			if pipeline.BinaryFormat(format) {
				return errors.New(errors.ErrCodeInvalidInput,
					"demo prints to stdout; use '%s render --out' for %s", appName, format)
			}
			return c.runDemo(cmd.Context(), format, detailed, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatASCII, "output format: ascii (default), json, dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include subtree size and height in dot and svg output")

	return cmd
}

// runDemo renders the sample document. The demo always renders fresh; its
// artifacts are not worth cache entries.
func (c *CLI) runDemo(ctx context.Context, format string, detailed bool, stdout io.Writer) error {
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Source:     []byte(demoDoc),
		Format:     format,
		Detailed:   detailed,
		SourceName: "demo",
	})
	if err != nil {
		return err
	}

	if err := writeStdout(stdout, result.Output); err != nil {
		return err
	}

	printNewline()
	printNextStep("Render your own tree", appName+" render tree.json")
	return nil
}
