package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path ("" means stdout)
	format   string  // output format: ascii, json, dot, svg, pdf, png
	maxWidth int     // maximum clipped cell width (0 means the configured default)
	scale    float64 // raster scale factor for png output
	detailed bool    // include size and height metadata in dot-based outputs
	refresh  bool    // re-render even when a cached artifact exists
	noCache  bool    // disable caching entirely
}

// renderCommand creates the render command for generating tree diagrams.
//
// Default settings:
//   - format: ascii (print to stdout)
//   - max cell width: from configuration (80 unless overridden)
//   - scale: 2.0 (png rasterization)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree document to a diagram",
		Long: `Render a tree document to a diagram.

The input is a JSON tree document ({"value": ..., "left": ..., "right": ...})
read from the given file, or from stdin when the argument is "-" or omitted.

Text formats (ascii, json, dot, svg) print to stdout unless --out is given.
Binary formats (pdf, png) always require --out.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default: stdout for text formats)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatASCII, "output format: ascii (default), json, dot, svg, pdf, png")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 0, "maximum display width per cell before clipping (default: from config)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "rasterization scale factor (png only)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include subtree size and height in dot, svg, pdf, and png output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender reads the tree document, runs the pipeline, and writes the artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts, stdout io.Writer) error {
	source, sourceName, err := readSource(input)
	if err != nil {
		return err
	}

	if pipeline.BinaryFormat(opts.format) && opts.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s output requires --out", opts.format)
	}
	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}
	if opts.scale != pipeline.DefaultScale && opts.format != pipeline.FormatPNG {
		printWarning("--scale only affects png output")
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Source:       source,
		Format:       opts.format,
		MaxCellWidth: opts.maxWidth,
		Scale:        opts.scale,
		Detailed:     opts.detailed,
		Refresh:      opts.refresh,
		SourceName:   sourceName,
	}
	if pipeOpts.MaxCellWidth == 0 {
		pipeOpts.MaxCellWidth = c.Config.Render.MaxCellWidth
	}

	// Diagram formats run the graphviz layout engine, which is slow enough
	// to deserve a spinner. Text formats return immediately.
	var spinner *Spinner
	if diagramFormat(opts.format) {
		spinner = newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.format))
		spinner.Start()
	}

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if opts.output == "" {
		return writeStdout(stdout, result.Output)
	}

	if err := os.WriteFile(opts.output, result.Output, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}

	printSuccess("Render complete")
	printFile(opts.output)
	printStats(result.Stats.NodeCount, result.Stats.TreeHeight, result.CacheHit)
	if input != "-" {
		printNewline()
		printNextStep("Pan interactively", appName+" view "+input)
	}
	return nil
}

// readSource reads the raw tree document from path, or from stdin when
// path is "-". The returned name labels the source in logs.
func readSource(path string) (json.RawMessage, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, path, nil
}

// diagramFormat reports whether the format runs the graphviz layout engine.
func diagramFormat(format string) bool {
	return format == pipeline.FormatSVG || pipeline.BinaryFormat(format)
}

// writeStdout writes the artifact followed by a newline unless the artifact
// already ends with one. Empty output (a null tree) prints nothing.
func writeStdout(w io.Writer, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if data[len(data)-1] != '\n' {
		fmt.Fprintln(w)
	}
	return nil
}
