package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/pipeline"
)

// generateCommand creates the generate command, the primary entry point:
// it computes the acquisition sequence and writes it out.
func (c *CLI) generateCommand() *cobra.Command {
	opts := &scanOpts{}
	var (
		output  string
		formats string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tilt-series acquisition order",
		Long: `Generate the ordered (position, angle) sequence for a tomographic scan.

Exactly one of --tilt-angle-step or --num-tilt-angles must be set, on the
command line or in the config file.

Examples:
  floret generate --tilt-angle-step 3                    # CSV to stdout
  floret generate --tilt-angle-step 3 --symmetry 2       # Dose-symmetric
  floret generate --num-tilt-angles 41 --mode spiral --stepnum 10
  floret generate --tilt-angle-step 3 -o scan --format csv,json,png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			requested := parseFormats(formats)
			prog := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Scan:    cfg,
				Formats: requested,
				Refresh: opts.refresh,
				Logger:  c.Logger,
			})
			if err != nil {
				printError("%s", ferrors.UserMessage(err))
				return err
			}
			prog.done(fmt.Sprintf("Generated %d acquisitions", result.Stats.Pairs))

			if output == "" {
				return writeStdout(result, requested)
			}
			return writeFiles(output, result, requested)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path without extension (stdout if empty)")
	cmd.Flags().StringVar(&formats, "format", "", "comma-separated output formats: csv, json, dot, svg, png")

	return cmd
}

// writeStdout streams the artifacts to standard output in request order.
// Binary formats are refused; they need a file destination.
func writeStdout(result *pipeline.Result, formats []string) error {
	for _, format := range formats {
		if format == pipeline.FormatPNG || format == pipeline.FormatSVG {
			return ferrors.New(ferrors.ErrCodeFormat,
				"format %q requires --output", format)
		}
	}
	for _, format := range formats {
		if _, err := os.Stdout.Write(result.Artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

// writeFiles writes each artifact next to base with its format as
// extension, in request order.
func writeFiles(base string, result *pipeline.Result, formats []string) error {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.Pairs, 0, result.CacheInfo.Hit)
	return nil
}
