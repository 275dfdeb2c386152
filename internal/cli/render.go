package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/pipeline"
	"github.com/floretscan/floret/pkg/render"
)

// renderCommand creates the render command: a Graphviz diagram of the
// visitation order, as DOT text or rendered SVG.
func (c *CLI) renderCommand() *cobra.Command {
	opts := &scanOpts{}
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the acquisition order as a Graphviz diagram",
		Long: `Render the generated sequence as a node-link chain in visitation order.

The output format follows the file extension: .dot for DOT source,
.svg for a rendered diagram. Without --output, DOT is printed to stdout.

Examples:
  floret render --tilt-angle-step 3 --symmetry 2
  floret render --tilt-angle-step 3 --symmetry 2 -o scan.svg`,
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

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Scan:    cfg,
				Formats: []string{pipeline.FormatDOT},
				Refresh: opts.refresh,
				Logger:  c.Logger,
			})
			if err != nil {
				printError("%s", ferrors.UserMessage(err))
				return err
			}
			dot := result.Artifacts[pipeline.FormatDOT]

			if output == "" {
				_, err = os.Stdout.Write(dot)
				return err
			}

			data := dot
			if strings.HasSuffix(output, ".svg") {
				prog := newProgress(c.Logger)
				data, err = render.RenderSVG(string(dot))
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (.dot or .svg; stdout if empty)")

	return cmd
}
