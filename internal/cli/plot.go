package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/pipeline"
	"github.com/floretscan/floret/pkg/render"
)

// plotCommand creates the plot command: PNG charts of the acquisition
// order and the accumulated dose balance.
func (c *CLI) plotCommand() *cobra.Command {
	opts := &scanOpts{}
	var (
		output string
		dose   bool
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the acquisition order as a PNG chart",
		Long: `Plot the tilt angle visited at each acquisition step. With --dose the
chart instead shows the running mean absolute tilt of exposed angles, a
proxy for how evenly the scheme spreads dose.

Examples:
  floret plot --tilt-angle-step 3 --symmetry 2 -o order.png
  floret plot --tilt-angle-step 3 --symmetry 2 --dose -o dose.png`,
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
				Formats: []string{pipeline.FormatJSON},
				Refresh: opts.refresh,
				Logger:  c.Logger,
			})
			if err != nil {
				printError("%s", ferrors.UserMessage(err))
				return err
			}

			prog := newProgress(c.Logger)
			var data []byte
			if dose {
				data, err = render.PlotDose(result.Sequence)
			} else {
				data, err = render.PlotOrder(result.Sequence)
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Plotted %d acquisitions", result.Stats.Pairs))

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "scan.png", "output PNG path")
	cmd.Flags().BoolVar(&dose, "dose", false, "plot dose balance instead of visit order")

	return cmd
}
