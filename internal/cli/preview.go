package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/pipeline"
)

// previewCommand creates the preview command: an interactive terminal
// walkthrough of the generated sequence.
func (c *CLI) previewCommand() *cobra.Command {
	opts := &scanOpts{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Step through the acquisition order interactively",
		Long: `Open an interactive view of the generated sequence. Each row is one
acquisition; the gauge shows where the tilt sits in [-90, 90).

Example:
  floret preview --tilt-angle-step 3 --symmetry 2`,
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

			p := tea.NewProgram(NewSequenceModel(result.Sequence))
			_, err = p.Run()
			return err
		},
	}

	opts.register(cmd)

	return cmd
}
