package cli

import (
	"github.com/spf13/cobra"

	"github.com/floretscan/floret/pkg/config"
	"github.com/floretscan/floret/pkg/scan"
)

// scanOpts holds the command-line flags shared by every command that
// generates a sequence. Flag defaults come from the built-in defaults;
// values from the config file apply underneath, so an explicit flag
// always wins.
type scanOpts struct {
	configPath string

	zero  float64
	min   float64
	max   float64
	step  float64
	count int

	mode     string
	symmetry int
	stepnum  int

	nhelix int
	pmin   int
	pmax   int

	orderBy    string
	interleave bool

	refresh bool
	noCache bool
}

// register binds the scan flags to cmd.
func (o *scanOpts) register(cmd *cobra.Command) {
	defaults := scan.DefaultConfig()

	cmd.Flags().StringVar(&o.configPath, "config", config.Path(), "config file with parameter defaults")

	cmd.Flags().Float64Var(&o.zero, "tilt-angle-zero", defaults.TiltAngleZero, "zero tilt offset in degrees")
	cmd.Flags().Float64Var(&o.min, "tilt-angle-min", defaults.TiltAngleMin, "minimum tilt angle in degrees")
	cmd.Flags().Float64Var(&o.max, "tilt-angle-max", defaults.TiltAngleMax, "maximum tilt angle in degrees")
	cmd.Flags().Float64Var(&o.step, "tilt-angle-step", 0, "tilt angle step in degrees")
	cmd.Flags().IntVar(&o.count, "num-tilt-angles", 0, "number of tilt angles")
	cmd.MarkFlagsMutuallyExclusive("tilt-angle-step", "num-tilt-angles")

	cmd.Flags().StringVar(&o.mode, "mode", string(defaults.Mode), "scan mode: symmetric, spiral, or swinging")
	cmd.Flags().IntVar(&o.symmetry, "symmetry", defaults.Symmetry, "dose-symmetry level (0 keeps continuous order)")
	cmd.Flags().IntVar(&o.stepnum, "stepnum", defaults.StepNum, "angles per pass for spiral and swinging modes")
	cmd.MarkFlagsMutuallyExclusive("symmetry", "stepnum")

	cmd.Flags().IntVar(&o.nhelix, "nhelix", defaults.NHelix, "helix sub-positions per beam shift")
	cmd.Flags().IntVar(&o.pmin, "position-min", defaults.PositionMin, "first discrete beam shift")
	cmd.Flags().IntVar(&o.pmax, "position-max", defaults.PositionMax, "one past the last discrete beam shift")

	cmd.Flags().StringVar(&o.orderBy, "order-by", string(defaults.OrderBy), "outer acquisition loop: angle or position")
	cmd.Flags().BoolVar(&o.interleave, "interleave", defaults.InterleavePositions, "interleave even and odd beam shifts")

	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the result cache entirely")
}

// config resolves the final scan configuration: config file values under
// explicitly set flags.
func (o *scanOpts) config(cmd *cobra.Command) (scan.Config, error) {
	file, err := config.Load(o.configPath)
	if err != nil {
		return scan.Config{}, err
	}
	cfg := file.ScanConfig()

	flags := cmd.Flags()
	if flags.Changed("tilt-angle-zero") {
		cfg.TiltAngleZero = o.zero
	}
	if flags.Changed("tilt-angle-min") {
		cfg.TiltAngleMin = o.min
	}
	if flags.Changed("tilt-angle-max") {
		cfg.TiltAngleMax = o.max
	}
	if flags.Changed("tilt-angle-step") {
		cfg.TiltAngleStep = o.step
		cfg.NumTiltAngles = 0
	}
	if flags.Changed("num-tilt-angles") {
		cfg.NumTiltAngles = o.count
		cfg.TiltAngleStep = 0
	}
	if flags.Changed("mode") {
		cfg.Mode = scan.Mode(o.mode)
	}
	if flags.Changed("symmetry") {
		cfg.Symmetry = o.symmetry
		cfg.StepNum = 0
	}
	if flags.Changed("stepnum") {
		cfg.StepNum = o.stepnum
		cfg.Symmetry = 0
	}
	if flags.Changed("nhelix") {
		cfg.NHelix = o.nhelix
	}
	if flags.Changed("position-min") {
		cfg.PositionMin = o.pmin
	}
	if flags.Changed("position-max") {
		cfg.PositionMax = o.pmax
	}
	if flags.Changed("order-by") {
		cfg.OrderBy = scan.OrderBy(o.orderBy)
	}
	if flags.Changed("interleave") {
		cfg.InterleavePositions = o.interleave
	}
	return cfg, nil
}
