package scan

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	ferrors "github.com/floretscan/floret/pkg/errors"
)

// AngleConfig describes the initial tilt-angle sequence.
//
// Exactly one of Step or Count must be set (non-zero). All angles are in
// degrees and the generated sequence lives in the half-open interval
// [-90, 90).
type AngleConfig struct {
	Zero float64 // zero tilt offset; the scan is recentred about it
	Min  float64 // minimum tilt angle, >= -90
	Max  float64 // maximum tilt angle, <= 90
	Step float64 // tilt angle step; 0 means unset
	Count int    // number of tilt angles; 0 means unset
}

// Angles generates the initial monotonically increasing tilt sequence.
//
// With Step set, the scan is recentred so the zero offset is landed on
// exactly: the largest symmetric excursion m = min(Zero-Min, Max-Zero) is
// quantized to the step grid, giving bounds
//
//	lo = Zero - Step*floor(m/Step)
//	hi = Zero + Step*ceil(m/Step)
//
// With Count set, the step is derived as (Max-Min)/Count and the bounds
// are used as given. The sequence runs from lo to hi exclusive of the
// upper bound.
//
// Configuration errors are returned for contradictory parameters and
// bound violations; range errors when the derived grid is empty or
// leaves [-90, 90).
func Angles(cfg AngleConfig) ([]float64, error) {
	if err := ferrors.ValidateOrdered("tilt-angle-min", "tilt-angle-zero", "tilt-angle-max",
		cfg.Min, cfg.Zero, cfg.Max); err != nil {
		return nil, err
	}
	if cfg.Min < -90 || cfg.Max > 90 {
		return nil, ferrors.New(ferrors.ErrCodeBounds,
			"tilt range [%g, %g] must lie within [-90, 90]", cfg.Min, cfg.Max)
	}
	if err := ferrors.ValidateExclusive("tilt-angle-step", "num-tilt-angles",
		cfg.Step != 0, cfg.Count != 0, true); err != nil {
		return nil, err
	}

	lo, hi, step := cfg.Min, cfg.Max, cfg.Step
	if cfg.Step != 0 {
		if cfg.Step < 0 {
			return nil, ferrors.New(ferrors.ErrCodeBounds, "tilt-angle-step must be positive, got %g", cfg.Step)
		}
		// Largest tilt excursion from the zero offset toward either bound.
		m := math.Min(cfg.Zero-cfg.Min, cfg.Max-cfg.Zero)
		lo = cfg.Zero - step*math.Floor(m/step)
		hi = cfg.Zero + step*math.Ceil(m/step)
	} else {
		if cfg.Count < 0 {
			return nil, ferrors.New(ferrors.ErrCodeBounds, "num-tilt-angles must be positive, got %d", cfg.Count)
		}
		step = (cfg.Max - cfg.Min) / float64(cfg.Count)
	}

	if step <= 0 || lo >= hi {
		return nil, ferrors.New(ferrors.ErrCodeRangeEmpty,
			"degenerate tilt range [%g, %g) with step %g", lo, hi, step)
	}

	n := int(math.Ceil((hi - lo) / step))
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = lo + float64(i)*step
	}
	slices.Sort(angles)

	if len(angles) == 0 {
		return nil, ferrors.New(ferrors.ErrCodeRangeEmpty, "no tilt angles generated")
	}
	if floats.Min(angles) < -90 || floats.Max(angles) >= 90 {
		return nil, ferrors.New(ferrors.ErrCodeRangeDomain,
			"generated angles [%g, %g] leave the valid domain [-90, 90)",
			floats.Min(angles), floats.Max(angles))
	}
	return angles, nil
}
