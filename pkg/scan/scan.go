package scan

import (
	ferrors "github.com/floretscan/floret/pkg/errors"

	"github.com/floretscan/floret/pkg/perm"
)

// Mode selects the symmetry scheme used to reorder the tilt sequence.
type Mode string

const (
	// ModeSymmetric alternates around zero tilt to balance accumulated dose.
	ModeSymmetric Mode = "symmetric"

	// ModeSpiral visits every n-th angle in one-directional passes.
	ModeSpiral Mode = "spiral"

	// ModeSwinging alternates pass direction to minimize mechanical travel.
	ModeSwinging Mode = "swinging"
)

// Modes lists the valid scan modes.
var Modes = []string{string(ModeSymmetric), string(ModeSpiral), string(ModeSwinging)}

// Config is the full parameter surface of the scan generator.
//
// TiltAngleStep and NumTiltAngles are mutually exclusive; exactly one must
// be set. Symmetry applies to ModeSymmetric; StepNum to ModeSpiral and
// ModeSwinging, where a zero StepNum derives N / 2^(symmetry-1) when
// Symmetry > 0.
type Config struct {
	TiltAngleZero float64 `json:"tilt_angle_zero"`
	TiltAngleMin  float64 `json:"tilt_angle_min"`
	TiltAngleMax  float64 `json:"tilt_angle_max"`
	TiltAngleStep float64 `json:"tilt_angle_step,omitempty"`
	NumTiltAngles int     `json:"num_tilt_angles,omitempty"`

	Mode     Mode `json:"mode"`
	Symmetry int  `json:"symmetry"`
	StepNum  int  `json:"stepnum"`

	NHelix      int `json:"nhelix"`
	PositionMin int `json:"position_min"`
	PositionMax int `json:"position_max"`

	OrderBy             OrderBy `json:"order_by"`
	InterleavePositions bool    `json:"interleave_positions"`
}

// DefaultConfig returns the canonical defaults: full tilt range about zero,
// symmetric mode with continuous order, a single helix position and a
// single beam shift, ordered by angle with interleaving on.
//
// Neither step nor count is set; the caller must supply one.
func DefaultConfig() Config {
	return Config{
		TiltAngleZero:       0,
		TiltAngleMin:        -90,
		TiltAngleMax:        90,
		Mode:                ModeSymmetric,
		Symmetry:            0,
		NHelix:              1,
		PositionMin:         0,
		PositionMax:         1,
		OrderBy:             OrderByAngle,
		InterleavePositions: true,
	}
}

// Validate checks the top-level parameter constraints. It does not touch
// the angle-range parameters, which Angles validates itself.
func (c Config) Validate() error {
	if c.Symmetry < 0 {
		return ferrors.New(ferrors.ErrCodeBounds, "symmetry must be >= 0, got %d", c.Symmetry)
	}
	if err := ferrors.ValidateEnum(ferrors.ErrCodeMode, "mode", string(c.Mode), Modes...); err != nil {
		return err
	}
	if err := ferrors.ValidateAtLeast("nhelix", c.NHelix, 1); err != nil {
		return err
	}
	if err := ferrors.ValidateWindow("position", c.PositionMin, c.PositionMax, 1); err != nil {
		return err
	}
	return ferrors.ValidateEnum(ferrors.ErrCodeOrderBy, "order-by", string(c.OrderBy), OrderBys...)
}

// Generate runs the full pipeline and returns the final visitation
// sequence. It is the single library entry point; identical inputs always
// yield identical outputs.
func Generate(cfg Config) (Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return Sequence{}, err
	}

	angles, err := Angles(AngleConfig{
		Zero:  cfg.TiltAngleZero,
		Min:   cfg.TiltAngleMin,
		Max:   cfg.TiltAngleMax,
		Step:  cfg.TiltAngleStep,
		Count: cfg.NumTiltAngles,
	})
	if err != nil {
		return Sequence{}, err
	}

	positions, err := InitialPositions(cfg.NHelix, len(angles))
	if err != nil {
		return Sequence{}, err
	}

	stepnum := cfg.StepNum
	if stepnum == 0 && cfg.Symmetry > 0 {
		stepnum = len(angles) / (1 << (cfg.Symmetry - 1))
	}

	var order []int
	switch cfg.Mode {
	case ModeSymmetric:
		// The reference for dose ordering is the middle of the sorted
		// sequence, at or next to the recentred zero offset depending
		// on grid parity.
		order, err = DoseSymmetric(angles, cfg.Symmetry, angles[len(angles)/2])
		if err != nil {
			return Sequence{}, err
		}
	case ModeSpiral:
		order = Spiral(len(angles), stepnum)
	case ModeSwinging:
		order = Swinging(len(angles), stepnum)
	}

	ag, pg, err := ShiftedPositions(
		perm.Apply(order, angles),
		perm.Apply(order, positions),
		cfg.PositionMin, cfg.PositionMax,
	)
	if err != nil {
		return Sequence{}, err
	}

	return Compose(ag, pg, cfg.OrderBy, cfg.InterleavePositions)
}
