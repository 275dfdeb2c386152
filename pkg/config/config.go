// Package config loads scan defaults from a TOML file so operators can
// keep their instrument's tilt range and helix setup out of every CLI
// invocation.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/scan"
)

// File mirrors scan.Config with TOML tags. Absent keys keep their
// defaults, so a config file only needs the values it overrides.
type File struct {
	TiltAngleZero float64 `toml:"tilt_angle_zero"`
	TiltAngleMin  float64 `toml:"tilt_angle_min"`
	TiltAngleMax  float64 `toml:"tilt_angle_max"`
	TiltAngleStep float64 `toml:"tilt_angle_step"`
	NumTiltAngles int     `toml:"num_tilt_angles"`

	Mode     string `toml:"mode"`
	Symmetry int    `toml:"symmetry"`
	StepNum  int    `toml:"stepnum"`

	NHelix      int `toml:"nhelix"`
	PositionMin int `toml:"position_min"`
	PositionMax int `toml:"position_max"`

	OrderBy             string `toml:"order_by"`
	InterleavePositions bool   `toml:"interleave_positions"`
}

// Default returns the file representation of the canonical defaults.
func Default() File {
	c := scan.DefaultConfig()
	return File{
		TiltAngleZero:       c.TiltAngleZero,
		TiltAngleMin:        c.TiltAngleMin,
		TiltAngleMax:        c.TiltAngleMax,
		TiltAngleStep:       c.TiltAngleStep,
		NumTiltAngles:       c.NumTiltAngles,
		Mode:                string(c.Mode),
		Symmetry:            c.Symmetry,
		StepNum:             c.StepNum,
		NHelix:              c.NHelix,
		PositionMin:         c.PositionMin,
		PositionMax:         c.PositionMax,
		OrderBy:             string(c.OrderBy),
		InterleavePositions: c.InterleavePositions,
	}
}

// Load reads the TOML file at path, applied on top of the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (File, error) {
	f := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return f, nil
	}

	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, ferrors.Wrap(ferrors.ErrCodeFormat, err, "parsing config file %s", path)
	}
	return f, nil
}

// ScanConfig converts the file representation into a scan configuration.
func (f File) ScanConfig() scan.Config {
	return scan.Config{
		TiltAngleZero:       f.TiltAngleZero,
		TiltAngleMin:        f.TiltAngleMin,
		TiltAngleMax:        f.TiltAngleMax,
		TiltAngleStep:       f.TiltAngleStep,
		NumTiltAngles:       f.NumTiltAngles,
		Mode:                scan.Mode(f.Mode),
		Symmetry:            f.Symmetry,
		StepNum:             f.StepNum,
		NHelix:              f.NHelix,
		PositionMin:         f.PositionMin,
		PositionMax:         f.PositionMax,
		OrderBy:             scan.OrderBy(f.OrderBy),
		InterleavePositions: f.InterleavePositions,
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/floret/config.toml, falling back to ~/.config.
func Path() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "floret", "config.toml")
}
