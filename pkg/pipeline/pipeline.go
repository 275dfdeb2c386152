// Package pipeline provides the core generate → export pipeline shared
// by the CLI and the HTTP API. Centralizing it here keeps caching and
// artifact rendering consistent across both entry points.
//
// The pipeline consists of two stages:
//
//  1. Generate: build the ordered (position, angle) acquisition sequence
//  2. Render: serialize the sequence into the requested output formats
//
// Usage:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Scan:    scan.DefaultConfig(),
//	    Formats: []string{"csv"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	csv := result.Artifacts["csv"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/scan"
)

// Format constants for output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSV:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// DefaultFormat is used when no formats are requested.
const DefaultFormat = FormatCSV

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scan holds the generation parameters.
	Scan scan.Config `json:"scan"`

	// Formats lists the artifacts to render. Defaults to csv.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache for both read and write.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sequence is the generated acquisition order.
	Sequence scan.Sequence

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether generation hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pairs        int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache usage for the run.
type CacheInfo struct {
	Hit bool // Whether the sequence came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return ferrors.New(ferrors.ErrCodeFormat,
			"invalid format: %q (must be one of: csv, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}

	// Symmetry and stepnum both steer the visit order; accepting both
	// would silently ignore one of them.
	if err := ferrors.ValidateExclusive("symmetry", "stepnum",
		o.Scan.Symmetry > 0, o.Scan.StepNum > 0, false); err != nil {
		return err
	}

	if err := o.Scan.Validate(); err != nil {
		return err
	}

	o.validated = true
	return nil
}
