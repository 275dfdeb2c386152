package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/floretscan/floret/pkg/cache"
	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/export"
	"github.com/floretscan/floret/pkg/observability"
	"github.com/floretscan/floret/pkg/render"
	"github.com/floretscan/floret/pkg/scan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	genStart := time.Now()
	seq, hit, err := r.generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Sequence = seq
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Pairs = seq.Len()
	result.CacheInfo.Hit = hit

	logger.Info("generated scan sequence",
		"mode", opts.Scan.Mode,
		"pairs", seq.Len(),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	for _, format := range opts.Formats {
		data, err := renderArtifact(seq, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// generate produces the sequence, consulting the cache first. The bool
// reports a cache hit.
func (r *Runner) generate(ctx context.Context, opts Options) (scan.Sequence, bool, error) {
	cacheKey := r.Keyer.ScanKey(opts.Scan)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var seq scan.Sequence
			if err := json.Unmarshal(data, &seq); err == nil {
				if hooks := observability.GetCacheHooks(); hooks != nil {
					hooks.OnCacheHit(ctx, cacheKey)
				}
				return seq, true, nil
			}
		}
		if hooks := observability.GetCacheHooks(); hooks != nil {
			hooks.OnCacheMiss(ctx, cacheKey)
		}
	}

	if hooks := observability.GetScanHooks(); hooks != nil {
		hooks.OnGenerateStart(ctx, string(opts.Scan.Mode), opts.Scan.NumTiltAngles)
	}

	start := time.Now()
	seq, err := scan.Generate(opts.Scan)

	if hooks := observability.GetScanHooks(); hooks != nil {
		hooks.OnGenerateComplete(ctx, string(opts.Scan.Mode), seq.Len(), time.Since(start), err)
	}
	if err != nil {
		return scan.Sequence{}, false, err
	}

	if !opts.Refresh {
		if data, err := json.Marshal(seq); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLScan)
			if hooks := observability.GetCacheHooks(); hooks != nil {
				hooks.OnCacheSet(ctx, cacheKey, len(data))
			}
		}
	}

	return seq, false, nil
}

// renderArtifact serializes the sequence into a single output format.
func renderArtifact(seq scan.Sequence, format string) ([]byte, error) {
	switch format {
	case FormatCSV:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, seq); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, seq); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(render.ToDOT(seq)), nil
	case FormatSVG:
		return render.RenderSVG(render.ToDOT(seq))
	case FormatPNG:
		return render.PlotOrder(seq)
	default:
		return nil, ferrors.New(ferrors.ErrCodeFormat, "invalid format: %q", format)
	}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// logger returns the per-run logger, falling back to the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
