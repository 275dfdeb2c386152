// Package api exposes scan generation over HTTP so acquisition scripts
// on the microscope workstation can fetch sequences without a local
// install.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	ferrors "github.com/floretscan/floret/pkg/errors"
	"github.com/floretscan/floret/pkg/pipeline"
	"github.com/floretscan/floret/pkg/scan"
)

// Server handles HTTP requests for scan generation.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server backed by the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scan", s.handleScan)
		r.Get("/healthz", s.handleHealth)
	})
	return r
}

// requestID tags every request with a UUID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		s.logger.Debug("request", "id", id, "method", req.Method, "path", req.URL.Path)
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScan generates a sequence from query parameters. Unset
// parameters keep their defaults.
//
//	GET /api/v1/scan?step=3&mode=symmetric&symmetry=2
func (s *Server) handleScan(w http.ResponseWriter, req *http.Request) {
	cfg, err := configFromQuery(req)
	if err != nil {
		s.writeError(w, req, err)
		return
	}

	opts := pipeline.Options{
		Scan:    cfg,
		Formats: []string{pipeline.FormatJSON},
		Refresh: req.URL.Query().Get("refresh") == "true",
		Logger:  s.logger,
	}

	result, err := s.runner.Execute(req.Context(), opts)
	if err != nil {
		s.writeError(w, req, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", cacheHeader(result.CacheInfo.Hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

// configFromQuery overlays query parameters on the default config.
func configFromQuery(req *http.Request) (scan.Config, error) {
	cfg := scan.DefaultConfig()
	q := req.URL.Query()

	for name, dst := range map[string]*float64{
		"zero": &cfg.TiltAngleZero,
		"min":  &cfg.TiltAngleMin,
		"max":  &cfg.TiltAngleMax,
		"step": &cfg.TiltAngleStep,
	} {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return scan.Config{}, ferrors.New(ferrors.ErrCodeConfiguration,
					"parameter %q must be a number, got %q", name, v)
			}
			*dst = f
		}
	}

	for name, dst := range map[string]*int{
		"count":    &cfg.NumTiltAngles,
		"symmetry": &cfg.Symmetry,
		"stepnum":  &cfg.StepNum,
		"nhelix":   &cfg.NHelix,
		"pmin":     &cfg.PositionMin,
		"pmax":     &cfg.PositionMax,
	} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return scan.Config{}, ferrors.New(ferrors.ErrCodeConfiguration,
					"parameter %q must be an integer, got %q", name, v)
			}
			*dst = n
		}
	}

	if v := q.Get("mode"); v != "" {
		cfg.Mode = scan.Mode(v)
	}
	if v := q.Get("order_by"); v != "" {
		cfg.OrderBy = scan.OrderBy(v)
	}
	if v := q.Get("interleave"); v != "" {
		cfg.InterleavePositions = v == "true"
	}

	return cfg, nil
}

// writeError maps domain errors to HTTP status codes: parameter
// problems are the client's fault, everything else is ours.
func (s *Server) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusInternalServerError
	if ferrors.IsConfiguration(err) || ferrors.IsRange(err) {
		status = http.StatusBadRequest
	}

	s.logger.Error("request failed", "path", req.URL.Path, "status", status, "err", err)
	writeJSON(w, status, map[string]string{
		"error": ferrors.UserMessage(err),
		"code":  string(ferrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
