package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/floretscan/floret/internal/api"
	"github.com/floretscan/floret/pkg/cache"
)

// serveCommand creates the serve command: the HTTP API for remote
// acquisition scripts.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scan generation over HTTP",
		Long: `Start an HTTP server exposing scan generation.

Endpoints:
  GET /api/v1/scan      generate a sequence from query parameters
  GET /api/v1/healthz   liveness check

Example:
  floret serve --addr :8080
  curl 'localhost:8080/api/v1/scan?step=3&symmetry=2'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			// The server shares the CLI cache directory; a scoped keyer
			// keeps API entries from colliding with CLI ones.
			runner.Keyer = cache.NewScopedKeyer(runner.Keyer, "v1:")

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(runner, c.Logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return context.Canceled
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}
