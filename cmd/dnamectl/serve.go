package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/dnsname/internal/api"
	"github.com/jroosing/dnsname/internal/database"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host   string
		port   int
		apiKey string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the management API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if host != "" {
				a.cfg.API.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.API.Port = port
			}
			if apiKey != "" {
				a.cfg.API.APIKey = apiKey
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.withDB(func(db *database.DB) error {
				return a.serve(ctx, db)
			})
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Override API bind host")
	cmd.Flags().IntVar(&port, "port", 0, "Override API bind port")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Require this X-API-Key")
	return cmd
}

// serve runs the API until ctx is done, then shuts it down gracefully.
func (a *app) serve(ctx context.Context, db *database.DB) error {
	srv := api.New(a.cfg, db, a.logger)
	ln, err := srv.Listen(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down management API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
