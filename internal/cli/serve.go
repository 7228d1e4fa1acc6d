package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/firmos/internal/api"
	"github.com/example/firmos/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the local cache syncer",
		Long: `Run the firmos HTTP API.

The local cache (when enabled) is rewritten after every change so the
dashboard keeps working from the last good snapshot if the store fails.
SIGINT or SIGTERM shuts the server down gracefully.

Examples:
  firmos serve
  firmos serve --addr :9090
  firmos serve --config /etc/firmos.toml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer closeApp(a)

			if addr != "" {
				a.Config.Server.Addr = addr
			}
			return serve(ctx, a)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// apiServices maps the wired services onto the HTTP layer.
func apiServices(a *wire.App) api.Services {
	return api.Services{
		Employees: a.Employees,
		TaskLogs:  a.TaskLogs,
		Clients:   a.Clients,
		CaseTypes: a.CaseTypes,
		Finance:   a.Finance,
		Cashbox:   a.Cashbox,
		Income:    a.Income,
		Tickets:   a.Tickets,
		Logs:      a.Logs,
		Metrics:   a.Metrics,
		Advisor:   a.Advisor,
		Reports:   a.Reports,
		Feed:      a.Feed,
	}
}

// serve runs the HTTP server and the cache syncer until ctx is cancelled
// or either fails.
func serve(ctx context.Context, a *wire.App) error {
	cfg := a.Config.Server
	handler := api.NewServer(apiServices(a), api.Options{
		RequestTimeout: cfg.RequestTimeout.Duration,
		AllowedOrigins: cfg.AllowedOrigins,
	}, a.Logger.Named("api")).Handler()

	// Change streams never finish on their own; cancelling the base
	// context on shutdown ends them.
	streams, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return streams },
	}
	httpServer.RegisterOnShutdown(cancelStreams)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("firm", cfg.FirmName),
			zap.Bool("advisor", a.Advisor.Configured()),
			zap.Bool("cache", a.Syncer != nil))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if a.Syncer != nil {
		g.Go(func() error {
			return a.Syncer.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout.Duration))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Duration)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
