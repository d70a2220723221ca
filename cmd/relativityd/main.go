// Command relativityd serves spacetime metric calculations over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/spacetimeops/relativity/cache"
	"github.com/spacetimeops/relativity/config"
	"github.com/spacetimeops/relativity/engine"
	"github.com/spacetimeops/relativity/health"
	"github.com/spacetimeops/relativity/httpapi"
	"github.com/spacetimeops/relativity/observe"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "relativityd",
		Short:         "Stateless relativity metric calculation service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ocfg := cfg.Observe()
	ocfg.Version = version
	obs, err := observe.NewObserver(ctx, ocfg)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		_ = obs.Shutdown(context.Background())
	}()
	logger := obs.Logger()

	store := cache.NewFIFOStore(cfg.CachePolicy())
	eng := engine.New(store, cache.NewDefaultKeyer(), nil)

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return fmt.Errorf("setup instrumentation: %w", err)
	}
	calc := mw.Wrap(eng)

	if err := observe.RegisterCacheGauges(obs.Meter(), func() observe.CacheStats {
		s := store.Stats()
		return observe.CacheStats{
			Entries:   int64(s.Entries),
			Capacity:  int64(s.Capacity),
			Hits:      s.Hits,
			Misses:    s.Misses,
			Evictions: s.Evictions,
		}
	}); err != nil {
		return fmt.Errorf("register cache gauges: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/calculate", httpapi.NewHandler(calc, httpapi.Options{
		MaxConcurrent: cfg.Server.MaxConcurrent,
		Logger:        logger,
	}))

	agg := health.NewAggregator(
		health.NewDispatcherChecker(eng.Types),
		health.NewCacheChecker(store.Stats),
	)
	health.RegisterHandlers(mux, agg)

	if cfg.Observability.Metrics && cfg.Observability.MetricsExpt == "prometheus" {
		mux.Handle("/metrics", promhttp.Handler())
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server listening",
			observe.Field{Key: "addr", Value: cfg.Server.Addr},
			observe.Field{Key: "calc.types", Value: eng.Types()},
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
