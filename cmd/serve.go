package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pylintd/internal/analyzer"
	"pylintd/internal/api"
	"pylintd/internal/api/handler/v1handler"
	"pylintd/internal/config"
	"pylintd/internal/server"
	"pylintd/internal/worker"
	"pylintd/pkg/controller"
	"pylintd/pkg/logger"
	"pylintd/pkg/pylint"
)

// newRunner builds the pylint runner shared by the TCP server and the API.
func newRunner(cfg *config.Config) (pylint.Runner, error) {
	args, err := pylint.SplitArgs(cfg.Pylint.Args)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	runner, err := pylint.NewCachedRunner(pylint.New(pylint.Options{
		Binary:            cfg.Pylint.Binary,
		Args:              args,
		Timeout:           cfg.Pylint.Timeout,
		MaxConcurrentRuns: cfg.Pylint.MaxConcurrentRuns,
	}), cfg.Pylint.CacheSize)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return runner, nil
}

func setupTCPServer(ctx context.Context, g *errgroup.Group, cfg *config.Config,
	runner pylint.Runner) func(ctx context.Context) {
	status := config.CheckEnvironment(cfg.TCP.IPAddress, cfg.TCP.Port)
	if !status.OK {
		logger.Warn(ctx, "using default listen address", zap.Error(status.Err), zap.String("addr", status.Addr()))
	}

	srv := server.New(runner, server.NewOptions(cfg, status.Addr()))

	g.Go(func() error {
		logger.Info(ctx, "starting tcp server...", zap.String("addr", status.Addr()))
		err := srv.ListenAndServe(ctx)
		if err != nil && !errors.Is(err, server.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("could not start tcp server: %w", err)
		}

		return nil
	})

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping tcp server...")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop tcp server", zap.Error(err))
		}
	}
}

func setupWebserver(ctx context.Context, g *errgroup.Group, cfg *config.Config,
	deps api.Deps) func(ctx context.Context) {
	srv, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	g.Go(func() error {
		logger.Info(ctx, "starting webserver...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start webserver: %w", err)
		}

		return nil
	})

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the TCP lint server and, when enabled, the API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runner, err := newRunner(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not create pylint runner", zap.Error(err))
			}
			if _, err := exec.LookPath(cfg.Pylint.Binary); err != nil {
				logger.Warn(ctx, "pylint executable not found", zap.String("binary", cfg.Pylint.Binary))
			}

			g, gCtx := errgroup.WithContext(ctx)

			stopTCPServer := setupTCPServer(gCtx, g, cfg, runner)

			var (
				stopWebserver func(ctx context.Context)
				riverClient   *river.Client[pgx.Tx]
			)
			if cfg.HTTP.Enabled {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				a := analyzer.New(strg, runner, analyzer.NewOptions(cfg))

				// river stops through Stop so that running jobs can finish
				riverClient, err = worker.Start(context.WithoutCancel(ctx), strg.Pool, a, worker.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not start workers", zap.Error(err))
				}

				stopWebserver = setupWebserver(gCtx, g, cfg, api.Deps{
					Deps: v1handler.Deps{
						Analyzer: a,
						Runner:   runner,
					},
					RiverClient: riverClient,
					HealthChecks: map[string]controller.HealthCheck{
						"postgres": strg.Ping,
						"pylint": func(context.Context) error {
							_, err := exec.LookPath(cfg.Pylint.Binary)

							return err //nolint: wrapcheck
						},
					},
				})
			}

			// wait for interrupt or a failed listener
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			if stopWebserver != nil {
				stopWebserver(shutdownCtx)
			}
			stopTCPServer(shutdownCtx)
			if riverClient != nil {
				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}
			}

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server failed", zap.Error(err))
			}
		},
	}

	return cmd
}
