// Package worker runs the background river queue that processes analyses
// submitted through the HTTP API.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"pylintd/internal/analyzer"
	"pylintd/internal/config"
	"pylintd/pkg/logger"
)

// Options configure the river client.
type Options struct {
	// MaxWorkers bounds concurrently running jobs.
	MaxWorkers int
	// SnoozeDuration is the base delay of snoozed jobs.
	SnoozeDuration time.Duration
	// JobTimeout bounds a single job.
	JobTimeout time.Duration
}

// NewOptions builds Options from the configuration. A job may wait for a
// pylint slot, so it gets twice the pylint timeout.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:     cfg.Worker.MaxWorkers,
		SnoozeDuration: cfg.Worker.SnoozeDuration,
		JobTimeout:     2 * cfg.Pylint.Timeout,
	}
}

// Workers registers the analysis worker.
func Workers(analyzer analyzer.Analyzer, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewAnalysisWorker(analyzer, options.SnoozeDuration, options.JobTimeout))

	return workers
}

// Start creates and starts a river client working the default queue. The
// caller stops it with Stop.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	analyzer analyzer.Analyzer,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(analyzer, options),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
