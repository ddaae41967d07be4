package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"pylintd/internal/analyzer"
	"pylintd/pkg/logger"
	"pylintd/pkg/serrors"
)

// AnalysisWorker runs analyzer jobs. Errors map to river actions:
//   - ErrConflict cancels the job, no pending analysis is left for the source;
//   - ErrTimeout and ErrUnavailable snooze it, pylint was slow or missing;
//   - anything else is returned and river retries with its own backoff.
type AnalysisWorker struct {
	river.WorkerDefaults[analyzer.JobArgs]

	analyzer analyzer.Analyzer
	snooze   time.Duration
	timeout  time.Duration
}

// NewAnalysisWorker creates the worker. snooze is the base delay of snoozed
// jobs, it grows with the attempt number. timeout bounds a single job; zero
// keeps river's default.
func NewAnalysisWorker(analyzer analyzer.Analyzer, snooze, timeout time.Duration) *AnalysisWorker {
	return &AnalysisWorker{
		analyzer: analyzer,
		snooze:   snooze,
		timeout:  timeout,
	}
}

// Timeout implements river.Worker.
func (w *AnalysisWorker) Timeout(*river.Job[analyzer.JobArgs]) time.Duration {
	return w.timeout
}

// Work implements river.Worker.
func (w *AnalysisWorker) Work(ctx context.Context, job *river.Job[analyzer.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobId", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("sourceHash", job.Args.SourceHash))

	err := w.analyzer.Analyze(ctx, job.Args.SourceHash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, serrors.ErrConflict):
		logger.Info(ctx, "nothing left to analyse, cancelling job")

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrTimeout), errors.Is(err, serrors.ErrUnavailable):
		wait := w.snooze * time.Duration(max(job.Attempt, 1))
		logger.Warn(ctx, "pylint not ready, snoozing job", zap.Error(err), zap.Duration("snooze", wait))

		return river.JobSnooze(wait) //nolint: wrapcheck
	default:
		logger.Error(ctx, "error analysing source", zap.Error(err))

		return fmt.Errorf("could not analyse source: %w", err)
	}
}
