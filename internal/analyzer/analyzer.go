// Package analyzer implements the asynchronous lint workflow of the HTTP API:
// submissions are stored as pending analyses, a river job per distinct source
// runs pylint once and fans the report out to every pending analysis of that
// source.
package analyzer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"pylintd/internal/config"
	"pylintd/pkg/domain"
	"pylintd/pkg/logger"
	"pylintd/pkg/pylint"
	"pylintd/pkg/serrors"
	"pylintd/pkg/storage"
)

// Options configure job submission.
type Options struct {
	// MaxAttempts is how many runs an analysis gets before it is marked failed.
	MaxAttempts int
	// UniquePeriod is the window in which identical sources share one job and
	// a completed report is reused.
	UniquePeriod time.Duration
	// MaxSourceBytes bounds submitted sources; <= 0 disables the check.
	MaxSourceBytes int
}

// NewOptions builds Options from the configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Worker.MaxAttempts,
		UniquePeriod:   cfg.Worker.UniquePeriod,
		MaxSourceBytes: cfg.Worker.MaxSourceBytes,
	}
}

type analyzer struct {
	options Options
	storage storage.Storage
	runner  pylint.Runner
}

// New creates an Analyzer.
func New(storage storage.Storage, runner pylint.Runner, options Options) Analyzer {
	return &analyzer{
		options: options,
		storage: storage,
		runner:  runner,
	}
}

// ValidateFileName defaults an empty name to domain.DefaultFileName and
// rejects names that are not plain python file names.
func ValidateFileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.DefaultFileName, nil
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		return "", serrors.With(serrors.ErrBadRequest, "file name must not contain a path")
	}
	if strings.HasPrefix(name, "-") {
		return "", serrors.With(serrors.ErrBadRequest, "file name must not start with a dash")
	}
	if !strings.HasSuffix(name, ".py") || name == ".py" {
		return "", serrors.With(serrors.ErrBadRequest, "file name must end with .py")
	}

	return name, nil
}

// Submit validates the request, stores a pending analysis and enqueues its job
// in one transaction. When an identical source already has a job and a
// completed report exists, the new analysis is completed right away.
func (a *analyzer) Submit(ctx context.Context,
	userID domain.UserID,
	fileName, source string) (*domain.Analysis, error) {
	fileName, err := ValidateFileName(fileName)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(source) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "source is required")
	}
	if a.options.MaxSourceBytes > 0 && len(source) > a.options.MaxSourceBytes {
		return nil, serrors.With(serrors.ErrPayloadTooLarge, "source is larger than %s",
			humanize.IBytes(uint64(a.options.MaxSourceBytes)))
	}

	hash := domain.SourceHash(fileName, source)
	ctx = logger.WithFields(ctx, zap.String("sourceHash", hash))

	var (
		analysis *domain.Analysis
		joined   bool
	)
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreAnalyses(ctx, domain.Analysis{
			UserID:     userID,
			FileName:   fileName,
			Source:     source,
			SourceHash: hash,
			Status:     domain.AnalysisStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store analysis: %w", err)
		}
		analysis = &res[0]

		added, err := tx.AddJob(ctx, JobArgs{
			SourceHash:   hash,
			maxAttempts:  a.options.MaxAttempts,
			uniquePeriod: a.options.UniquePeriod,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if added {
			return nil
		}

		// a job for this source exists; reuse its report if it already finished
		last, err := tx.LastCompletedAnalysisByHash(ctx, hash)
		if err != nil {
			return fmt.Errorf("could not get last completed analysis: %w", err)
		}
		if last == nil || last.Report == nil {
			logger.Debug(ctx, "analysis joined a queued job")
			joined = true

			return nil
		}

		updated, err := tx.UpdateAnalysisByID(ctx, analysis.ID, storage.AnalysisUpdates{
			Status: domain.AnalysisStatusCompleted,
			Report: last.Report,
		})
		if err != nil {
			return fmt.Errorf("could not update analysis: %w", err)
		}
		if updated != nil {
			analysis = updated
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit analysis: %w", err)
	}

	if joined {
		return a.settleJoined(ctx, analysis), nil
	}

	return analysis, nil
}

// settleJoined completes an analysis that joined a job which was already
// running when the transaction started. Such a job may store its report
// before the analysis is committed and never see it, so the report is
// looked up again once the analysis is visible. Failures leave the analysis
// pending for the next run of the job.
func (a *analyzer) settleJoined(ctx context.Context, analysis *domain.Analysis) *domain.Analysis {
	last, err := a.storage.LastCompletedAnalysisByHash(ctx, analysis.SourceHash)
	if err != nil {
		logger.Warn(ctx, "could not recheck completed analysis", zap.Error(err))

		return analysis
	}
	if last == nil || last.Report == nil {
		return analysis
	}

	updated, err := a.storage.UpdateAnalysisByID(ctx, analysis.ID, storage.AnalysisUpdates{
		Status:      domain.AnalysisStatusCompleted,
		Report:      last.Report,
		OnlyPending: true,
	})
	if err != nil {
		logger.Warn(ctx, "could not complete joined analysis", zap.Error(err))

		return analysis
	}
	if updated != nil {
		return updated
	}

	// the job completed it meanwhile
	if res, err := a.storage.AnalysisByID(ctx, analysis.UserID, analysis.ID); err == nil && res != nil {
		return res
	}

	return analysis
}

// Analyses pages through the user's analyses using an RFC3339 cursor.
func (a *analyzer) Analyses(ctx context.Context,
	userID domain.UserID,
	status domain.AnalysisStatus,
	cursor string,
	limit uint) ([]domain.Analysis, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := a.storage.UserAnalyses(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user analyses: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Analyses, next, nil
}

func (a *analyzer) Result(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) (*domain.Analysis, error) {
	res, err := a.storage.AnalysisByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get analysis: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "analysis not found")
	}

	return res, nil
}

// Delete soft-deletes the analysis. The job is left alone since other
// analyses of the same source may depend on it.
func (a *analyzer) Delete(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) error {
	res, err := a.storage.DeleteAnalysis(ctx, userID, ID)
	if err != nil {
		return fmt.Errorf("could not delete analysis: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "analysis not found")
	}

	return nil
}

// Analyze runs pylint on the source behind hash and completes every pending
// analysis of it. A failed run is recorded on the analyses, which become
// failed once they used up MaxAttempts, and the error is returned so the job
// is retried. ErrConflict means nothing is left to analyse.
func (a *analyzer) Analyze(ctx context.Context, hash string) error {
	pending, err := a.storage.PendingAnalysisByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("could not get pending analysis: %w", err)
	}
	if pending == nil {
		return serrors.With(serrors.ErrConflict, "no pending analyses for source")
	}

	report, runErr := a.runner.Run(ctx, pending.FileName, pending.Source)
	if runErr != nil {
		msg := runErr.Error()
		if err := a.storage.UpdatePendingAnalysesByHash(ctx, hash, storage.AnalysisUpdates{
			Status:      domain.AnalysisStatusFailed,
			LastError:   &msg,
			MaxAttempts: a.options.MaxAttempts,
		}); err != nil {
			logger.Error(ctx, "could not record failed analysis", zap.Error(err))
		}

		return fmt.Errorf("could not run pylint: %w", runErr)
	}

	noError := ""
	if err := a.storage.UpdatePendingAnalysesByHash(ctx, hash, storage.AnalysisUpdates{
		Status:    domain.AnalysisStatusCompleted,
		Report:    report,
		LastError: &noError,
	}); err != nil {
		return fmt.Errorf("could not store report: %w", err)
	}

	logger.Info(ctx, "source analysed",
		zap.Int("messages", len(report.Messages)),
		zap.Int("errors", report.ErrorCount()))

	return nil
}
