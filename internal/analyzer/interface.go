package analyzer

import (
	"context"
	"pylintd/pkg/domain"
)

// Analyzer manages persisted analyses for the HTTP API and runs them for the
// background worker.
//
//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	// Submit stores a pending analysis and enqueues the job that runs it.
	Submit(ctx context.Context, userID domain.UserID, fileName, source string) (*domain.Analysis, error)
	// Analyses returns a page of the user's analyses and the cursor of the next page.
	Analyses(ctx context.Context,
		userID domain.UserID,
		status domain.AnalysisStatus,
		cursor string,
		limit uint) ([]domain.Analysis, string, error)
	// Result returns one of the user's analyses.
	Result(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) (*domain.Analysis, error)
	// Delete soft-deletes one of the user's analyses.
	Delete(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) error
	// Analyze runs pylint for the pending analyses of a source hash.
	Analyze(ctx context.Context, hash string) error
}
