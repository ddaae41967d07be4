package storage

import (
	"context"
	"pylintd/pkg/domain"
	"time"
)

// AnalysisUpdates describes the fields applied to analyses by an update. Only
// non-nil pointer fields and a non-empty Status are written.
type AnalysisUpdates struct {
	// Status is the new status; empty keeps the current one.
	Status domain.AnalysisStatus
	// Report replaces the stored report.
	Report *domain.Report
	// LastError sets the last error text; an empty string clears it.
	LastError *string
	// MaxAttempts guards a Failed status: the row only becomes Failed once its
	// attempts after the increment reach MaxAttempts. A value <= 0 disables
	// the guard.
	MaxAttempts int
	// OnlyPending restricts UpdateAnalysisByID to rows that are still pending.
	OnlyPending bool
}

// UserAnalyses is one page of a user's analyses.
type UserAnalyses struct {
	Analyses []domain.Analysis
	// NextCursor is the creation time to continue from, nil on the last page.
	NextCursor *time.Time
}

// AnalysisStorage persists analyses. Soft-deleted rows are invisible to every
// method except LastCompletedAnalysisByHash.
type AnalysisStorage interface {
	// StoreAnalyses inserts analyses and returns them with generated fields set.
	StoreAnalyses(ctx context.Context, analyses ...domain.Analysis) ([]domain.Analysis, error)
	// UpdatePendingAnalysesByHash applies updates to every pending analysis of
	// the source hash, incrementing attempts and updated_at.
	UpdatePendingAnalysesByHash(ctx context.Context, hash string, updates AnalysisUpdates) error
	// PendingAnalysisByHash returns the oldest pending analysis of the source
	// hash across all users, or nil when none is left.
	PendingAnalysisByHash(ctx context.Context, hash string) (*domain.Analysis, error)
	// UpdateAnalysisByID updates one analysis and returns the new row, or nil
	// when it does not exist.
	UpdateAnalysisByID(ctx context.Context, ID domain.AnalysisID, updates AnalysisUpdates) (*domain.Analysis, error)
	// DeleteAnalysis soft-deletes the user's analysis and returns it, or nil
	// when it was not found.
	DeleteAnalysis(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) (*domain.Analysis, error)
	// UserAnalyses returns the user's analyses created before cursor (zero
	// means now), newest first, optionally filtered by status.
	UserAnalyses(ctx context.Context,
		userID domain.UserID,
		status domain.AnalysisStatus,
		cursor time.Time,
		limit uint) (UserAnalyses, error)
	// AnalysisByID returns the user's analysis, or nil when not found.
	AnalysisByID(ctx context.Context, userID domain.UserID, ID domain.AnalysisID) (*domain.Analysis, error)
	// LastCompletedAnalysisByHash returns the newest completed analysis of the
	// source hash across all users, deleted or not, or nil.
	LastCompletedAnalysisByHash(ctx context.Context, hash string) (*domain.Analysis, error)
}
