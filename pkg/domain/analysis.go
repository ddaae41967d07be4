package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// AnalysisID uniquely identifies a persisted analysis.
type AnalysisID uuid.UUID

// String returns the canonical uuid representation.
func (a AnalysisID) String() string { return uuid.UUID(a).String() }

// AnalysisStatus is the lifecycle state of an analysis.
type AnalysisStatus string

const (
	// AnalysisStatusPending means the analysis is queued and has no report yet.
	AnalysisStatusPending AnalysisStatus = "PENDING"
	// AnalysisStatusCompleted means pylint ran and Report is set.
	AnalysisStatusCompleted AnalysisStatus = "COMPLETED"
	// AnalysisStatusFailed means pylint could not analyse the source after all attempts.
	AnalysisStatusFailed AnalysisStatus = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s AnalysisStatus) Valid() bool {
	switch s {
	case AnalysisStatusPending, AnalysisStatusCompleted, AnalysisStatusFailed:
		return true
	default:
		return false
	}
}

// DefaultFileName is used when a client does not name its source file.
const DefaultFileName = "main.py"

// SourceHash returns the content key used to deduplicate analyses and cache reports.
func SourceHash(fileName, source string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(fileName+"\x00"+source))
}

// Analysis is a lint request submitted through the HTTP API and its current state.
type Analysis struct {
	ID     AnalysisID `json:"id"`
	UserID UserID     `json:"userId"`

	FileName   string         `json:"fileName"`
	Source     string         `json:"source"`
	SourceHash string         `json:"sourceHash"`
	Status     AnalysisStatus `json:"status"`
	// Report is nil until the analysis completes.
	Report *Report `json:"report,omitempty"`

	Attempts  uint   `json:"attempts"`
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
