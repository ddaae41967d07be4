package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same store as the analyses, so
// that a job and the rows it works on are committed together.
//
//	added, err := tx.AddJob(ctx, analyzer.JobArgs{SourceHash: hash}, nil)
type JobStorage interface {
	// AddJob enqueues a job. It returns false when a unique job with the same
	// arguments already exists and nothing was inserted.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
