package analyzer

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs is the river job that analyses every pending analysis of one source.
// Identical sources submitted within the unique period share a single job.
type JobArgs struct {
	SourceHash string `json:"sourceHash" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// Kind implements river.JobArgs.
func (JobArgs) Kind() string { return "AnalyzeSourceJob" }

// InsertOpts implements river.JobArgsWithInsertOpts.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			// a completed job still dedups so its report can be reused
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
