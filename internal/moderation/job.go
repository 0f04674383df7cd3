package moderation

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ContentCheckJobArgs asks a worker to scan a publication for dangerous
// content. At most one job per publication exists within the unique period.
type ContentCheckJobArgs struct {
	PublicationID string `json:"publicationId" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

func (args ContentCheckJobArgs) Kind() string { return "ContentCheckJob" }

func (args ContentCheckJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
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

// AutoCloseJobArgs triggers one auto-close sweep. It is scheduled
// periodically by the worker.
type AutoCloseJobArgs struct{}

func (AutoCloseJobArgs) Kind() string { return "AutoCloseJob" }

func (AutoCloseJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
