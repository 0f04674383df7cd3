package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. Inside a transaction
	// the job only becomes visible on commit. It returns false when a unique
	// job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
