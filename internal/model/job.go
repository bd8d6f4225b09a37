package model

import (
	"context"

	"github.com/google/uuid"
)

// ThumbnailWidths are the target widths of generated image variants.
var ThumbnailWidths = []int{500, 250, 100}

// JobQueue enqueues background jobs for the worker process.
type JobQueue interface {
	EnqueueThumbnail(ctx context.Context, job ThumbnailJob) error
	EnqueueWelcome(ctx context.Context, job WelcomeJob) error
	Close() error
}

// ThumbnailJob asks the worker to derive resized variants of an uploaded image.
type ThumbnailJob struct {
	UserID uuid.UUID `json:"userId"`
	FileID uuid.UUID `json:"fileId"`
}

// WelcomeJob runs side effects after a user registers.
type WelcomeJob struct {
	UserID uuid.UUID `json:"userId"`
}

// JobState is the lifecycle state of a background job.
type JobState string

const (
	JobStateQueued     JobState = "queued"
	JobStateProcessing JobState = "processing"
	JobStateDone       JobState = "done"
	JobStateFailed     JobState = "failed"
)

// JobDispatcher hands jobs to the queue without blocking the caller.
type JobDispatcher interface {
	DispatchThumbnail(job ThumbnailJob)
	DispatchWelcome(job WelcomeJob)
}
