package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/dtroode/files-manager/internal/model"
)

// Task type names.
const (
	TypeThumbnail = "file:thumbnail"
	TypeWelcome   = "user:welcome"
)

// NewThumbnailTask encodes a thumbnail job.
func NewThumbnailTask(job model.ThumbnailJob) (*asynq.Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal thumbnail job: %w", err)
	}
	return asynq.NewTask(TypeThumbnail, payload, asynq.MaxRetry(0)), nil
}

// NewWelcomeTask encodes a welcome job.
func NewWelcomeTask(job model.WelcomeJob) (*asynq.Task, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal welcome job: %w", err)
	}
	return asynq.NewTask(TypeWelcome, payload, asynq.MaxRetry(0)), nil
}
