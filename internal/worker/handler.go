// Package worker runs background jobs taken from the asynq queue.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/metrics"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/queue"
)

var ErrUserNotFound = errors.New("user not found")

// ThumbnailProcessor generates image variants.
type ThumbnailProcessor interface {
	Process(ctx context.Context, job model.ThumbnailJob) error
}

// Handler adapts asynq tasks to job processing. Failed jobs are never retried.
type Handler struct {
	thumbnails ThumbnailProcessor
	userStore  model.UserStore
	logger     *logger.Logger
}

func NewHandler(thumbnails ThumbnailProcessor, userStore model.UserStore, logger *logger.Logger) *Handler {
	return &Handler{
		thumbnails: thumbnails,
		userStore:  userStore,
		logger:     logger,
	}
}

// Mux routes task types to handler methods.
func (h *Handler) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeThumbnail, h.HandleThumbnail)
	mux.HandleFunc(queue.TypeWelcome, h.HandleWelcome)
	return mux
}

func (h *Handler) HandleThumbnail(ctx context.Context, task *asynq.Task) error {
	var job model.ThumbnailJob
	if err := json.Unmarshal(task.Payload(), &job); err != nil {
		return h.fail(task.Type(), fmt.Errorf("invalid payload: %w", err))
	}

	h.transition(task.Type(), model.JobStateProcessing, "file_id", job.FileID)

	if err := h.thumbnails.Process(ctx, job); err != nil {
		return h.fail(task.Type(), err, "file_id", job.FileID)
	}

	h.transition(task.Type(), model.JobStateDone, "file_id", job.FileID)
	return nil
}

func (h *Handler) HandleWelcome(ctx context.Context, task *asynq.Task) error {
	var job model.WelcomeJob
	if err := json.Unmarshal(task.Payload(), &job); err != nil {
		return h.fail(task.Type(), fmt.Errorf("invalid payload: %w", err))
	}

	h.transition(task.Type(), model.JobStateProcessing, "user_id", job.UserID)

	if job.UserID == uuid.Nil {
		return h.fail(task.Type(), errors.New("missing userId"))
	}

	user, err := h.userStore.GetByID(ctx, job.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return h.fail(task.Type(), ErrUserNotFound, "user_id", job.UserID)
	}
	if err != nil {
		return h.fail(task.Type(), fmt.Errorf("failed to get user: %w", err), "user_id", job.UserID)
	}

	h.logger.Info(fmt.Sprintf("Welcome %s!", user.Email))

	h.transition(task.Type(), model.JobStateDone, "user_id", job.UserID)
	return nil
}

func (h *Handler) transition(taskType string, state model.JobState, args ...any) {
	h.logger.Debug("Worker: job "+string(state), append([]any{"type", taskType}, args...)...)
	metrics.JobStates.WithLabelValues(taskType, string(state)).Inc()
}

func (h *Handler) fail(taskType string, err error, args ...any) error {
	h.logger.Error("Worker: job failed", append([]any{"type", taskType, "error", err.Error()}, args...)...)
	metrics.JobStates.WithLabelValues(taskType, string(model.JobStateFailed)).Inc()
	return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
}
