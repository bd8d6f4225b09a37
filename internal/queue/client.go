package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/dtroode/files-manager/internal/model"
)

// enqueuer is the subset of *asynq.Client used for publishing.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

var _ model.JobQueue = (*Client)(nil)

// Client publishes jobs to the redis-backed asynq queue.
type Client struct {
	enq enqueuer
}

// NewClient connects to redis with the given options.
func NewClient(opt asynq.RedisClientOpt) *Client {
	return NewClientWithEnqueuer(asynq.NewClient(opt))
}

func NewClientWithEnqueuer(enq enqueuer) *Client {
	return &Client{enq: enq}
}

func (c *Client) EnqueueThumbnail(ctx context.Context, job model.ThumbnailJob) error {
	task, err := NewThumbnailTask(job)
	if err != nil {
		return err
	}
	return c.enqueue(ctx, task)
}

func (c *Client) EnqueueWelcome(ctx context.Context, job model.WelcomeJob) error {
	task, err := NewWelcomeTask(job)
	if err != nil {
		return err
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	if _, err := c.enq.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.enq.Close()
}
