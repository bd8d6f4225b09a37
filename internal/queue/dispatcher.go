package queue

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/metrics"
	"github.com/dtroode/files-manager/internal/model"
)

const (
	defaultBufferSize     = 256
	defaultEnqueueTimeout = 5 * time.Second
)

// Dispatcher publishes jobs in the background so request handlers never wait on the broker.
// Enqueue failures are logged and counted, never returned to the caller.
type Dispatcher struct {
	queue   model.JobQueue
	logger  *logger.Logger
	timeout time.Duration

	jobs chan any
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts the background publishing goroutine.
func NewDispatcher(queue model.JobQueue, logger *logger.Logger) *Dispatcher {
	return newDispatcher(queue, logger, defaultBufferSize, defaultEnqueueTimeout)
}

func newDispatcher(queue model.JobQueue, logger *logger.Logger, bufferSize int, timeout time.Duration) *Dispatcher {
	d := &Dispatcher{
		queue:   queue,
		logger:  logger,
		timeout: timeout,
		jobs:    make(chan any, bufferSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// DispatchThumbnail schedules a thumbnail job.
func (d *Dispatcher) DispatchThumbnail(job model.ThumbnailJob) {
	d.dispatch(job)
}

// DispatchWelcome schedules a welcome job.
func (d *Dispatcher) DispatchWelcome(job model.WelcomeJob) {
	d.dispatch(job)
}

func (d *Dispatcher) dispatch(job any) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Dispatcher: dropping job after shutdown", "job", job)
		metrics.JobsDropped.Inc()
		return
	}

	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("Dispatcher: buffer full, dropping job", "job", job)
		metrics.JobsDropped.Inc()
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for job := range d.jobs {
		d.publish(job)
	}
}

func (d *Dispatcher) publish(job any) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	var (
		err     error
		jobType string
	)
	switch j := job.(type) {
	case model.ThumbnailJob:
		jobType = TypeThumbnail
		err = d.queue.EnqueueThumbnail(ctx, j)
	case model.WelcomeJob:
		jobType = TypeWelcome
		err = d.queue.EnqueueWelcome(ctx, j)
	}

	if err != nil {
		d.logger.Error("Dispatcher: failed to enqueue job",
			"type", jobType,
			"job", job,
			"error", err.Error())
		metrics.JobStates.WithLabelValues(jobType, string(model.JobStateFailed)).Inc()
		return
	}

	d.logger.Debug("Dispatcher: job queued", "type", jobType, "job", job)
	metrics.JobStates.WithLabelValues(jobType, string(model.JobStateQueued)).Inc()
}

// Close stops accepting jobs and waits for buffered ones to be published or ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
