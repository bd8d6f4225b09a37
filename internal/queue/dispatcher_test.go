package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/files-manager/internal/metrics"
	"github.com/dtroode/files-manager/internal/mocks"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/testutil"
)

func TestDispatcher_PublishesJobs(t *testing.T) {
	q := mocks.NewJobQueue(t)
	thumb := model.ThumbnailJob{UserID: uuid.New(), FileID: uuid.New()}
	welcome := model.WelcomeJob{UserID: uuid.New()}

	q.On("EnqueueThumbnail", mock.Anything, thumb).Return(nil).Once()
	q.On("EnqueueWelcome", mock.Anything, welcome).Return(nil).Once()

	d := NewDispatcher(q, testutil.MakeNoopLogger())
	d.DispatchThumbnail(thumb)
	d.DispatchWelcome(welcome)

	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_EnqueueFailureIsSwallowed(t *testing.T) {
	q := mocks.NewJobQueue(t)
	job := model.ThumbnailJob{UserID: uuid.New(), FileID: uuid.New()}

	q.On("EnqueueThumbnail", mock.Anything, job).Return(errors.New("redis down")).Once()

	failedBefore := promtestutil.ToFloat64(metrics.JobStates.WithLabelValues(TypeThumbnail, string(model.JobStateFailed)))

	d := NewDispatcher(q, testutil.MakeNoopLogger())
	d.DispatchThumbnail(job)
	require.NoError(t, d.Close(context.Background()))

	failedAfter := promtestutil.ToFloat64(metrics.JobStates.WithLabelValues(TypeThumbnail, string(model.JobStateFailed)))
	assert.Equal(t, failedBefore+1, failedAfter)
}

func TestDispatcher_EnqueueUsesOwnDeadline(t *testing.T) {
	q := mocks.NewJobQueue(t)
	job := model.WelcomeJob{UserID: uuid.New()}

	q.On("EnqueueWelcome", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= time.Second && ctx.Err() == nil
	}), job).Return(nil).Once()

	d := newDispatcher(q, testutil.MakeNoopLogger(), 4, time.Second)
	d.DispatchWelcome(job)
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	q := mocks.NewJobQueue(t)
	release := make(chan struct{})
	first := model.WelcomeJob{UserID: uuid.New()}

	q.On("EnqueueWelcome", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	droppedBefore := promtestutil.ToFloat64(metrics.JobsDropped)

	d := newDispatcher(q, testutil.MakeNoopLogger(), 1, time.Second)
	d.DispatchWelcome(first)

	// Wait until the goroutine picked up the first job and blocks on the queue.
	require.Eventually(t, func() bool { return len(d.jobs) == 0 }, time.Second, 5*time.Millisecond)

	d.DispatchWelcome(model.WelcomeJob{UserID: uuid.New()})
	d.DispatchWelcome(model.WelcomeJob{UserID: uuid.New()})

	assert.Equal(t, droppedBefore+1, promtestutil.ToFloat64(metrics.JobsDropped))

	close(release)
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	q := mocks.NewJobQueue(t)
	d := NewDispatcher(q, testutil.MakeNoopLogger())
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.DispatchWelcome(model.WelcomeJob{UserID: uuid.New()})
	})
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcher_CloseTimeout(t *testing.T) {
	q := mocks.NewJobQueue(t)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	q.On("EnqueueWelcome", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Maybe()

	d := newDispatcher(q, testutil.MakeNoopLogger(), 1, time.Second)
	d.DispatchWelcome(model.WelcomeJob{UserID: uuid.New()})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}
