package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/model"
)

// JobQueue is a mock of model.JobQueue.
type JobQueue struct {
	mock.Mock
}

var _ model.JobQueue = (*JobQueue)(nil)

func NewJobQueue(t testingT) *JobQueue {
	m := &JobQueue{}
	register(&m.Mock, t)
	return m
}

func (_m *JobQueue) EnqueueThumbnail(ctx context.Context, job model.ThumbnailJob) error {
	return _m.Called(ctx, job).Error(0)
}

func (_m *JobQueue) EnqueueWelcome(ctx context.Context, job model.WelcomeJob) error {
	return _m.Called(ctx, job).Error(0)
}

func (_m *JobQueue) Close() error {
	return _m.Called().Error(0)
}

// JobDispatcher is a mock of model.JobDispatcher.
type JobDispatcher struct {
	mock.Mock
}

var _ model.JobDispatcher = (*JobDispatcher)(nil)

func NewJobDispatcher(t testingT) *JobDispatcher {
	m := &JobDispatcher{}
	register(&m.Mock, t)
	return m
}

func (_m *JobDispatcher) DispatchThumbnail(job model.ThumbnailJob) {
	_m.Called(job)
}

func (_m *JobDispatcher) DispatchWelcome(job model.WelcomeJob) {
	_m.Called(job)
}

// TokenGenerator is a mock of model.TokenGenerator.
type TokenGenerator struct {
	mock.Mock
}

var _ model.TokenGenerator = (*TokenGenerator)(nil)

func NewTokenGenerator(t testingT) *TokenGenerator {
	m := &TokenGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenGenerator) Generate() (string, error) {
	ret := _m.Called()
	return ret.String(0), ret.Error(1)
}
