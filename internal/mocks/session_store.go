package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/model"
)

// SessionStore is a mock of model.SessionStore.
type SessionStore struct {
	mock.Mock
}

var _ model.SessionStore = (*SessionStore)(nil)

func NewSessionStore(t testingT) *SessionStore {
	m := &SessionStore{}
	register(&m.Mock, t)
	return m
}

func (_m *SessionStore) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return _m.Called(ctx, token, userID, ttl).Error(0)
}

func (_m *SessionStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (_m *SessionStore) Delete(ctx context.Context, token string) error {
	return _m.Called(ctx, token).Error(0)
}

func (_m *SessionStore) Ping(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *SessionStore) Close() error {
	return _m.Called().Error(0)
}
