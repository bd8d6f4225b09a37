package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/model"
)

// FileStore is a mock of model.FileStore.
type FileStore struct {
	mock.Mock
}

var _ model.FileStore = (*FileStore)(nil)

func NewFileStore(t testingT) *FileStore {
	m := &FileStore{}
	register(&m.Mock, t)
	return m
}

func (_m *FileStore) Create(ctx context.Context, file model.File) (model.File, error) {
	ret := _m.Called(ctx, file)
	if rf, ok := ret.Get(0).(func(context.Context, model.File) (model.File, error)); ok {
		return rf(ctx, file)
	}
	return ret.Get(0).(model.File), ret.Error(1)
}

func (_m *FileStore) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.File), ret.Error(1)
}

func (_m *FileStore) GetByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.File, error) {
	ret := _m.Called(ctx, id, ownerID)
	return ret.Get(0).(model.File), ret.Error(1)
}

func (_m *FileStore) SetPublic(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, public bool) (model.File, error) {
	ret := _m.Called(ctx, id, ownerID, public)
	return ret.Get(0).(model.File), ret.Error(1)
}

func (_m *FileStore) List(ctx context.Context, ownerID uuid.UUID, parent model.Parent, offset, limit int) ([]model.File, error) {
	ret := _m.Called(ctx, ownerID, parent, offset, limit)
	var files []model.File
	if v := ret.Get(0); v != nil {
		files = v.([]model.File)
	}
	return files, ret.Error(1)
}

func (_m *FileStore) Count(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}
