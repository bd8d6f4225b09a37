package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/files-manager/internal/model"
)

// BlobStore is a mock of model.BlobStore.
type BlobStore struct {
	mock.Mock
}

var _ model.BlobStore = (*BlobStore)(nil)

func NewBlobStore(t testingT) *BlobStore {
	m := &BlobStore{}
	register(&m.Mock, t)
	return m
}

func (_m *BlobStore) MkdirAll(ctx context.Context, dir string) error {
	return _m.Called(ctx, dir).Error(0)
}

func (_m *BlobStore) Write(ctx context.Context, path string, data []byte) error {
	return _m.Called(ctx, path, data).Error(0)
}

func (_m *BlobStore) Read(ctx context.Context, path string) ([]byte, error) {
	ret := _m.Called(ctx, path)
	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}
	return data, ret.Error(1)
}
