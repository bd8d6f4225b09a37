package model

import "context"

// BlobStore is a path-addressed byte store.
type BlobStore interface {
	// MkdirAll creates the directory (or bucket) if absent. Already existing is not an error.
	MkdirAll(ctx context.Context, dir string) error
	Write(ctx context.Context, path string, data []byte) error
	// Read returns ErrNotFound when nothing is stored at path.
	Read(ctx context.Context, path string) ([]byte, error)
}
