// Package storage selects the blob store backend.
package storage

import (
	"fmt"

	"github.com/dtroode/files-manager/internal/config"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/storage/local"
	"github.com/dtroode/files-manager/internal/storage/minio"
)

const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// New returns the blob store configured by cfg.Backend.
func New(cfg config.Storage) (model.BlobStore, error) {
	switch cfg.Backend {
	case BackendLocal:
		return local.NewStore(), nil
	case BackendMinio:
		client, err := minio.Connect(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return minio.NewClient(client, cfg.Minio.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
