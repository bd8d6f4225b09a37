package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// Content serves file bytes subject to visibility rules.
type Content struct {
	fileStore model.FileStore
	blobStore model.BlobStore
	logger    *logger.Logger
}

func NewContent(fileStore model.FileStore, blobStore model.BlobStore, logger *logger.Logger) *Content {
	return &Content{
		fileStore: fileStore,
		blobStore: blobStore,
		logger:    logger,
	}
}

// Fetch returns the content of fileID. requester is uuid.Nil for anonymous callers.
// size selects a thumbnail variant and must be empty or one of model.ThumbnailWidths.
func (s *Content) Fetch(ctx context.Context, requester uuid.UUID, fileID uuid.UUID, size string) (model.Content, error) {
	file, err := s.fileStore.GetByID(ctx, fileID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Content{}, apierrors.NewErrNotFound()
	}
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to get file: %w", err)
	}

	if file.Type == model.FileTypeFolder {
		return model.Content{}, apierrors.NewErrFolderHasNoContent()
	}

	// Private files are indistinguishable from missing ones for non-owners.
	if !file.IsPublic && requester != file.OwnerID {
		return model.Content{}, apierrors.NewErrNotFound()
	}

	path := file.LocalPath
	if size != "" {
		if !validSize(size) {
			return model.Content{}, apierrors.NewErrNotFound()
		}
		path = fmt.Sprintf("%s_%s", path, size)
	}

	data, err := s.blobStore.Read(ctx, path)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Content service: blob missing",
			"file_id", fileID,
			"size", size)
		return model.Content{}, apierrors.NewErrNotFound()
	}
	if err != nil {
		s.logger.Error("Content service: failed to read blob",
			"file_id", fileID,
			"error", err.Error())
		return model.Content{}, fmt.Errorf("failed to read content: %w", err)
	}

	return model.Content{
		Data:        data,
		ContentType: contentType(file.Name, data),
	}, nil
}

func validSize(size string) bool {
	width, err := strconv.Atoi(size)
	if err != nil || strconv.Itoa(width) != size {
		return false
	}
	return slices.Contains(model.ThumbnailWidths, width)
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}
