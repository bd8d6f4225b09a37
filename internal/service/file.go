package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// UploadParams is an unvalidated upload request.
type UploadParams struct {
	Name     string
	Type     string
	Parent   model.Parent
	IsPublic bool
	Data     string
}

type File struct {
	fileStore  model.FileStore
	blobStore  model.BlobStore
	dispatcher model.JobDispatcher
	root       string
	logger     *logger.Logger
}

func NewFile(
	fileStore model.FileStore,
	blobStore model.BlobStore,
	dispatcher model.JobDispatcher,
	root string,
	logger *logger.Logger,
) *File {
	return &File{
		fileStore:  fileStore,
		blobStore:  blobStore,
		dispatcher: dispatcher,
		root:       root,
		logger:     logger,
	}
}

// Upload validates params and creates a folder or a file.
func (s *File) Upload(ctx context.Context, ownerID uuid.UUID, params UploadParams) (model.File, error) {
	if params.Name == "" {
		return model.File{}, apierrors.NewErrMissing("name")
	}

	kind := model.FileType(params.Type)
	if !kind.Valid() {
		return model.File{}, apierrors.NewErrMissing("type")
	}

	if kind == model.FileTypeFolder {
		return s.CreateFolder(ctx, ownerID, params.Name, params.Parent, params.IsPublic)
	}

	if params.Data == "" {
		return model.File{}, apierrors.NewErrMissing("data")
	}

	return s.CreateFile(ctx, ownerID, params.Name, kind, params.Parent, params.IsPublic, params.Data)
}

func (s *File) CreateFolder(ctx context.Context, ownerID uuid.UUID, name string, parent model.Parent, isPublic bool) (model.File, error) {
	if err := s.checkParent(ctx, ownerID, parent); err != nil {
		return model.File{}, err
	}

	folder, err := s.fileStore.Create(ctx, model.File{
		ID:        uuid.Must(uuid.NewV7()),
		OwnerID:   ownerID,
		Name:      name,
		Type:      model.FileTypeFolder,
		Parent:    parent,
		IsPublic:  isPublic,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("File service: failed to create folder",
			"owner_id", ownerID,
			"error", err.Error())
		return model.File{}, fmt.Errorf("failed to create folder: %w", err)
	}

	s.logger.Info("File service: folder created",
		"owner_id", ownerID,
		"file_id", folder.ID,
		"parent_id", parent.String())

	return folder, nil
}

// CreateFile stores the decoded content, then commits the metadata row.
// For images a thumbnail job is dispatched after the commit.
func (s *File) CreateFile(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
	kind model.FileType,
	parent model.Parent,
	isPublic bool,
	contentBase64 string,
) (model.File, error) {
	if !kind.HasContent() {
		return model.File{}, apierrors.NewErrMissing("type")
	}

	content, err := decodeContent(contentBase64)
	if err != nil {
		return model.File{}, apierrors.NewErrInvalidData()
	}

	if err := s.checkParent(ctx, ownerID, parent); err != nil {
		return model.File{}, err
	}

	if err := s.blobStore.MkdirAll(ctx, s.root); err != nil {
		s.logger.Error("File service: failed to prepare storage",
			"root", s.root,
			"error", err.Error())
		return model.File{}, fmt.Errorf("failed to prepare storage: %w", err)
	}

	localPath := filepath.Join(s.root, uuid.NewString())
	if err := s.blobStore.Write(ctx, localPath, content); err != nil {
		s.logger.Error("File service: failed to write content",
			"path", localPath,
			"error", err.Error())
		return model.File{}, fmt.Errorf("failed to write content: %w", err)
	}

	file, err := s.fileStore.Create(ctx, model.File{
		ID:        uuid.Must(uuid.NewV7()),
		OwnerID:   ownerID,
		Name:      name,
		Type:      kind,
		Parent:    parent,
		IsPublic:  isPublic,
		LocalPath: localPath,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("File service: failed to create file",
			"owner_id", ownerID,
			"path", localPath,
			"error", err.Error())
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	if file.Type == model.FileTypeImage {
		s.dispatcher.DispatchThumbnail(model.ThumbnailJob{UserID: ownerID, FileID: file.ID})
	}

	s.logger.Info("File service: file created",
		"owner_id", ownerID,
		"file_id", file.ID,
		"type", file.Type,
		"size", len(content))

	return file, nil
}

func (s *File) checkParent(ctx context.Context, ownerID uuid.UUID, parent model.Parent) error {
	parentID, ok := parent.ID()
	if !ok {
		return nil
	}

	folder, err := s.fileStore.GetByIDAndOwner(ctx, parentID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrParentNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to get parent: %w", err)
	}

	if folder.Type != model.FileTypeFolder {
		return apierrors.NewErrParentNotFolder()
	}

	return nil
}

// SetVisibility publishes or unpublishes a file owned by ownerID.
func (s *File) SetVisibility(ctx context.Context, ownerID, fileID uuid.UUID, public bool) (model.File, error) {
	file, err := s.fileStore.SetPublic(ctx, fileID, ownerID, public)
	if errors.Is(err, model.ErrNotFound) {
		return model.File{}, apierrors.NewErrNotFound()
	}
	if err != nil {
		return model.File{}, fmt.Errorf("failed to set visibility: %w", err)
	}

	s.logger.Info("File service: visibility changed",
		"file_id", fileID,
		"is_public", public)

	return file, nil
}

func (s *File) GetByID(ctx context.Context, ownerID, fileID uuid.UUID) (model.File, error) {
	file, err := s.fileStore.GetByIDAndOwner(ctx, fileID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.File{}, apierrors.NewErrNotFound()
	}
	if err != nil {
		return model.File{}, fmt.Errorf("failed to get file: %w", err)
	}
	return file, nil
}

// List returns one page of ownerID's files under parent, newest first.
func (s *File) List(ctx context.Context, ownerID uuid.UUID, parent model.Parent, page int) ([]model.File, error) {
	if page < 0 {
		page = 0
	}
	// Offsets past math.MaxInt cannot hold rows.
	if page > math.MaxInt/model.PageSize {
		return []model.File{}, nil
	}

	files, err := s.fileStore.List(ctx, ownerID, parent, page*model.PageSize, model.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// decodeContent accepts padded and unpadded standard base64.
func decodeContent(data string) ([]byte, error) {
	content, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return content, nil
	}
	return base64.RawStdEncoding.DecodeString(data)
}
