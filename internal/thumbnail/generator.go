// Package thumbnail derives fixed-width variants of uploaded images.
package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

var (
	ErrMissingFileID = errors.New("missing fileId")
	ErrMissingUserID = errors.New("missing userId")
	ErrFileNotFound  = errors.New("file not found")
)

// Generator resizes an image to every width in model.ThumbnailWidths.
type Generator struct {
	fileStore model.FileStore
	blobStore model.BlobStore
	widths    []int
	logger    *logger.Logger
}

func NewGenerator(fileStore model.FileStore, blobStore model.BlobStore, logger *logger.Logger) *Generator {
	return &Generator{
		fileStore: fileStore,
		blobStore: blobStore,
		widths:    model.ThumbnailWidths,
		logger:    logger,
	}
}

// Path returns where the variant of width is stored for an original at path.
func Path(path string, width int) string {
	return fmt.Sprintf("%s_%d", path, width)
}

// Process generates every variant of job's image. Variants written before a
// failure are left in place.
func (g *Generator) Process(ctx context.Context, job model.ThumbnailJob) error {
	if job.FileID == uuid.Nil {
		return ErrMissingFileID
	}
	if job.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	file, err := g.fileStore.GetByID(ctx, job.FileID)
	if errors.Is(err, model.ErrNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	original, err := g.blobStore.Read(ctx, file.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to read original: %w", err)
	}

	src, format, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	outFormat, err := imaging.FormatFromExtension(format)
	if err != nil {
		outFormat = imaging.PNG
	}

	for _, width := range g.widths {
		data, err := resize(src, width, outFormat)
		if err != nil {
			return fmt.Errorf("failed to resize to %d: %w", width, err)
		}

		if err := g.blobStore.Write(ctx, Path(file.LocalPath, width), data); err != nil {
			return fmt.Errorf("failed to write %d variant: %w", width, err)
		}

		g.logger.Debug("Thumbnail generator: variant written",
			"file_id", file.ID,
			"width", width)
	}

	return nil
}

func resize(src image.Image, width int, format imaging.Format) ([]byte, error) {
	dst := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
