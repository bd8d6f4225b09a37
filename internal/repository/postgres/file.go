package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

const fileColumns = `id, owner_id, parent_id, name, type, is_public, local_path, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (model.File, error) {
	var (
		file      model.File
		parentID  uuid.NullUUID
		localPath sql.NullString
		fileType  string
	)

	err := row.Scan(
		&file.ID, &file.OwnerID, &parentID, &file.Name, &fileType,
		&file.IsPublic, &localPath, &file.CreatedAt,
	)
	if err != nil {
		return model.File{}, err
	}

	file.Type = model.FileType(fileType)
	file.LocalPath = localPath.String
	if parentID.Valid {
		file.Parent = model.ParentOf(parentID.UUID)
	} else {
		file.Parent = model.RootParent()
	}

	return file, nil
}

func parentArg(p model.Parent) uuid.NullUUID {
	id, ok := p.ID()
	return uuid.NullUUID{UUID: id, Valid: ok}
}

func localPathArg(path string) sql.NullString {
	return sql.NullString{String: path, Valid: path != ""}
}

func (r *FileRepository) Create(ctx context.Context, file model.File) (model.File, error) {
	query := `INSERT INTO files (` + fileColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRowContext(ctx, query,
		file.ID, file.OwnerID, parentArg(file.Parent), file.Name, string(file.Type),
		file.IsPublic, localPathArg(file.LocalPath), file.CreatedAt,
	))
	if err != nil {
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return saved, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	file, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file by id: %w", err)
	}

	return file, nil
}

func (r *FileRepository) GetByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`

	file, err := scanFile(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file by id and owner: %w", err)
	}

	return file, nil
}

func (r *FileRepository) SetPublic(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, public bool) (model.File, error) {
	query := `UPDATE files SET is_public = $3 WHERE id = $1 AND owner_id = $2 RETURNING ` + fileColumns

	file, err := scanFile(r.db.QueryRowContext(ctx, query, id, ownerID, public))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to update file visibility: %w", err)
	}

	return file, nil
}

func (r *FileRepository) List(ctx context.Context, ownerID uuid.UUID, parent model.Parent, offset, limit int) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
			  WHERE owner_id = $1 AND parent_id IS NOT DISTINCT FROM $2
			  ORDER BY id DESC
			  LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, ownerID, parentArg(parent), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	files := make([]model.File, 0, limit)
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return files, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}
