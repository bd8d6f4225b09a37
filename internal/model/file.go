package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageSize is the fixed number of files per listing page.
const PageSize = 20

// FileStore defines persistence operations for files and folders.
type FileStore interface {
	Create(ctx context.Context, file File) (File, error)
	GetByID(ctx context.Context, id uuid.UUID) (File, error)
	GetByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (File, error)
	// SetPublic updates is_public and returns the updated row in one atomic statement.
	SetPublic(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, public bool) (File, error)
	// List returns files of ownerID under parent, newest first.
	List(ctx context.Context, ownerID uuid.UUID, parent Parent, offset, limit int) ([]File, error)
	Count(ctx context.Context) (int64, error)
}

// File is a folder, file or image owned by a user.
type File struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Type      FileType
	Parent    Parent
	IsPublic  bool
	LocalPath string
	CreatedAt time.Time
}

// FileType enumerates file kinds.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// Valid reports whether t is a known kind.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// HasContent reports whether files of this kind carry a blob.
func (t FileType) HasContent() bool {
	return t == FileTypeFile || t == FileTypeImage
}

// Parent is either the root of a user's hierarchy or a reference to a folder.
// The zero value is root.
type Parent struct {
	id  uuid.UUID
	set bool
}

// RootParent returns the root sentinel.
func RootParent() Parent {
	return Parent{}
}

// ParentOf references the folder with the given id.
func ParentOf(id uuid.UUID) Parent {
	return Parent{id: id, set: true}
}

// IsRoot reports whether p is the root sentinel.
func (p Parent) IsRoot() bool {
	return !p.set
}

// ID returns the folder id and false for root.
func (p Parent) ID() (uuid.UUID, bool) {
	return p.id, p.set
}

func (p Parent) String() string {
	if !p.set {
		return "root"
	}
	return p.id.String()
}
