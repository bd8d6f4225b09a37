package router

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

var (
	_ model.UserStore     = (*memUserStore)(nil)
	_ model.FileStore     = (*memFileStore)(nil)
	_ model.JobDispatcher = (*recordingDispatcher)(nil)
)

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type memFileStore struct {
	mu    sync.Mutex
	files map[uuid.UUID]model.File
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: make(map[uuid.UUID]model.File)}
}

func (s *memFileStore) Create(_ context.Context, file model.File) (model.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[file.ID] = file
	return file, nil
}

func (s *memFileStore) GetByID(_ context.Context, id uuid.UUID) (model.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return model.File{}, model.ErrNotFound
	}
	return f, nil
}

func (s *memFileStore) GetByIDAndOwner(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (model.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok || f.OwnerID != ownerID {
		return model.File{}, model.ErrNotFound
	}
	return f, nil
}

func (s *memFileStore) SetPublic(_ context.Context, id uuid.UUID, ownerID uuid.UUID, public bool) (model.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok || f.OwnerID != ownerID {
		return model.File{}, model.ErrNotFound
	}
	f.IsPublic = public
	s.files[id] = f
	return f, nil
}

func (s *memFileStore) List(_ context.Context, ownerID uuid.UUID, parent model.Parent, offset, limit int) ([]model.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.File
	for _, f := range s.files {
		if f.OwnerID == ownerID && f.Parent == parent {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memFileStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.files)), nil
}

type recordingDispatcher struct {
	mu         sync.Mutex
	thumbnails []model.ThumbnailJob
	welcomes   []model.WelcomeJob
}

func (d *recordingDispatcher) DispatchThumbnail(job model.ThumbnailJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.thumbnails = append(d.thumbnails, job)
}

func (d *recordingDispatcher) DispatchWelcome(job model.WelcomeJob) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.welcomes = append(d.welcomes, job)
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }
