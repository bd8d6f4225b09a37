package service

import (
	"context"
	"fmt"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// Pinger reports backend liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AppStatus reports which backends are reachable.
type AppStatus struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Healthy reports whether every backend is reachable.
func (s AppStatus) Healthy() bool {
	return s.Redis && s.DB
}

// AppStats holds entity counts.
type AppStats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

type App struct {
	sessions  Pinger
	db        Pinger
	userStore model.UserStore
	fileStore model.FileStore
	logger    *logger.Logger
}

func NewApp(sessions Pinger, db Pinger, userStore model.UserStore, fileStore model.FileStore, logger *logger.Logger) *App {
	return &App{
		sessions:  sessions,
		db:        db,
		userStore: userStore,
		fileStore: fileStore,
		logger:    logger,
	}
}

func (a *App) Status(ctx context.Context) AppStatus {
	status := AppStatus{Redis: true, DB: true}

	if err := a.sessions.Ping(ctx); err != nil {
		a.logger.Warn("App service: session store unreachable", "error", err.Error())
		status.Redis = false
	}
	if err := a.db.Ping(ctx); err != nil {
		a.logger.Warn("App service: database unreachable", "error", err.Error())
		status.DB = false
	}

	return status
}

func (a *App) Stats(ctx context.Context) (AppStats, error) {
	users, err := a.userStore.Count(ctx)
	if err != nil {
		return AppStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	files, err := a.fileStore.Count(ctx)
	if err != nil {
		return AppStats{}, fmt.Errorf("failed to count files: %w", err)
	}

	return AppStats{Users: users, Files: files}, nil
}
