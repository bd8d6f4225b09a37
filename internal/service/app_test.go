package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/files-manager/internal/mocks"
	"github.com/dtroode/files-manager/internal/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestApp_Status(t *testing.T) {
	ctx := context.Background()
	up := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return assert.AnError })

	tests := []struct {
		name     string
		sessions Pinger
		db       Pinger
		want     AppStatus
	}{
		{name: "all up", sessions: up, db: up, want: AppStatus{Redis: true, DB: true}},
		{name: "redis down", sessions: down, db: up, want: AppStatus{Redis: false, DB: true}},
		{name: "db down", sessions: up, db: down, want: AppStatus{Redis: true, DB: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(tt.sessions, tt.db, mocks.NewUserStore(t), mocks.NewFileStore(t), testutil.MakeNoopLogger())
			got := app.Status(ctx)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Redis && tt.want.DB, got.Healthy())
		})
	}
}

func TestApp_Stats(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	files := mocks.NewFileStore(t)
	users.On("Count", ctx).Return(int64(4), nil).Once()
	files.On("Count", ctx).Return(int64(30), nil).Once()

	app := NewApp(nil, nil, users, files, testutil.MakeNoopLogger())

	stats, err := app.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, AppStats{Users: 4, Files: 30}, stats)
}

func TestApp_Stats_Error(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserStore(t)
	users.On("Count", ctx).Return(int64(0), assert.AnError).Once()

	_, err := NewApp(nil, nil, users, mocks.NewFileStore(t), testutil.MakeNoopLogger()).Stats(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
