package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// TokenService issues, resolves and revokes session tokens.
// It composes the TokenGenerator and SessionStore.
type TokenService struct {
	generator model.TokenGenerator
	store     model.SessionStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewTokenService(generator model.TokenGenerator, store model.SessionStore, logger *logger.Logger) *TokenService {
	return &TokenService{generator: generator, store: store, logger: logger, now: time.Now}
}

// Issue creates a session for userID valid for model.SessionTTL.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.Session, error) {
	token, err := s.generator.Generate()
	if err != nil {
		return model.Session{}, fmt.Errorf("issue token: %w", err)
	}

	if err := s.store.Set(ctx, token, userID, model.SessionTTL); err != nil {
		return model.Session{}, fmt.Errorf("persist session: %w", err)
	}

	now := s.now()
	return model.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(model.SessionTTL),
	}, nil
}

// Resolve returns the user bound to token.
func (s *TokenService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apierrors.NewErrUnauthenticated()
	}

	userID, err := s.store.Get(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, apierrors.NewErrUnauthenticated()
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve session: %w", err)
	}

	return userID, nil
}

// Revoke deletes the session. Revoking an unknown token is Unauthenticated.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return apierrors.NewErrUnauthenticated()
	}

	err := s.store.Delete(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrUnauthenticated()
	}
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}
