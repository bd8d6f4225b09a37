package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

type User struct {
	userStore  model.UserStore
	dispatcher model.JobDispatcher
	logger     *logger.Logger
	hashCost   int
}

func NewUser(userStore model.UserStore, dispatcher model.JobDispatcher, logger *logger.Logger) *User {
	return &User{
		userStore:  userStore,
		dispatcher: dispatcher,
		logger:     logger,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Register creates a user and schedules the welcome job.
func (s *User) Register(ctx context.Context, email, password string) (model.User, error) {
	if email == "" {
		return model.User{}, apierrors.NewErrMissing("email")
	}
	if password == "" {
		return model.User{}, apierrors.NewErrMissing("password")
	}

	s.logger.Debug("User service: registering user",
		"email", email)

	_, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("User service: email already taken",
			"email", email)
		return model.User{}, apierrors.NewErrAlreadyExists()
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apierrors.NewErrAlreadyExists()
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.dispatcher.DispatchWelcome(model.WelcomeJob{UserID: user.ID})

	s.logger.Info("User service: user registered",
		"user_id", user.ID)

	return user, nil
}

// Me returns the authenticated user.
func (s *User) Me(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUnauthenticated()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
