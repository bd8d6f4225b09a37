package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

const basicScheme = "basic"

type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate verifies a Basic authorization header and opens a session.
func (a *Auth) Authenticate(ctx context.Context, authorization string) (model.Session, error) {
	email, password, err := parseBasic(authorization)
	if err != nil {
		a.logger.Debug("Auth service: malformed credentials")
		return model.Session{}, err
	}

	a.logger.Debug("Auth service: authenticating user",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown email",
			"email", email)
		return model.Session{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return model.Session{}, apierrors.NewErrInvalidCredentials()
	}

	session, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user connected",
		"user_id", user.ID)

	return session, nil
}

// Disconnect revokes the session behind token.
func (a *Auth) Disconnect(ctx context.Context, token string) error {
	if err := a.tokenService.Revoke(ctx, token); err != nil {
		return err
	}

	a.logger.Debug("Auth service: session revoked")
	return nil
}

// parseBasic extracts email and password from "Basic base64(email:password)".
func parseBasic(authorization string) (string, string, error) {
	scheme, encoded, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, basicScheme) {
		return "", "", apierrors.NewErrMalformedCredentials()
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", apierrors.NewErrMalformedCredentials()
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != 2 {
		return "", "", apierrors.NewErrMalformedCredentials()
	}

	return parts[0], parts[1], nil
}
