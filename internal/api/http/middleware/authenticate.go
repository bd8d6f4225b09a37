package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

const (
	// TokenHeader carries the session token.
	TokenHeader = "X-Token"

	internalErrorMessage = "Internal server error"
)

// TokenService resolves user ID from session tokens.
type TokenService interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates session tokens and injects user ID into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Required rejects requests without a valid token with 401.
func (m *Authenticate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := m.authenticateUser(c.Request.Context(), c.GetHeader(TokenHeader))
		if err != nil {
			m.abort(c, err)
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
		c.Next()
	}
}

// Optional resolves the token when present and lets anonymous requests through.
func (m *Authenticate) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.Next()
			return
		}

		userID, err := m.authenticateUser(c.Request.Context(), token)
		if errors.Is(err, apierrors.ErrUnauthenticated) {
			m.logger.Debug("Authenticate middleware: ignoring invalid token",
				"path", c.Request.URL.Path)
			c.Next()
			return
		}
		if err != nil {
			m.abort(c, err)
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
		c.Next()
	}
}

func (m *Authenticate) authenticateUser(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apierrors.NewErrUnauthenticated()
	}

	userID, err := m.tokenService.Resolve(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	if userID == uuid.Nil {
		return uuid.Nil, apierrors.NewErrUnauthenticated()
	}

	return userID, nil
}

// abort answers 401 for rejected tokens and 500 when the session store failed.
func (m *Authenticate) abort(c *gin.Context, err error) {
	if errors.Is(err, apierrors.ErrUnauthenticated) {
		m.logger.Debug("Authenticate middleware: rejected request",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apierrors.NewErrUnauthenticated().Message})
		return
	}

	_ = c.Error(err)
	m.logger.Error("Authenticate middleware: failed to resolve token",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
}
