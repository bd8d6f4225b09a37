package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/api/http/middleware"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// AuthService opens and closes sessions.
type AuthService interface {
	Authenticate(ctx context.Context, authorization string) (model.Session, error)
	Disconnect(ctx context.Context, token string) error
}

// Auth handles /connect and /disconnect.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type connectResponse struct {
	Token string `json:"token"`
}

// Connect exchanges Basic credentials for a session token.
func (h *Auth) Connect(c *gin.Context) {
	session, err := h.authService.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Debug("Auth handler: connect completed",
		"user_id", session.UserID)

	c.JSON(http.StatusOK, connectResponse{Token: session.Token})
}

// Disconnect revokes the session of the X-Token header.
func (h *Auth) Disconnect(c *gin.Context) {
	if err := h.authService.Disconnect(c.Request.Context(), c.GetHeader(middleware.TokenHeader)); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
