package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// UserService registers users and looks them up.
type UserService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Me(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// User handles /users routes.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email}
}

// Register creates a user from {email, password}.
func (h *User) Register(c *gin.Context) {
	var req registerRequest
	// A body that is not JSON is treated like an empty one.
	_ = c.ShouldBindJSON(&req)

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Me returns the authenticated user.
func (h *User) Me(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		handleError(c, h.logger, apierrors.NewErrUnauthenticated())
		return
	}

	user, err := h.userService.Me(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
