package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/apierrors"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

const internalErrorMessage = "Internal server error"

func handleError(c *gin.Context, logger *logger.Logger, err error) {
	if apiErr, ok := apierrors.As(err); ok {
		c.JSON(apiErr.HTTPStatus, gin.H{"error": apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": apierrors.NewErrNotFound().Message})
		return
	}

	_ = c.Error(err)
	logger.Error("HTTP handler: unexpected error",
		"path", c.Request.URL.Path,
		"error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
}
