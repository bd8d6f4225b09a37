package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/service"
)

// AppService reports backend health and entity counts.
type AppService interface {
	Status(ctx context.Context) service.AppStatus
	Stats(ctx context.Context) (service.AppStats, error)
}

// App handles /status and /stats.
type App struct {
	appService AppService
	logger     *logger.Logger
}

// NewApp creates a new App handler.
func NewApp(appService AppService, logger *logger.Logger) *App {
	return &App{appService: appService, logger: logger}
}

// Status answers 200 when every backend is reachable and 500 otherwise.
func (h *App) Status(c *gin.Context) {
	status := h.appService.Status(c.Request.Context())
	if !status.Healthy() {
		h.logger.Warn("App handler: unhealthy",
			"redis", status.Redis,
			"db", status.DB)
		c.JSON(http.StatusInternalServerError, status)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Stats returns user and file counts.
func (h *App) Stats(c *gin.Context) {
	stats, err := h.appService.Stats(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
