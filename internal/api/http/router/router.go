package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/api/http/handler"
	"github.com/dtroode/files-manager/internal/api/http/middleware"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/metrics"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/service"
)

// Router wires services to HTTP routes.
type Router struct {
	appService     *service.App
	authService    *service.Auth
	tokenService   *service.TokenService
	userService    *service.User
	fileService    *service.File
	contentService *service.Content
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	appService *service.App,
	authService *service.Auth,
	tokenService *service.TokenService,
	userService *service.User,
	fileService *service.File,
	contentService *service.Content,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		appService:     appService,
		authService:    authService,
		tokenService:   tokenService,
		userService:    userService,
		fileService:    fileService,
		contentService: contentService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with every route and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle(), middleware.Metrics())

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.registerAppRoutes(engine)
	r.registerAuthRoutes(engine, authenticate)
	r.registerUserRoutes(engine, authenticate)
	r.registerFileRoutes(engine, authenticate)

	return engine
}

func (r *Router) registerAppRoutes(engine *gin.Engine) {
	appHandler := handler.NewApp(r.appService, r.logger)
	engine.GET("/status", appHandler.Status)
	engine.GET("/stats", appHandler.Stats)
}

func (r *Router) registerAuthRoutes(engine *gin.Engine, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	engine.GET("/connect", authHandler.Connect)
	engine.GET("/disconnect", authenticate.Required(), authHandler.Disconnect)
}

func (r *Router) registerUserRoutes(engine *gin.Engine, authenticate *middleware.Authenticate) {
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	engine.POST("/users", userHandler.Register)
	engine.GET("/users/me", authenticate.Required(), userHandler.Me)
}

func (r *Router) registerFileRoutes(engine *gin.Engine, authenticate *middleware.Authenticate) {
	fileHandler := handler.NewFile(r.fileService, r.contentService, r.contextManager, r.logger)

	engine.GET("/files/:id/data", authenticate.Optional(), fileHandler.Data)

	files := engine.Group("/files", authenticate.Required())
	files.POST("", fileHandler.Upload)
	files.GET("", fileHandler.Index)
	files.GET("/:id", fileHandler.Show)
	files.PUT("/:id/publish", fileHandler.Publish)
	files.PUT("/:id/unpublish", fileHandler.Unpublish)
}
