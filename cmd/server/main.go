package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	httpctx "github.com/dtroode/files-manager/internal/api/http/context"
	"github.com/dtroode/files-manager/internal/api/http/router"
	httpServer "github.com/dtroode/files-manager/internal/api/http/server"
	"github.com/dtroode/files-manager/internal/config"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/queue"
	"github.com/dtroode/files-manager/internal/repository/badger"
	"github.com/dtroode/files-manager/internal/repository/postgres"
	"github.com/dtroode/files-manager/internal/repository/redis"
	"github.com/dtroode/files-manager/internal/server"
	"github.com/dtroode/files-manager/internal/service"
	"github.com/dtroode/files-manager/internal/storage"
	"github.com/dtroode/files-manager/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize session store", "error", err)
	}
	defer sessions.Close()

	blobs, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize blob storage", "error", err)
	}

	jobs := queue.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer jobs.Close()
	dispatcher := queue.NewDispatcher(jobs, logger)

	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)

	tokenService := service.NewTokenService(token.NewRandom(), sessions, logger)
	r := router.New(
		service.NewApp(sessions, db, userRepo, fileRepo, logger),
		service.NewAuth(userRepo, tokenService, logger),
		tokenService,
		service.NewUser(userRepo, dispatcher, logger),
		service.NewFile(fileRepo, blobs, dispatcher, cfg.Storage.FolderPath, logger),
		service.NewContent(fileRepo, blobs, logger),
		httpctx.NewManager(),
		logger,
	)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	wg.Wait()

	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Error("error while draining job dispatcher", "error", err)
	}

	logger.Info("shutdown complete")
}

func newSessionStore(cfg *config.Config) (model.SessionStore, error) {
	switch cfg.Session.Backend {
	case "badger":
		store, err := badger.Open(cfg.Session.BadgerDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		client := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		return redis.NewSessionRepository(client), nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
