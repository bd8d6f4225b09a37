package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/dtroode/files-manager/internal/config"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/repository/postgres"
	"github.com/dtroode/files-manager/internal/storage"
	"github.com/dtroode/files-manager/internal/thumbnail"
	"github.com/dtroode/files-manager/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	blobs, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize blob storage", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)

	handler := worker.NewHandler(thumbnail.NewGenerator(fileRepo, blobs, logger), userRepo, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Logger:      worker.NewAsynqLogger(logger),
		},
	)

	if err := srv.Start(handler.Mux()); err != nil {
		logger.Fatal("failed to start worker", "error", err)
	}
	logger.Info("worker started", "concurrency", cfg.Worker.Concurrency)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	srv.Shutdown()
	logger.Info("shutdown complete")
}
