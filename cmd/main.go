package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/merchkit/ordertags/internal/config"
	"github.com/merchkit/ordertags/internal/db"
	"github.com/merchkit/ordertags/internal/kafka"
	"github.com/merchkit/ordertags/internal/logger"
	"github.com/merchkit/ordertags/internal/repository/postgresql"
	"github.com/merchkit/ordertags/internal/server"
	"github.com/merchkit/ordertags/internal/shopify"
	"github.com/merchkit/ordertags/internal/storage"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		zap.S().Fatalf("Database init error: %v", err)
	}
	defer database.GetPool().Close()

	orderRepo := postgresql.NewOrderRepo(database)
	tagRepo := postgresql.NewTagRepo(database)
	orderTagRepo := postgresql.NewOrderTagRepo(database)
	userRepo := postgresql.NewUserRepo(database)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := userRepo.CreateUser(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			zap.S().Fatalf("Failed to seed admin user: %v", err)
		}
	}

	stg := storage.New(database, orderRepo, tagRepo, orderTagRepo)
	syncer := shopify.NewClient(cfg.APIVersion)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewKafkaProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	srv := server.New(stg, syncer, userRepo, cfg, producer)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(groupCtx, cfg.HTTPPort)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		zap.S().Fatalf("Server error: %v", err)
	}

	zap.S().Info("Server gracefully stopped")
}
