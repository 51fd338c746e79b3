package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/swiftparcel/tracker/internal/config"
	"github.com/swiftparcel/tracker/internal/db"
	"github.com/swiftparcel/tracker/internal/logger"
	"github.com/swiftparcel/tracker/internal/repository/postgresql"
	"github.com/swiftparcel/tracker/internal/revalidate"
	"github.com/swiftparcel/tracker/internal/server"
	"github.com/swiftparcel/tracker/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() { _ = zapLogger.Sync() }()

	cfg := config.Load()

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		zapLogger.Fatal("Database init error", zap.Error(err))
	}
	defer db.Close()

	if err := db.InitSchema(ctx, database); err != nil {
		zapLogger.Fatal("Schema init error", zap.Error(err))
	}

	shippingRepo := postgresql.NewShippingRepo(database)
	recipientRepo := postgresql.NewRecipientRepo(database)
	detailsRepo := postgresql.NewDetailsRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	holdRepo := postgresql.NewHoldRepo(database)

	var producer revalidate.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = revalidate.NewKafkaProducer(cfg.KafkaBrokers, cfg.RevalidationTopic)
		zapLogger.Info("Revalidation events publishing to Kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.RevalidationTopic))
	} else {
		producer = revalidate.NewConsoleProducer()
	}
	revalidator := revalidate.New(producer, zapLogger)
	defer func() { _ = revalidator.Close() }()

	stg := storage.NewTrackingStorage(
		database,
		shippingRepo,
		recipientRepo,
		detailsRepo,
		historyRepo,
		holdRepo,
		revalidator,
		zapLogger,
	)

	srv := server.New(stg)

	go func() {
		if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("Server gracefully stopped")
}
