package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dietrack/cmd"
	httpin "dietrack/internal/adapters/in/http"
	"dietrack/internal/adapters/out/kafka"
	"dietrack/internal/adapters/out/postgres"
	"dietrack/internal/adapters/out/redis"
	"dietrack/internal/pkg/logging"
	"dietrack/internal/pkg/tracing"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logging.NewZap(config.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := logging.NewSlog(config.Environment)

	tp, err := tracing.InitTracer(tracing.ServiceName, config.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to init tracer: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	publisher := kafka.NewPublisher(config.KafkaBrokers, config.KafkaTopic, zapLogger)

	redisClient, err := redis.NewClient(context.Background(), config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	app := cmd.NewCompositionRoot(config, db, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e, err := httpin.NewRouter(httpin.RouterConfig{
		Server:       httpin.NewServer(app.CreateHTTPHandlers(), logger),
		Idempotency:  redis.NewIdempotencyStore(redisClient, config.IdempotencyTTL),
		AccessLogger: zapLogger,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := publisher.Close(); err != nil {
		logger.Error("Kafka publisher close failed", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis client close failed", "error", err)
	}
	if err := tp.Shutdown(ctx); err != nil {
		logger.Error("Tracer shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
