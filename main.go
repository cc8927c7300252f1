package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/facerec/internal/config"
	"github.com/example/facerec/internal/grpcclient"
	"github.com/example/facerec/internal/handlers"
	"github.com/example/facerec/internal/imagestore"
	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/repository"
	"github.com/example/facerec/internal/training"
	"github.com/example/facerec/internal/usecase"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cfg := config.Load()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	db := initDatabase(ctx, cfg.DatabaseDSN, logger)
	users := repository.NewUserRepository(db)
	registry := repository.NewModelRegistry(db, logger)
	if err := registry.AutoMigrate(ctx); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	redisCtx, redisCancel := context.WithTimeout(ctx, 5*time.Second)
	defer redisCancel()
	redisClient := initRedis(redisCtx, cfg.RedisAddr, logger)

	trainerClient, conn, err := grpcclient.DialTrainer(ctx, cfg.TrainerAddr, logger)
	if err != nil {
		logger.Fatal("failed to connect to trainer", zap.Error(err))
	}
	defer conn.Close()

	photos := imagestore.New(cfg.ImagesDir, logger)
	artifacts := training.NewArtifactStore(cfg.ModelsDir)

	lastVersion, err := registry.LatestVersion(ctx)
	if err != nil {
		logger.Fatal("failed to read latest version", zap.Error(err))
	}
	queue := training.NewQueue(lastVersion)

	// The worker outlives the startup context; it stops at shutdown.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker := training.NewWorker(queue, photos, trainerClient, users, registry, artifacts, cfg.TrainSplit, logger)
	go worker.Run(workerCtx)

	cache := usecase.NewRedisCache(redisClient)
	registration := usecase.NewRegistrationUseCase(users, photos, queue, logger)
	prediction := usecase.NewPredictionUseCase(registry, artifacts, trainerClient, cache, logger)
	modelInfo := usecase.NewModelInfoUseCase(registry, logger)

	r := gin.Default()
	r.MaxMultipartMemory = handlers.MaxUploadSize
	handlers.RegisterRoutes(r, registration, prediction, modelInfo, cfg.ModelsDir)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	logger.Info("face recognition API listening", zap.String("addr", server.Addr))
	if err := serveHTTPServer(server, 15*time.Second, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initDatabase opens the relational store. URL and key-value style DSNs go
// to postgres; anything else is treated as a sqlite file path, the
// single-node default.
func initDatabase(ctx context.Context, dsn string, zapLogger *zap.Logger) *gorm.DB {
	var dialector gorm.Dialector
	if isPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to access db handle", zap.Error(err))
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		zapLogger.Fatal("database ping failed", zap.Error(err))
	}

	return db
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=")
}

func initRedis(ctx context.Context, addr string, zapLogger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	return client
}

func serveHTTPServer(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, nil, nil)
}

func serveHTTPServerWithOptions(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener, signalCh <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if listener != nil {
			err = server.Serve(listener)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var (
		sigCh       <-chan os.Signal
		stopSignals func()
	)

	if signalCh != nil {
		sigCh = signalCh
		stopSignals = func() {}
	} else {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		sigCh = ch
		stopSignals = func() {
			signal.Stop(ch)
		}
	}
	defer stopSignals()

	select {
	case err := <-errCh:
		return err
	case sig, ok := <-sigCh:
		if !ok {
			return <-errCh
		}
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	}
}
