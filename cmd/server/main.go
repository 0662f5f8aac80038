package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/api/handler"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/api/router"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/metrics"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/service"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/database"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/hash"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
	applogger "github.com/chitresh99/cybersecurity-club-apsit/pkg/logger"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/ratelimit"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/redis"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/upload"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("access sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	// 4. redis; the server runs without it, with in-process rate limiting
	// and no token revocation
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory rate limiting", zap.Error(err))
		rdb = nil
	}

	var limiter ratelimit.Limiter
	if rdb != nil {
		limiter = ratelimit.NewRedisLimiter(rdb.Raw(), cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
	}

	// 5. shared components
	jwtMgr := jwt.NewManager(&cfg.Auth)
	hasher := hash.NewHasher(&cfg.Hash)
	store, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxFileSizeBytes())
	if err != nil {
		logger.Fatal("init upload store failed", zap.Error(err))
	}

	metrics.Register()

	// 6. dependency injection: repository -> service -> handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, hasher, store, logger)
	h := handler.NewHandler(svc, jwtMgr, rdb)

	// 7. routes
	engine := router.Setup(cfg, h, jwtMgr, rdb, repo, limiter, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	if closeDB, err := db.DB(); err == nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("stopped")
}
