package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/config"
	dbRedis "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/db/redis"
	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/listcache"
	logpkg "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/logger"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/metrics"
	authrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/auth"
	classrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/class"
	professorrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/professor"
	sessionrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/session"
	studentrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi"
	chiTransport "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/transport/chi"
	authuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/auth"
	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	classuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/class"
	professoruc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/professor"
	studentuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := newLogger(env, cfg.Logging)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting hod-console gateway",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.Strings("redis_addrs", cfg.Redis.Addrs),
	)

	// Session store
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Redis.Addrs,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Session store not ready", zap.Error(err))
	}
	logger.Info("Connected to session store")

	// Register batch metrics explicitly (no init())
	metrics.RegisterBatchMetrics()

	// Backend transport. Per-request tokens come from the session middleware.
	api, err := restapi.New(restapi.Config{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSec) * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create backend client", zap.Error(err))
	}

	studentRepo := studentrepo.New(api)
	professorRepo := professorrepo.New(api)
	classRepo := classrepo.New(api)

	cacheTTL := time.Duration(cfg.Cache.TTLSec) * time.Second
	studentSvc := studentuc.New(studentRepo, listcache.New[domstudent.Student](cfg.Cache.Size, cacheTTL))
	professorSvc := professoruc.New(professorRepo, listcache.New[domprof.Professor](cfg.Cache.Size, cacheTTL))
	classSvc := classuc.New(classRepo, listcache.New[domclass.Class](cfg.Cache.Size, cacheTTL))
	batchSvc := batchuc.New(studentRepo, studentRepo, professorRepo, classRepo).
		WithConcurrency(cfg.Batch.Concurrency)

	sessions := sessionrepo.New(store, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	authSvc := authuc.New(authrepo.New(api), sessions, []byte(cfg.Auth.JWTSecret)).
		WithSessionTTL(time.Duration(cfg.Auth.SessionTTLHours) * time.Hour)

	server := chiTransport.NewServer(authSvc, studentSvc, professorSvc, classSvc, batchSvc, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      server.Routes(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(env string, cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File != "" {
		return logpkg.NewFileLogger(env, cfg.Level, cfg.File)
	}
	return logpkg.NewLogger(env, cfg.Level)
}
