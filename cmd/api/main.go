package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"like-service/internal/bootstrap"
	infraconfig "like-service/internal/infrastructure/config"
	httpserver "like-service/internal/infrastructure/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	ctx := context.Background()
	cfg := bootstrap.ProvideConfig()
	logger := bootstrap.ProvideLogger(cfg)
	defer func() { _ = logger.Sync() }()
	addr := ":" + cfg.Port

	srv, cleanup, err := bootstrap.InitAPI(ctx, logger, cfg)
	if err != nil {
		cleanup()
		logger.Fatal("bootstrap api", zap.Error(err))
	}
	defer cleanup()

	server := &http.Server{
		Addr:         addr,
		Handler:      httpserver.NewRouter(srv),
		ReadTimeout:  infraconfig.DefaultReadTimeout,
		WriteTimeout: infraconfig.DefaultWriteTimeout,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
