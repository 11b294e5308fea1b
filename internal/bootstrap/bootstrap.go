package bootstrap

import (
	"context"
	"errors"

	"like-service/internal/config"
	httpserver "like-service/internal/infrastructure/http"

	"go.uber.org/zap"
)

var (
	ErrMissingDBURL   = errors.New("DATABASE_URL is required for STORAGE=pg")
	ErrUnknownStorage = errors.New("unknown STORAGE")
)

// InitAPI wires config, store, service and HTTP server. The returned cleanup is never nil.
func InitAPI(ctx context.Context, log *zap.Logger, cfg config.Config) (*httpserver.Server, func(), error) {
	store, cleanup, err := ProvideCounterStore(ctx, log, cfg)
	if err != nil {
		return nil, cleanup, err
	}
	svc := ProvideLikeService(store, cfg)
	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(store.Ping)
	log.Info("counter store ready",
		zap.String("storage", cfg.Storage),
		zap.String("key", svc.Key()),
	)
	return srv, cleanup, nil
}
