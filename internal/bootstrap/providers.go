package bootstrap

import (
	"context"
	"fmt"
	"time"

	"like-service/internal/application"
	"like-service/internal/config"
	"like-service/internal/infrastructure/logx"
	"like-service/internal/infrastructure/memory"
	"like-service/internal/infrastructure/pg"
	redisstore "like-service/internal/infrastructure/redis"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is a CounterStore that can also report readiness.
type Store interface {
	application.CounterStore
	application.Pinger
}

func ProvideConfig() config.Config { return config.Load() }

// ProvideLogger rebuilds the package logger at cfg.LogLevel. logx initialises
// before .env is loaded, so the level may have changed since. An invalid level
// keeps the current logger.
func ProvideLogger(cfg config.Config) *zap.Logger {
	l, err := logx.New(cfg.LogLevel)
	if err != nil {
		logx.L().Warn("invalid LOG_LEVEL; keeping current logger", zap.String("level", cfg.LogLevel), zap.Error(err))
		return logx.L()
	}
	logx.Replace(l)
	return l
}

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

// ProvideRedisClient dials eagerly so a bad address fails at startup rather than on the first like.
func ProvideRedisClient(ctx context.Context, log *zap.Logger, cfg config.Config) (*redis.Client, func(), error) {
	opts, err := redisstore.Options(cfg)
	if err != nil {
		return nil, func() {}, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, func() {}, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	cleanup := func() {
		log.Info("closing redis")
		_ = client.Close()
	}
	return client, cleanup, nil
}

// ProvideCounterStore picks the adapter named by cfg.Storage.
func ProvideCounterStore(ctx context.Context, log *zap.Logger, cfg config.Config) (Store, func(), error) {
	switch cfg.Storage {
	case "redis":
		client, cleanup, err := ProvideRedisClient(ctx, log, cfg)
		if err != nil {
			return nil, cleanup, err
		}
		return redisstore.New(client), cleanup, nil
	case "pg":
		db, cleanup, err := ProvideDB(ctx, log, cfg)
		if err != nil {
			return nil, cleanup, err
		}
		return pg.NewCounterRepo(db), cleanup, nil
	case "memory":
		log.Warn("using in-memory counter store; counts are lost on restart")
		return memory.New(), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}
}

func ProvideLikeService(store application.CounterStore, cfg config.Config) *application.LikeService {
	return application.NewLikeService(store, application.WithKey(cfg.CounterKey))
}
