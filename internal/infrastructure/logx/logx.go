package logx

import (
	"context"
	"strings"
	"sync"

	"like-service/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	traceIDKey
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

func init() {
	logger = newOrInfo(config.Load().LogLevel)
}

// newOrInfo falls back to info when level does not parse.
func newOrInfo(level string) *zap.Logger {
	l, err := New(level)
	if err == nil {
		return l
	}
	l, err = New("")
	if err != nil {
		panic(err)
	}
	l.Warn("invalid log level; using info", zap.String("level", level))
	return l
}

// New builds a JSON production logger at the given level ("" keeps info).
func New(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, err
		}
	}
	return zapCfg.Build(zap.AddCaller())
}

// L returns the package-level logger instance.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Replace swaps the package-level logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	mu.Lock()
	prev := logger
	logger = l
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

func TraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceIDKey).(string)
	return v
}

// WithFields enriches logs with request and trace IDs from context.
func WithFields(ctx context.Context) *zap.Logger {
	l := L()
	if rid := RequestID(ctx); rid != "" {
		l = l.With(zap.String("request_id", rid))
	}
	if tid := TraceID(ctx); tid != "" {
		l = l.With(zap.String("trace_id", tid))
	}
	return l
}
