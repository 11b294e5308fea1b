package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	Storage         string
	CounterKey      string
	ShutdownTimeout time.Duration
	// Postgres
	DatabaseURL string
	// Redis (counter store)
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisDialTimeout  time.Duration
	RedisReadTimeout  time.Duration
	RedisWriteTimeout time.Duration
	RedisPoolSize     int
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, strconv.Itoa(defMS)), defMS)) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:               getEnv("ENV", "local"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Port:              getEnv("PORT", "8080"),
		Storage:           getEnv("STORAGE", "redis"),
		CounterKey:        getEnv("COUNTER_KEY", "footer-likes"),
		ShutdownTimeout:   durMS("SHUTDOWN_TIMEOUT_MS", 10000),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("KV_URL", getEnv("REDIS_URL", "")),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisDialTimeout:  durMS("REDIS_DIAL_TIMEOUT_MS", 2000),
		RedisReadTimeout:  durMS("REDIS_READ_TIMEOUT_MS", 1000),
		RedisWriteTimeout: durMS("REDIS_WRITE_TIMEOUT_MS", 1000),
		RedisPoolSize:     atoiDef(getEnv("REDIS_POOL_SIZE", "10"), 10),
	}
}
