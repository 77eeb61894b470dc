package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	WebPort         int
	DBPath          string
	ResolverURL     string
	ResolverAPIKey  string
	ResolverModel   string
	ResolverTimeout time.Duration
	LogLevel        string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WebPort:         getEnvAsInt("WEB_PORT", 5680),
		DBPath:          getEnv("DB_PATH", "/data/hospital.db"),
		ResolverURL:     getEnv("RESOLVER_URL", "https://api.openai.com"),
		ResolverAPIKey:  getEnv("RESOLVER_API_KEY", ""),
		ResolverModel:   getEnv("RESOLVER_MODEL", "gpt-4o-mini"),
		ResolverTimeout: time.Duration(getEnvAsInt("RESOLVER_TIMEOUT_SECONDS", 60)) * time.Second,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	setupLogger(cfg.LogLevel)

	slog.Info("Configuration loaded",
		"webPort", cfg.WebPort,
		"dbPath", cfg.DBPath,
		"resolverURL", cfg.ResolverURL,
		"resolverModel", cfg.ResolverModel,
		"resolverConfigured", cfg.ResolverAPIKey != "",
	)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)
}
