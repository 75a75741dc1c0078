package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/terrascope/foodweb/internal/session"
)

type config struct {
	Port         string
	CORSOrigin   string
	LogLevel     slog.Level
	LogFormat    string
	MaxSessions  int
	MaxBodyBytes int64
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func loadConfig() (config, error) {
	cfg := config{
		Port:       getEnv("PORT", "8080"),
		CORSOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return config{}, fmt.Errorf("LOG_FORMAT: unsupported format %q", cfg.LogFormat)
	}

	maxSessions, err := strconv.Atoi(getEnv("MAX_SESSIONS", strconv.Itoa(session.DefaultMaxSessions)))
	if err != nil || maxSessions <= 0 {
		return config{}, fmt.Errorf("MAX_SESSIONS: must be a positive integer")
	}
	cfg.MaxSessions = maxSessions

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return config{}, fmt.Errorf("MAX_BODY_BYTES: must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	return cfg, nil
}

func newLogger(cfg config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
