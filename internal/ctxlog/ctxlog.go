// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/humantalk"
)

type loggerKey struct{}

// LevelVar holds the minimum level of DefaultLogger.
var LevelVar = &slog.LevelVar{}

// DefaultLogger writes humantalk lines to stderr and is used if no logger is provided.
var DefaultLogger = slog.New(NewHandler(
	humantalk.Default(humantalk.WithWriter(os.Stderr), humantalk.WithDebug(true)),
	&slog.HandlerOptions{Level: LevelVar},
))

func init() {
	// Set the default log level based on the environment variable
	LevelVar.Set(logLevelFromEnv())
}

// New creates a new context with the given logger.
// If logger is nil, it uses the default logger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// ForConfig returns a logger that renders through cfg, honouring LevelVar.
func ForConfig(cfg *humantalk.Config) *slog.Logger {
	return slog.New(NewHandler(cfg, &slog.HandlerOptions{Level: LevelVar}))
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// levelEnvName derives the level variable from the executable name,
// e.g. "humantalk" reads HUMANTALK_LOG_LEVEL.
func levelEnvName() string {
	exec, _ := os.Executable()
	exec = filepath.Base(exec)

	if ext := filepath.Ext(exec); ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	return strings.ToUpper(exec) + "_LOG_LEVEL"
}

// logLevelFromEnv accepts DEBUG, INFO, WARN or ERROR; anything else is WARN.
func logLevelFromEnv() slog.Level {
	switch os.Getenv(levelEnvName()) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
