// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/trimlog/internal/color"
)

type loggerKey struct{}

const (
	// FormatPretty selects the coloured console logger.
	FormatPretty = "pretty"
	// FormatJSON selects the JSON logger.
	FormatJSON = "json"

	fallbackEnvPrefix = "TRIMLOG"
	levelEnvSuffix    = "_LOG_LEVEL"
)

// LevelVar is shared by every logger in this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a pretty console logger that is used if no logger is provided.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithColour(color.Enabled()),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes one JSON object per record to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New returns a copy of ctx carrying logger. A nil logger stores DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// ForFormat returns the package logger for the named format.
func ForFormat(format string) (*slog.Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatPretty:
		return DefaultLogger, nil
	case FormatJSON:
		return JSONLogger, nil
	default:
		return nil, fmt.Errorf("unknown log format %q, expected %q or %q", format, FormatPretty, FormatJSON)
	}
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

// levelEnvVar returns the name of the log level variable, derived from the executable name.
func levelEnvVar() string {
	exec, err := os.Executable()
	if err != nil {
		return fallbackEnvPrefix + levelEnvSuffix
	}

	exec = strings.TrimSuffix(filepath.Base(exec), ".exe")
	if exec == "" {
		exec = fallbackEnvPrefix
	}

	return strings.ToUpper(exec) + levelEnvSuffix
}

func logLevelFromEnv() slog.Level {
	return parseLevel(os.Getenv(levelEnvVar()))
}

// parseLevel maps DEBUG, INFO, WARN and ERROR to their slog levels. Anything else is WARN.
func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
