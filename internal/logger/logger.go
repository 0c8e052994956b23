// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// cloudphish client and command-line tool.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// It also satisfies resty's Logger interface, so the HTTP transport reports
// through the same sink as the rest of the application.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON
// entries to w at the given level.
//
// Every entry carries:
//   - a "role" field set to role;
//   - a "time" timestamp field;
//   - a "func" caller field with the fully-qualified function name
//     (instead of the default file:line format).
func NewLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewCLILogger builds the logger used by the command-line tool. Output goes
// to os.Stderr so that stdout carries only the server's response.
//
// levelName is parsed with zerolog.ParseLevel; an empty or unknown value
// falls back to warn.
func NewCLILogger(role, levelName string) *Logger {
	level, err := ParseLevel(levelName)
	if err != nil {
		level = zerolog.WarnLevel
	}

	return NewLogger(os.Stderr, role, level)
}

// ParseLevel converts a textual level ("debug", "warn", ...) into a
// zerolog.Level. The empty string maps to warn.
func ParseLevel(levelName string) (zerolog.Level, error) {
	levelName = strings.ToLower(strings.TrimSpace(levelName))
	if levelName == "" {
		return zerolog.WarnLevel, nil
	}
	if levelName == "warning" {
		levelName = "warn"
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", levelName, err)
	}

	return level, nil
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Errorf implements resty.Logger.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error().Str("component", "transport").Msgf(format, v...)
}

// Warnf implements resty.Logger.
func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().Str("component", "transport").Msgf(format, v...)
}

// Debugf implements resty.Logger.
func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().Str("component", "transport").Msgf(format, v...)
}
