// Package logging builds the phonebook's slog loggers and carries
// request-scoped loggers through contexts.
//
// Errors are logged with the operation, the location involved and the whole
// chain:
//
//	logger.ErrorContext(ctx, "failed to save contacts",
//	    slog.String("operation", "save"),
//	    slog.String("path", path),
//	    slog.Any("error", err),
//	)
//
// Every handler gets its sensitive values masked by masq before they are
// written; see newRedactAttr.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// logFileMode keeps log files private: add and remove records carry contact
// details.
const logFileMode = 0o600

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, anything else means info); debug also records the
// source location. format "text" selects the text handler, anything else
// JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Open returns a logger for the configured destination together with the
// Closer that releases it. file "" or "-" is stderr, os.DevNull discards
// everything, and any other value is a path opened for appending.
func Open(level, format, file string) (*slog.Logger, io.Closer, error) {
	switch file {
	case "", "-":
		return New(level, format, os.Stderr), noClose{}, nil
	case os.DevNull:
		return slog.New(slog.DiscardHandler), noClose{}, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, logFileMode)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", file, err)
	}
	return New(level, format, f), f, nil
}

type noClose struct{}

func (noClose) Close() error { return nil }

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		// UnmarshalText accepts exactly these names, in any case.
		_ = lvl.UnmarshalText([]byte(level))
		return lvl
	default:
		return slog.LevelInfo
	}
}
