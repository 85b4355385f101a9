// Package applog builds the slog logger of the curveart command: a console
// handler on stderr and, when a file is configured, a rotating JSON log
// file written through lumberjack.
package applog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Defaults: INFO level, console format, no file.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // "console" or "json"
	File   string // optional path for file logging (rotated)
}

// Logger is a configured logger together with the resources it owns.
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// New creates a logger writing console output to w.
func New(opts Options, w io.Writer) *Logger {
	lvl := ParseLevel(opts.Level)
	hopts := &slog.HandlerOptions{Level: lvl}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, hopts)
	} else {
		console = slog.NewTextHandler(w, hopts)
	}

	l := &Logger{}
	handlers := []slog.Handler{console}
	if f := strings.TrimSpace(opts.File); f != "" {
		fw := &lj.Logger{Filename: f, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(fw, hopts))
		l.closers = append(l.closers, fw)
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = &multi{hs: handlers}
	}
	l.Logger = slog.New(h).With(slog.String("app", "curveart"))
	return l
}

// WithComponent returns a logger with the component attribute pre-set.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// ParseLevel converts a string to slog.Level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multi fans out log records to multiple handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
