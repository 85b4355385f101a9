package curveart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards records. Enabled reports false so renderer debug
// attributes are never built while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger; the CLI may swap it while a render runs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by the curve renderer. curveart is
// silent until SetLogger is called; nil restores the silent default.
//
// Segments that cannot be stroked as a quadrilateral are logged at
// [slog.LevelDebug] with their endpoints and rejection reason, just before
// the renderer falls back to endpoint circles.
//
//	curveart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
