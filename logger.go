package viz

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message
// formatting entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for viz and all its sub-packages.
// By default, viz produces no log output. Pass nil to restore the
// default silent behavior.
//
// Log levels used by viz:
//   - [slog.LevelDebug]: internal diagnostics (mesh sizes, ring counts)
//   - [slog.LevelWarn]: non-fatal issues (skipped non-finite points,
//     degenerate geometry dropped)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by viz. Sub-packages call
// this to share the same logger configuration without introducing
// import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
