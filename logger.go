package bezier

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the package. By default nothing is
// logged. Passing nil restores the silent default.
//
// Everything is logged at [slog.LevelDebug]: fit subdivision limits, the
// branch a freehand merge takes, undo depth and conversion modes.
//
// Example:
//
//	bezier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger used by the package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
