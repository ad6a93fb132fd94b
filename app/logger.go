package app

import (
	"context"
	"log/slog"
	"sync/atomic"

	"shapes/softgl"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for app and the packages it drives.
// Pass nil to silence everything again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	softgl.SetLogger(l.With("pkg", "softgl"))
}

// Logger returns the current app logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
