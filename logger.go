package panes

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go-theft-auto/panes/gui"
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

// SetLogger sets the logger used by panes, its backends and the gui
// package. By default nothing is logged. Pass nil to silence logging
// again; gui then falls back to stderr, still gated by gui.SetVerbose.
//
// Levels:
//   - Debug: per-event diagnostics (dropped input, activations)
//   - Info: context and surface lifecycle
//   - Warn: skipped frames, explicit backend re-initialization
//   - Error: backend failures during creation
func SetLogger(l *slog.Logger) {
	gui.SetLogger(l)
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
