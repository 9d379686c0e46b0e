package gui

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// guiLogLevel gates debug output of the GUI package. SetVerbose(true)
// lowers it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

var guiLoggerPtr atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// levelGate drops records below guiLogLevel before they reach the sink,
// whatever level the sink itself accepts.
type levelGate struct {
	slog.Handler
}

func (g levelGate) Enabled(_ context.Context, level slog.Level) bool {
	return level >= guiLogLevel.Level()
}

func (g levelGate) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelGate{g.Handler.WithAttrs(attrs)}
}

func (g levelGate) WithGroup(name string) slog.Handler {
	return levelGate{g.Handler.WithGroup(name)}
}

// SetLogger sends GUI diagnostics to l. Output is still gated by
// SetVerbose. Pass nil to log to stderr again.
func SetLogger(l *slog.Logger) {
	var h slog.Handler
	if l == nil {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = l.Handler()
	}
	guiLoggerPtr.Store(slog.New(levelGate{h}))
}

func guiLogger() *slog.Logger {
	return guiLoggerPtr.Load()
}

// SetVerbose enables or disables debug logging for GUI internals.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}
