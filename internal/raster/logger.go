package raster

import (
	"context"
	"log/slog"
	"sync/atomic"

	"logdepth-renderer/internal/scene"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the rasterizer and the scene
// loader. By default both are silent. Pass nil to restore the silent
// default.
//
// Levels used:
//   - [slog.LevelDebug]: per-triangle skips (degenerate area, warp domain)
//   - [slog.LevelInfo]: render summaries
//   - [slog.LevelWarn]: material libraries that failed to load
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	scene.SetLogger(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
