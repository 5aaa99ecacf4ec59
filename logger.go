package yuv

import (
	"log/slog"

	"github.com/kevmo314/go-yuv/pkg/memory"
)

// SetLogger configures logging for yuv and pkg/memory. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: region allocation and release, engine dispatch
//   - [slog.LevelWarn]: release failures, engine fallback
func SetLogger(l *slog.Logger) {
	memory.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return memory.Logger()
}
