package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the process-wide default logger. Logs go to
// stderr so they never interleave with the comparison output on stdout.
func InitLogger(debug bool) {
	initLogger(os.Stderr, debug)
}

func initLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
