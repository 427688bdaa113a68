package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Text output on stdout is enough for a mock
// data server.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
