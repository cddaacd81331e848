// Package logging configures the process-wide slog logger for the
// toolbelt binaries. Diagnostics go to stderr so command output on stdout
// stays script-friendly.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// EnvVar names the environment variable selecting the log level.
const EnvVar = "TOOLBELT_LOG"

// Setup installs a text handler on stderr at the level named by
// TOOLBELT_LOG (default info).
func Setup() {
	slog.SetDefault(New(os.Getenv(EnvVar), os.Stderr))
}

// New creates a logger at the named level without touching the global
// default, allowing isolated instances in tests.
func New(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
