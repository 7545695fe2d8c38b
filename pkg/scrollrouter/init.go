// Package scrollrouter synchronizes the visible scroll position of a
// long-scrolling page with an "active section" indicator and the address bar.
//
// Sections register with a Router as they mount. The Router listens to
// scroll events, throttles them, resolves which section is active, and
// announces changes to subscribers while keeping the address bar current.
// Navigation clicks travel the other way: they announce the route, push a
// history entry and jump to the section.
package scrollrouter

import (
	"log/slog"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/constants"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/internal"
)

// Init configures logging from cfg. Call it before creating a Router so the
// Router picks up the configured logger.
func Init(cfg Config) {
	if cfg.Log.Path != "" {
		internal.SetLogPath(cfg.Log.Path)
	}

	if constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetRawLogLevel(cfg.Log.Level)
	}
}

// Close releases the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the package logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
