package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logging environment keys.
const (
	EnvLogLevel = "IMPACT_LOG_LEVEL"
	EnvLogFile  = "IMPACT_LOG_FILE"
)

// NewLogger creates a structured logger writing to w. The level comes from
// IMPACT_LOG_LEVEL and defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}

// OpenRuntimeLog returns the writer used while a terminal UI owns the screen:
// the file named by IMPACT_LOG_FILE, or io.Discard when unset.
// The returned close func is always safe to call.
func OpenRuntimeLog() (io.Writer, func() error, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }, err
	}
	return f, f.Close, nil
}
