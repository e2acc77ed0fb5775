// Package logging builds the structured loggers used across folios.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Debug lowers the level to debug.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "folios",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OpenFile returns a logger appending to the state log file. The terminal
// belongs to the renderer while the desktop runs, so local sessions log here
// instead of stderr. The caller closes the returned file.
func OpenFile(debug bool) (*log.Logger, io.Closer, error) {
	path, err := config.GetLogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine log path: %w", err)
	}
	return OpenPath(path, debug)
}

// OpenPath is OpenFile with an explicit location.
func OpenPath(path string, debug bool) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, debug), f, nil
}
