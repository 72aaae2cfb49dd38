// Package logging builds the leveled logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when neither the config nor a flag sets one
const DefaultLevel = "info"

// New returns a logger writing to w at the given level
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}), nil
}

// ParseLevel accepts debug, info, warn, error or fatal; empty means DefaultLevel
func ParseLevel(level string) (log.Level, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// EnableDebug switches an existing logger to debug level
func EnableDebug(logger *log.Logger) {
	logger.SetLevel(log.DebugLevel)
}
