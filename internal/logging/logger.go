package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/basicstrategy/internal/types"
)

// New creates a structured logger writing to w at the given level
func New(w io.Writer, level log.Level, prefix string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel converts a level name to a log level, defaulting to info
func ParseLevel(name string) log.Level {
	if name == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Discard returns a logger that drops everything, for tests
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// LogError logs a GameError with its code and cause. Chart inconsistencies
// are flagged with alert=true so they stand apart from trainee errors.
func LogError(logger *log.Logger, msg string, err error, keyvals ...interface{}) {
	if logger == nil || err == nil {
		return
	}

	var gameErr *types.GameError
	if !types.As(err, &gameErr) {
		logger.Error(msg, append(keyvals, "err", err)...)
		return
	}

	kv := append(keyvals, "code", gameErr.Code, "message", gameErr.Message)
	if gameErr.Err != nil {
		kv = append(kv, "cause", gameErr.Err)
	}
	if gameErr.Code == types.ErrChartInconsistency {
		kv = append(kv, "alert", true)
	}
	logger.Error(msg, kv...)
}
