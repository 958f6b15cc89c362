// Package logger implements the Logger port on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/webassets/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger writes human-readable text records. Output and verbosity are
// adjustable at runtime; the CLI keeps the default stderr/info, tests
// redirect or silence it.
type Logger struct {
	mu     sync.RWMutex
	level  *slog.LevelVar
	logger *slog.Logger
}

// New creates a Logger writing to stderr at info level.
func New() ports.Logger {
	level := &slog.LevelVar{}
	return &Logger{
		level:  level,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// SetOutput redirects log output to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// SetLevel adjusts the minimum level of emitted records.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. The error's own message carries any zerr metadata, so
// it is used as the record message directly.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(err.Error())
}
