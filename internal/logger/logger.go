// Package logger wraps zap construction so binaries share one
// logging setup.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger carries the configured zap logger. Log is a no-op logger
// until Init is called, so it is always safe to use.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger whose Log field is a no-op logger.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the no-op logger with a production zap logger at the
// given level ("debug", "info", "warn", "error").
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	l.Log = log
	return nil
}
