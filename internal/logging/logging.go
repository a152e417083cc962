// Package logging provides the operational log. Discovery warnings for
// best-effort enrichment (tag lookups, partial API listings) go here, never
// into the rendered output.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Initialize sets up the logger. Verbose lowers the level to debug.
func Initialize(verbose bool) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	logger = zap.New(core)
}

// L returns the current logger.
func L() *zap.Logger { return logger }

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Sync()
}
