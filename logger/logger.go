package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool

	// level is shared by every core built here so it can change at runtime
	level = zap.NewAtomicLevelAt(zap.InfoLevel)

	// output is stderr: stdout carries the LSP stream in stdio mode
	output zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	// colorize is true when output is a terminal
	colorize = isTerminal(os.Stderr)
)

func init() {
	// Safe no-op logger until Initialize is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger with the given format and level
func Initialize(jsonOutput bool, lvl zapcore.Level) error {
	JSONOutput = jsonOutput
	level.SetLevel(lvl)

	var encoder zapcore.Encoder
	if jsonOutput {
		// JSON structured output for machine consumption
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = newConsoleEncoder(colorize)
	}

	Logger = zap.New(zapcore.NewCore(encoder, output, level)).Sugar()
	return nil
}

// SetOutput redirects log output; used by tests and the complete command
func SetOutput(w io.Writer) {
	output = zapcore.Lock(zapcore.AddSync(w))
	colorize = isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetLevel changes the active level of the global logger
func SetLevel(lvl zapcore.Level) {
	level.SetLevel(lvl)
}

// Level returns the active level
func Level() zapcore.Level {
	return level.Level()
}

// ParseLevel parses a config level name, e.g. "debug" or "warn"
func ParseLevel(name string) (zapcore.Level, error) {
	return zapcore.ParseLevel(name)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
