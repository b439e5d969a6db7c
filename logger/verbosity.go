package logger

import "go.uber.org/zap/zapcore"

// Counts of the -v flag. Without it the configured log.level applies.
const (
	VerbosityUser  = 0 // configured level
	VerbosityInfo  = 1 // -v: startup, transports, activation
	VerbosityDebug = 2 // -vv: per-request completion details
	VerbosityTrace = 3 // -vvv: glsp protocol tracing
	VerbosityAll   = 4 // -vvvv: full document text on open and change
)

// VerbosityToLevel maps a -v count to a zap level. Zap has nothing below
// debug, so everything from -vv up is DebugLevel; the higher counts only
// switch on extra output via ShouldLogTrace and ShouldLogAll.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity >= VerbosityDebug:
		return zapcore.DebugLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// ShouldLogTrace reports whether glsp protocol tracing is on (-vvv)
func ShouldLogTrace(verbosity int) bool {
	return verbosity >= VerbosityTrace
}

// ShouldLogAll reports whether document text is logged (-vvvv)
func ShouldLogAll(verbosity int) bool {
	return verbosity >= VerbosityAll
}
