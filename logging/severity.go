package logging

import "go.uber.org/zap/zapcore"

// Severity is a log level name, independent of zap's own level type so
// callers and config files don't need to import zapcore directly.
type Severity string

const (
	DEBUG Severity = "DEBUG"
	INFO  Severity = "INFO"
	WARN  Severity = "WARN"
	ERROR Severity = "ERROR"
)

// ToZapLevel converts a Severity to the zap level it maps onto. Unknown
// values default to INFO.
func (s Severity) ToZapLevel() zapcore.Level {
	switch s {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
