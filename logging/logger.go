// Package logging wraps zap with the sink/rotation conventions matchkit's
// lineage uses: a stderr-only console sink plus an optional rotating file
// sink, and a small static-field set attached to every entry.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures a rotating file sink via lumberjack.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// Config holds logger construction parameters.
type Config struct {
	Service      string
	Environment  string
	Level        Severity
	File         *FileConfig // nil disables the file sink
	StaticFields map[string]any
}

// DefaultConfig returns a console-only, INFO-level configuration for service.
func DefaultConfig(service string) *Config {
	return &Config{
		Service:     service,
		Environment: "development",
		Level:       INFO,
	}
}

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap *zap.Logger
}

// New builds a Logger from cfg. The console sink always writes to stderr,
// matching the convention that stdout is reserved for program output.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmt.Errorf("logging: config cannot be nil")
	}

	level := cfg.Level
	if level == "" {
		level = INFO
	}
	atomicLevel := zap.NewAtomicLevelAt(level.ToZapLevel())

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stderr), atomicLevel),
	}

	if cfg.File != nil {
		if cfg.File.Path == "" {
			return nil, fmt.Errorf("logging: file sink requires a path")
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxAge:     cfg.File.MaxAgeDays,
			MaxBackups: cfg.File.MaxBackups,
			Compress:   cfg.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), atomicLevel))
	}

	core := zapcore.NewTee(cores...)

	opts := []zap.Option{zap.AddCaller()}
	fields := []zap.Field{zap.String("service", cfg.Service)}
	if cfg.Environment != "" {
		fields = append(fields, zap.String("environment", cfg.Environment))
	}
	for k, v := range cfg.StaticFields {
		fields = append(fields, zap.Any(k, v))
	}
	opts = append(opts, zap.Fields(fields...))

	return &Logger{zap: zap.New(core, opts...)}, nil
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.zap.Sync() }
