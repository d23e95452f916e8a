package logger

import (
	"os"

	"github.com/michaelbartlett17/loyalty-ledger/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the zap-backed logger
type Options struct {
	Level string // debug / info / warn / error
	JSON  bool   // JSON output, console otherwise

	// File enables writing to a rotated log file alongside stdout
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ZapLogger implements the core.Logger port using zap
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a logger that writes to stdout and, when a file is
// configured, to a size-rotated log file as well
func NewZapLogger(opts Options) core.Logger {
	var level zapcore.Level
	if err := level.Set(opts.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.TimeKey = "timestamp"
		cfg.MessageKey = "message"
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxInt(1, opts.MaxSizeMB),
			MaxBackups: maxInt(0, opts.MaxBackups),
			MaxAge:     maxInt(0, opts.MaxAgeDays),
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
	}

	return &ZapLogger{logger: zap.New(zapcore.NewTee(cores...))}
}

// NewDefaultLogger creates a console logger for development and tests
func NewDefaultLogger() core.Logger {
	return NewZapLogger(Options{Level: "debug"})
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
