// Package logbook is the shared logging helper for failure demonstrations.
// It prints arbitrary values, tags errors as expected or unexpected the way
// a demo narrates its outcome, and draws line separators between sections.
package logbook

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/faultbook/faultbook"
)

// DefaultSeparatorLength is the length of a line separator when none is given.
const DefaultSeparatorLength = 40

const separatorChar = "-"

// Options configures a Logger.
type Options struct {
	// Level is a zap level name ("debug", "info", "warn", "error").
	// Empty means info.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
}

// Logger wraps zap with the expected/unexpected error discipline.
type Logger struct {
	z *zap.Logger
}

// New builds a Logger from the options.
func New(opts Options) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, faultbook.Wrap(err, "parse log level",
				faultbook.ClassValidation, faultbook.CategoryConfig,
				"level", opts.Level)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, faultbook.Wrap(err, "build logger", faultbook.CategoryConfig)
	}
	return &Logger{z: z}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Log outputs any kind of value. Errors are treated as unexpected.
func (l *Logger) Log(value any) {
	switch v := value.(type) {
	case error:
		l.Unexpected(v)
	case string:
		l.z.Info(v)
	default:
		l.z.Info("value", zap.Any("value", v))
	}
}

// Expected logs an error that a demonstration set out to provoke.
func (l *Logger) Expected(err error) {
	if err == nil {
		return
	}
	l.z.Info("[EXPECTED] "+err.Error(), ErrFields(err)...)
}

// Unexpected logs an error that was not supposed to happen and feeds it to
// the faultbook gatherer.
func (l *Logger) Unexpected(err error) {
	if err == nil {
		return
	}
	fields := ErrFields(err)
	var fbErr faultbook.Error
	if errors.As(err, &fbErr) {
		if stack := fbErr.Stack(); len(stack) > 0 {
			fields = append(fields, zap.String("stack", stack.String()))
		}
	}
	l.z.Error("[UNEXPECTED] "+err.Error(), fields...)
	faultbook.AddToGatherer(err)
}

// Info logs an informational message with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.z.Info(msg, fields...)
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

// Warn logs a warning with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.z.Warn(msg, fields...)
}

// LineSeparator outputs a dashed line separator of the given length,
// DefaultSeparatorLength when none is given.
func (l *Logger) LineSeparator(length ...int) {
	n := DefaultSeparatorLength
	if len(length) > 0 && length[0] > 0 {
		n = length[0]
	}
	l.z.Info(strings.Repeat(separatorChar, n))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// ErrFields extracts zap fields from an error's fault metadata.
func ErrFields(err error) []zap.Field {
	var fbErr faultbook.Error
	if !errors.As(err, &fbErr) {
		return nil
	}

	fields := make([]zap.Field, 0, 6)
	if class := fbErr.Class(); class != faultbook.ClassUnknown {
		fields = append(fields, zap.String("class", class.String()))
	}
	if category := fbErr.Category(); category != faultbook.CategoryUnknown {
		fields = append(fields, zap.String("category", category.String()))
	}
	if severity := fbErr.Severity(); !severity.IsUnknown() {
		fields = append(fields, zap.String("severity", severity.String()))
	}
	if fbErr.IsRetryable() {
		fields = append(fields, zap.Bool("retryable", true))
	}
	for key, value := range faultbook.FieldsToMap(fbErr.Fields()) {
		fields = append(fields, zap.Any(key, value))
	}
	return fields
}
