// Package faultbook provides structured errors for cataloguing and
// demonstrating failure modes: typed classes and categories, severities,
// key-value fields, lazy stack traces and panic trapping.
//
// Metadata is passed right inside the field varargs:
//
//	err := faultbook.New("page out of range",
//		faultbook.ClassValidation, faultbook.CategoryCollections,
//		"page", 600, "max", 488)
//
// Typed values (Class, Category, Severity) and options (ID, Retryable) are
// extracted as metadata; everything else forms key=value pairs appended to
// the message.
package faultbook

import "fmt"

// Option mutates a fault during construction. Options are passed inside the
// field varargs of the constructors.
type Option func(*fault)

// ID sets a custom identifier for the error. Two errors with the same ID
// match under errors.Is.
func ID(id string) Option {
	return func(e *fault) {
		e.id = truncateString(id, MaxFieldKeyLength)
	}
}

// Retryable marks the error as retryable.
func Retryable() Option {
	return func(e *fault) {
		e.retryable = true
	}
}

// StackTrace overrides the stack trace configuration for this error only.
func StackTrace(cfg *StackTraceConfig) Option {
	return func(e *fault) {
		e.cfg = cfg
	}
}

// New creates a new error with optional fields and metadata.
func New(message string, fields ...any) Error {
	return newFault(3, nil, message, fields...)
}

// Newf creates a new error with a formatted message. Arguments beyond the
// format verbs become fields and metadata.
func Newf(format string, args ...any) Error {
	message, rest := formatMessage(format, args)
	return newFault(3, nil, message, rest...)
}

// Wrap wraps an existing error with additional context. Returns nil when
// err is nil, so it can be used unconditionally on return values.
func Wrap(err error, message string, fields ...any) Error {
	if err == nil {
		return nil
	}
	return newFault(3, err, message, fields...)
}

// Wrapf wraps an existing error with a formatted message. Arguments beyond
// the format verbs become fields and metadata. Returns nil when err is nil.
func Wrapf(err error, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	message, rest := formatMessage(format, args)
	return newFault(3, err, message, rest...)
}

// WrapEmpty turns any error into a faultbook error without adding a message.
// Returns nil when err is nil.
func WrapEmpty(err error, fields ...any) Error {
	if err == nil {
		return nil
	}
	if fbErr, ok := err.(Error); ok && len(fields) == 0 {
		return fbErr
	}
	return newFault(3, err, "", fields...)
}

// formatMessage formats the message with as many args as the format string
// has verbs and returns the remaining args untouched.
func formatMessage(format string, args []any) (string, []any) {
	verbs := countFormatVerbs(format)
	if verbs == 0 {
		return format, args
	}
	if verbs > len(args) {
		verbs = len(args)
	}
	return fmt.Sprintf(format, args[:verbs]...), args[verbs:]
}

// countFormatVerbs counts the number of format verbs in a format string.
func countFormatVerbs(format string) int {
	count := 0
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			if format[i+1] != '%' {
				count++
			}
			i++
		}
	}
	return count
}
