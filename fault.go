package faultbook

import (
	"fmt"
	"time"
)

// Error is the interface implemented by all faultbook errors.
type Error interface {
	error

	// Message returns the message of this error without fields and cause.
	Message() string
	// ID returns the identifier of the error, if one was set.
	ID() string
	// Class returns the failure class of the error.
	Class() Class
	// Category returns the system area the error belongs to.
	Category() Category
	// Severity returns the severity level of the error.
	Severity() Severity
	// IsRetryable reports whether the operation may be retried.
	IsRetryable() bool
	// Fields returns the key-value pairs attached to the error.
	Fields() []any
	// Created returns the creation timestamp.
	Created() time.Time

	// Stack returns the resolved stack trace of the error origin.
	Stack() Stack
	// StackFormat returns the stack trace as a multi-line string.
	StackFormat() string

	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
	// Is reports whether this error matches the target.
	Is(target error) bool
}

// fault is the single error implementation behind the Error interface.
type fault struct {
	cause   error  // Wrapped error, if any
	message string // Base message

	id        string   // Optional identifier for errors.Is matching
	class     Class    // Failure class
	category  Category // System area
	severity  Severity // Severity level
	retryable bool     // Retryable flag
	fields    []any    // Key-value fields

	created time.Time
	stack   rawStack         // Program counters, resolved lazily
	cfg     *StackTraceConfig // Per-error override, nil means global
}

// newFault creates a fault, extracting typed metadata from the field varargs.
// skip counts stack frames to drop above the caller of the public constructor.
func newFault(skip int, cause error, message string, fields ...any) *fault {
	e := &fault{
		cause:   cause,
		message: truncateString(message, MaxMessageLength),
		created: time.Now(),
	}
	e.fields = prepareFields(extractMeta(e, fields))
	if e.stack == nil {
		e.stack = captureStack(skip)
	}
	return e
}

// Error implements the error interface.
func (e *fault) Error() string {
	out := buildFieldsMessage(e.message, e.fields)
	if label := e.severity.Label(); label != "" && out != "" {
		out = label + " " + out
	}
	if e.cause != nil {
		if out == "" {
			return e.cause.Error()
		}
		return out + ": " + e.cause.Error()
	}
	return out
}

// Unwrap implements the errors.Unwrap interface.
func (e *fault) Unwrap() error {
	return e.cause
}

// Message returns the message of this error without fields and cause.
func (e *fault) Message() string {
	if e.message != "" {
		return e.message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return ""
}

// ID returns the error identifier, looking through the cause chain.
func (e *fault) ID() string {
	if e.id != "" {
		return e.id
	}
	if cause, ok := e.cause.(Error); ok {
		return cause.ID()
	}
	return ""
}

// Class returns the failure class, looking through the cause chain.
func (e *fault) Class() Class {
	if e.class != ClassUnknown {
		return e.class
	}
	if cause, ok := e.cause.(Error); ok {
		return cause.Class()
	}
	return ClassUnknown
}

// Category returns the system area, looking through the cause chain.
func (e *fault) Category() Category {
	if e.category != CategoryUnknown {
		return e.category
	}
	if cause, ok := e.cause.(Error); ok {
		return cause.Category()
	}
	return CategoryUnknown
}

// Severity returns the severity level, looking through the cause chain.
func (e *fault) Severity() Severity {
	if e.severity != SeverityUnknown {
		return e.severity
	}
	if cause, ok := e.cause.(Error); ok {
		return cause.Severity()
	}
	return SeverityUnknown
}

// IsRetryable reports whether the operation may be retried.
func (e *fault) IsRetryable() bool {
	if e.retryable {
		return true
	}
	if cause, ok := e.cause.(Error); ok {
		return cause.IsRetryable()
	}
	return false
}

// Fields returns a copy of all key-value pairs, own fields first, then the
// fields of wrapped faultbook errors.
func (e *fault) Fields() []any {
	var causeFields []any
	if cause, ok := e.cause.(Error); ok {
		causeFields = cause.Fields()
	}
	if len(e.fields) == 0 && len(causeFields) == 0 {
		return nil
	}
	fields := make([]any, 0, len(e.fields)+len(causeFields))
	fields = append(fields, e.fields...)
	fields = append(fields, causeFields...)
	return fields
}

// Created returns the creation timestamp of the error.
func (e *fault) Created() time.Time {
	return e.created
}

// Stack returns the resolved stack trace of the error origin. When this error
// has no captured stack (e.g. a plain wrap), the cause's stack is used.
func (e *fault) Stack() Stack {
	if e.stack.isEmpty() {
		if cause, ok := e.cause.(Error); ok {
			return cause.Stack()
		}
		return nil
	}
	cfg := e.cfg
	if cfg == nil {
		cfg = GetStackTraceConfig()
	}
	return e.stack.resolve(cfg)
}

// StackFormat returns the stack trace as a multi-line string.
func (e *fault) StackFormat() string {
	return e.Stack().FormatFull()
}

// Is reports whether this error matches the target.
//
// It is designed for use by the standard errors.Is function. When both sides
// carry a non-empty ID, the IDs decide. Otherwise the match falls back to the
// message, and for everything else errors.Is keeps walking the Unwrap chain.
func (e *fault) Is(target error) bool {
	if target == nil {
		return false
	}
	if other, ok := target.(Error); ok {
		if e.ID() != "" && other.ID() != "" {
			return e.ID() == other.ID()
		}
		return e.message != "" && e.message == other.Message()
	}
	return false
}

// Format implements fmt.Formatter. The %+v verb appends the stack trace.
func (e *fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprint(s, e.Error())
		if s.Flag('+') {
			if stack := e.Stack(); len(stack) > 0 {
				fmt.Fprint(s, "\nStack trace:\n")
				fmt.Fprint(s, stack.FormatFull())
			}
		}
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
