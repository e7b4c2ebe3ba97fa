package faultbook

import (
	"strconv"
	"strings"
)

// List collects multiple errors with the same constructor API as the package.
// It doesn't implement the error interface itself; Err returns the combined
// error, which is nil for an empty list.
type List struct {
	errors []Error
}

// NewList creates a new error list with optional capacity.
func NewList(capacity ...int) *List {
	var c int
	if len(capacity) > 0 {
		c = capacity[0]
	}
	return &List{errors: make([]Error, 0, c)}
}

// Add adds an error to the list. Nil errors are ignored.
func (l *List) Add(err error) *List {
	if err == nil {
		return l
	}
	if fbErr, ok := err.(Error); ok {
		l.errors = append(l.errors, fbErr)
		return l
	}
	l.errors = append(l.errors, newFault(3, err, ""))
	return l
}

// New creates a new error and adds it to the list.
func (l *List) New(message string, fields ...any) *List {
	l.errors = append(l.errors, newFault(3, nil, message, fields...))
	return l
}

// Newf creates a new formatted error and adds it to the list.
func (l *List) Newf(format string, args ...any) *List {
	message, rest := formatMessage(format, args)
	l.errors = append(l.errors, newFault(3, nil, message, rest...))
	return l
}

// Wrap wraps an error and adds it to the list. A nil err adds nothing.
func (l *List) Wrap(err error, message string, fields ...any) *List {
	if err == nil {
		return l
	}
	l.errors = append(l.errors, newFault(3, err, message, fields...))
	return l
}

// Len returns the number of collected errors.
func (l *List) Len() int {
	return len(l.errors)
}

// Errors returns a copy of the collected errors.
func (l *List) Errors() []Error {
	out := make([]Error, len(l.errors))
	copy(out, l.errors)
	return out
}

// Clear removes all collected errors.
func (l *List) Clear() {
	l.errors = nil
}

// Err returns the combined error: nil for an empty list, the single error
// for a list of one, and a multi-error otherwise.
func (l *List) Err() error {
	switch len(l.errors) {
	case 0:
		return nil
	case 1:
		return l.errors[0]
	}
	errs := make([]error, len(l.errors))
	for i, err := range l.errors {
		errs[i] = err
	}
	return &multiError{errors: errs}
}

// multiError joins several errors into one.
type multiError struct {
	errors []error
}

// Error implements the error interface.
func (m *multiError) Error() string {
	var builder strings.Builder
	builder.WriteString(strconv.Itoa(len(m.errors)))
	builder.WriteString(" errors occurred: ")
	for i, err := range m.errors {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(err.Error())
	}
	return builder.String()
}

// Unwrap supports errors.Is and errors.As over all joined errors.
func (m *multiError) Unwrap() []error {
	return m.errors
}
