package faultbook

// Template binds a message format to predefined metadata so that whole
// families of errors are created consistently.
type Template struct {
	format string
	opts   []any
}

// NewTemplate creates a template from a message format and predefined
// metadata (classes, categories, severities, options).
func NewTemplate(format string, opts ...any) *Template {
	return &Template{format: format, opts: opts}
}

// New creates an error from the template. Arguments beyond the format verbs
// become fields and may override the template's metadata.
func (t *Template) New(args ...any) Error {
	message, rest := formatMessage(t.format, args)
	return newFault(3, nil, message, mergeOpts(t.opts, rest)...)
}

// Wrap wraps an existing error with the template's message and metadata.
// Returns nil when err is nil.
func (t *Template) Wrap(err error, args ...any) Error {
	if err == nil {
		return nil
	}
	message, rest := formatMessage(t.format, args)
	return newFault(3, err, message, mergeOpts(t.opts, rest)...)
}

// mergeOpts puts template metadata first so per-call values win.
func mergeOpts(opts, fields []any) []any {
	if len(opts) == 0 {
		return fields
	}
	merged := make([]any, 0, len(opts)+len(fields))
	merged = append(merged, opts...)
	merged = append(merged, fields...)
	return merged
}

// Predefined error templates.
var (
	// ValidationError creates a new validation error.
	ValidationError = NewTemplate("invalid %s",
		ClassValidation,
		CategoryUserInput,
		SeverityLow,
	)

	// NotFoundError creates a new not found error.
	NotFoundError = NewTemplate("%s not found",
		ClassNotFound,
		SeverityMedium,
	)

	// TimeoutError creates a new timeout error.
	TimeoutError = NewTemplate("%s timed out",
		ClassTimeout,
		SeverityMedium,
	)

	// NetworkError creates a new network error.
	NetworkError = NewTemplate("network error: %s",
		ClassUnavailable,
		CategoryNetwork,
		SeverityHigh,
	)

	// DatabaseError creates a new database error.
	DatabaseError = NewTemplate("database error: %s",
		CategoryDatabase,
		SeverityHigh,
	)
)
