package faultbook

// Class describes what kind of failure an error represents.
type Class string

const (
	// ClassValidation indicates an error due to invalid input.
	ClassValidation Class = "validation"
	// ClassNotFound indicates that a resource was not found.
	ClassNotFound Class = "not_found"
	// ClassAlreadyExists indicates that a resource already exists.
	ClassAlreadyExists Class = "already_exists"
	// ClassPermissionDenied indicates a permission error.
	ClassPermissionDenied Class = "permission_denied"
	// ClassTimeout indicates that an operation timed out.
	ClassTimeout Class = "timeout"
	// ClassCancelled indicates that an operation was cancelled.
	ClassCancelled Class = "cancelled"
	// ClassConflict indicates a conflict with the current state of a resource.
	ClassConflict Class = "conflict"
	// ClassUnavailable indicates that a service or peer is unavailable.
	ClassUnavailable Class = "unavailable"
	// ClassExternal indicates an error reported by an external system.
	ClassExternal Class = "external"
	// ClassDataLoss indicates truncated or corrupted data.
	ClassDataLoss Class = "data_loss"
	// ClassResourceExhausted indicates that a resource has been exhausted.
	ClassResourceExhausted Class = "resource_exhausted"
	// ClassNotImplemented indicates that a feature is not implemented.
	ClassNotImplemented Class = "not_implemented"
	// ClassInternal indicates a generic internal error.
	ClassInternal Class = "internal"
	// ClassPanic indicates an error recovered from a runtime panic.
	ClassPanic Class = "panic"
	// ClassUnknown represents an unknown error class.
	ClassUnknown Class = ""
)

// String returns the string representation of Class.
func (c Class) String() string {
	return string(c)
}

// Category describes the area of the system an error belongs to.
type Category string

const (
	// CategoryCollections indicates a failure while working with slices, maps or other containers.
	CategoryCollections Category = "collections"
	// CategoryConversion indicates a type or value conversion failure.
	CategoryConversion Category = "conversion"
	// CategoryEncoding indicates an encoding or decoding failure.
	CategoryEncoding Category = "encoding"
	// CategoryFilesystem indicates a filesystem-related failure.
	CategoryFilesystem Category = "filesystem"
	// CategoryNetwork indicates a network-related failure.
	CategoryNetwork Category = "network"
	// CategoryAPI indicates an API-related failure.
	CategoryAPI Category = "api"
	// CategoryDatabase indicates a database-related failure.
	CategoryDatabase Category = "database"
	// CategoryConcurrency indicates a failure in concurrent coordination.
	CategoryConcurrency Category = "concurrency"
	// CategoryUserInput indicates a failure caused by invalid user input.
	CategoryUserInput Category = "user_input"
	// CategoryConfig indicates a configuration failure.
	CategoryConfig Category = "config"
	// CategoryUnknown represents an unknown error category.
	CategoryUnknown Category = ""
)

// String returns the string representation of Category.
func (c Category) String() string {
	return string(c)
}

// Severity represents the severity level of an error.
type Severity string

// Predefined error severity levels.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
	SeverityUnknown  Severity = ""
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid checks if the severity is one of the predefined values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityUnknown, SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	default:
		return false
	}
}

// Label returns a short, human-readable label for the severity level.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "[CRIT]"
	case SeverityHigh:
		return "[HIGH]"
	case SeverityMedium:
		return "[MED]"
	case SeverityLow:
		return "[LOW]"
	case SeverityInfo:
		return "[INFO]"
	case SeverityUnknown:
		fallthrough
	default:
		return ""
	}
}

// IsUnknown returns true if the severity is Unknown.
func (s Severity) IsUnknown() bool {
	return s == SeverityUnknown
}
