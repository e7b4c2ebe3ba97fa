package faultbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Limits applied to every fault to keep messages bounded no matter what the
// caller passes in.
const (
	// MaxMessageLength is the maximum length for error messages.
	MaxMessageLength = 1000
	// MaxFieldKeyLength is the maximum length for field keys.
	MaxFieldKeyLength = 128
	// MaxFieldValueLength is the maximum length for field values when converted to string.
	MaxFieldValueLength = 1024
	// MaxFieldsCount is the maximum number of key-value pairs on a single fault.
	MaxFieldsCount = 100
	// MaxStackDepth is the maximum number of captured stack frames.
	MaxStackDepth = 50

	// MissingFieldPlaceholder substitutes the value of an odd trailing key.
	MissingFieldPlaceholder = "<missing>"
)

// prepareFields normalizes raw varargs into an even-length pair list within caps.
func prepareFields(fields []any) []any {
	if len(fields) == 0 {
		return nil
	}

	maxElements := MaxFieldsCount * 2
	if len(fields) > maxElements {
		fields = fields[:maxElements]
	}

	if len(fields)%2 != 0 {
		result := make([]any, len(fields)+1)
		copy(result, fields)
		result[len(fields)] = MissingFieldPlaceholder
		return result
	}

	result := make([]any, len(fields))
	copy(result, fields)
	return result
}

// extractMeta pulls typed metadata values and option funcs out of the field
// varargs, returning the remaining plain key-value items.
func extractMeta(e *fault, fields []any) []any {
	plain := fields[:0:0]
	for _, f := range fields {
		switch v := f.(type) {
		case Class:
			e.class = v
		case Category:
			e.category = v
		case Severity:
			if v.IsValid() {
				e.severity = v
			}
		case Option:
			v(e)
		default:
			plain = append(plain, f)
		}
	}
	return plain
}

// truncateString cuts s to maxLen, appending an ellipsis marker when it was cut.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// valueToString converts any field value to a string without fmt for common types.
func valueToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FieldsToMap converts a pair list into a map for structured logging.
func FieldsToMap(fields []any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	result := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		result[valueToString(fields[i])] = fields[i+1]
	}
	return result
}
