package faultbook

import (
	"errors"
	"time"
)

// ErrorToJSON builds a JSON-friendly representation of an error for report
// and HTTP surfaces. Plain errors yield only the message.
func ErrorToJSON(err error) map[string]any {
	if err == nil {
		return nil
	}

	var fbErr Error
	if !errors.As(err, &fbErr) {
		return map[string]any{"message": err.Error()}
	}

	out := map[string]any{
		"message": fbErr.Message(),
	}
	if id := fbErr.ID(); id != "" {
		out["id"] = id
	}
	if class := fbErr.Class(); class != ClassUnknown {
		out["class"] = class.String()
	}
	if category := fbErr.Category(); category != CategoryUnknown {
		out["category"] = category.String()
	}
	if severity := fbErr.Severity(); !severity.IsUnknown() {
		out["severity"] = severity.String()
	}
	if fbErr.IsRetryable() {
		out["retryable"] = true
	}
	if fields := FieldsToMap(fbErr.Fields()); len(fields) > 0 {
		out["fields"] = fields
	}
	if created := fbErr.Created(); !created.IsZero() {
		out["created"] = created.Format(time.RFC3339Nano)
	}
	if cause := fbErr.Unwrap(); cause != nil {
		out["cause"] = cause.Error()
	}
	if user := fbErr.Stack().UserFrames(); len(user) > 0 {
		frames := make([]string, len(user))
		for i, frame := range user {
			frames[i] = frame.String()
		}
		out["stack"] = frames
	}
	return out
}
