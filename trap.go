package faultbook

import (
	"errors"
	"fmt"
)

// Trap runs fn and converts any panic into a ClassPanic error. The returned
// error is fn's own error when no panic occurs. A demo or handler guarded by
// Trap cannot take the process down.
func Trap(fn func() error) (err error) {
	defer RecoverInto(&err)
	return fn()
}

// RecoverInto recovers a panic into *errp. Meant to be deferred:
//
//	defer faultbook.RecoverInto(&err)
//
// The original error value in *errp is preserved when no panic occurred.
func RecoverInto(errp *error) {
	if r := recover(); r != nil {
		*errp = trappedPanic(r)
	}
}

// trappedPanic turns a recovered panic value into a fault. When the value is
// itself an error (runtime errors are), it becomes the cause so errors.As
// still reaches it.
func trappedPanic(r any) Error {
	cause, ok := r.(error)
	if ok {
		return newFault(5, cause, "recovered from panic",
			ClassPanic, SeverityCritical)
	}
	return newFault(5, nil, "recovered from panic",
		ClassPanic, SeverityCritical,
		"panic_value", valueToString(r),
		"panic_type", fmt.Sprintf("%T", r))
}

// IsPanic reports whether err originated from a trapped panic.
func IsPanic(err error) bool {
	var fbErr Error
	if errors.As(err, &fbErr) {
		return fbErr.Class() == ClassPanic
	}
	return false
}
