package faultbook

import (
	"errors"
	"net/http"
)

// HTTPCode maps an error to an HTTP status code using its class first and
// its category as a fallback. A nil error maps to 200.
func HTTPCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var fbErr Error
	if !errors.As(err, &fbErr) {
		return http.StatusInternalServerError
	}

	switch fbErr.Class() {
	case ClassValidation:
		return http.StatusBadRequest
	case ClassNotFound:
		return http.StatusNotFound
	case ClassAlreadyExists, ClassConflict:
		return http.StatusConflict
	case ClassPermissionDenied:
		return http.StatusForbidden
	case ClassTimeout:
		return http.StatusGatewayTimeout
	case ClassCancelled:
		// Nginx's non-standard "client closed request".
		return 499
	case ClassUnavailable:
		return http.StatusServiceUnavailable
	case ClassExternal:
		return http.StatusBadGateway
	case ClassResourceExhausted:
		return http.StatusTooManyRequests
	case ClassNotImplemented:
		return http.StatusNotImplemented
	case ClassInternal, ClassPanic, ClassDataLoss:
		return http.StatusInternalServerError
	}

	switch fbErr.Category() {
	case CategoryUserInput:
		return http.StatusBadRequest
	case CategoryNetwork, CategoryAPI:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// ClassFromStatusCode maps an HTTP response status to a failure class.
// Successful statuses map to ClassUnknown.
func ClassFromStatusCode(code int) Class {
	switch {
	case code < 400:
		return ClassUnknown
	case code == http.StatusBadRequest:
		return ClassValidation
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ClassPermissionDenied
	case code == http.StatusNotFound, code == http.StatusGone:
		return ClassNotFound
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return ClassTimeout
	case code == http.StatusConflict:
		return ClassConflict
	case code == http.StatusTooManyRequests:
		return ClassResourceExhausted
	case code == 499:
		return ClassCancelled
	case code == http.StatusNotImplemented:
		return ClassNotImplemented
	case code == http.StatusBadGateway:
		return ClassExternal
	case code == http.StatusServiceUnavailable:
		return ClassUnavailable
	case code < 500:
		return ClassValidation
	default:
		return ClassInternal
	}
}
