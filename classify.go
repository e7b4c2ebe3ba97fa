package faultbook

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"syscall"
	"time"
)

// Classify maps an error to its failure class. Faultbook errors report their
// own class; standard library errors are recognized by sentinel and by type.
// Everything unrecognized is ClassUnknown.
func Classify(err error) Class {
	if err == nil {
		return ClassUnknown
	}

	var fbErr Error
	if errors.As(err, &fbErr) {
		if class := fbErr.Class(); class != ClassUnknown {
			return class
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case errors.Is(err, context.Canceled):
		return ClassCancelled
	case errors.Is(err, fs.ErrNotExist):
		return ClassNotFound
	case errors.Is(err, fs.ErrPermission):
		return ClassPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return ClassAlreadyExists
	case errors.Is(err, sql.ErrNoRows):
		return ClassNotFound
	case errors.Is(err, io.ErrUnexpectedEOF):
		return ClassDataLoss
	case errors.Is(err, syscall.ECONNREFUSED):
		return ClassUnavailable
	case errors.Is(err, syscall.ECONNRESET), errors.Is(err, syscall.EPIPE):
		return ClassUnavailable
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Op == "parse" {
			return ClassValidation
		}
		if inner := Classify(urlErr.Err); inner != ClassUnknown {
			return inner
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return ClassTimeout
		}
		if dnsErr.IsNotFound {
			return ClassNotFound
		}
		return ClassUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTimeout
	}

	var (
		jsonSyntaxErr *json.SyntaxError
		jsonTypeErr   *json.UnmarshalTypeError
		numErr        *strconv.NumError
		parseErr      *time.ParseError
	)
	switch {
	case errors.As(err, &jsonSyntaxErr),
		errors.As(err, &jsonTypeErr),
		errors.As(err, &numErr),
		errors.As(err, &parseErr):
		return ClassValidation
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ClassUnavailable
	}

	return ClassUnknown
}
