package faultbook_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/faultbook/faultbook"
)

func TestTrapNoPanic(t *testing.T) {
	sentinel := errors.New("just an error")
	err := faultbook.Trap(func() error { return sentinel })
	if err != sentinel {
		t.Errorf("expected fn's own error back, got %v", err)
	}

	if err := faultbook.Trap(func() error { return nil }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestTrapPanicValue(t *testing.T) {
	err := faultbook.Trap(func() error {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from a trapped panic")
	}
	if !faultbook.IsPanic(err) {
		t.Error("expected IsPanic to be true")
	}
	if faultbook.Classify(err) != faultbook.ClassPanic {
		t.Errorf("expected panic class, got %s", faultbook.Classify(err))
	}
	if !strings.Contains(err.Error(), "panic_value=boom") {
		t.Errorf("expected the panic value in the message, got %s", err.Error())
	}
}

func TestTrapRuntimePanic(t *testing.T) {
	err := faultbook.Trap(func() error {
		var pages []int
		_ = pages[3]
		return nil
	})
	if err == nil {
		t.Fatal("expected an error from an out of range panic")
	}
	if !faultbook.IsPanic(err) {
		t.Error("expected IsPanic to be true")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected the runtime error as cause, got %s", err.Error())
	}
}

func TestTrapPreservesErrorCause(t *testing.T) {
	sentinel := errors.New("panicked error")
	err := faultbook.Trap(func() error {
		panic(sentinel)
	})
	if !errors.Is(err, sentinel) {
		t.Error("expected errors.Is to reach the panicked error")
	}
}

func TestRecoverInto(t *testing.T) {
	run := func() (err error) {
		defer faultbook.RecoverInto(&err)
		panic("inside")
	}
	if err := run(); !faultbook.IsPanic(err) {
		t.Errorf("expected a panic error, got %v", err)
	}

	clean := func() (err error) {
		defer faultbook.RecoverInto(&err)
		return errors.New("normal")
	}
	if err := clean(); err == nil || err.Error() != "normal" {
		t.Errorf("expected the original error preserved, got %v", err)
	}
}

func TestIsPanicPlainError(t *testing.T) {
	if faultbook.IsPanic(errors.New("plain")) {
		t.Error("expected false for a plain error")
	}
	if faultbook.IsPanic(faultbook.New("not a panic", faultbook.ClassInternal)) {
		t.Error("expected false for a non-panic fault")
	}
}
