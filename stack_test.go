package faultbook_test

import (
	"strings"
	"testing"

	"github.com/faultbook/faultbook"
)

func TestStackCaptured(t *testing.T) {
	err := faultbook.New("with stack")
	stack := err.Stack()
	if len(stack) == 0 {
		t.Fatal("expected a captured stack trace")
	}
	top := stack.TopUserFrame()
	if top == nil {
		t.Fatal("expected a user frame")
	}
	if top.Name != "TestStackCaptured" {
		t.Errorf("expected the test function on top, got %s", top.Name)
	}
	if !strings.HasSuffix(top.FileName, "stack_test.go") {
		t.Errorf("unexpected file name: %s", top.FileName)
	}
}

func TestStackDisabledGlobally(t *testing.T) {
	old := faultbook.GetStackTraceConfig()
	defer faultbook.SetStackTraceConfig(old)

	faultbook.SetStackTraceConfig(faultbook.NoStackTraceConfig())
	err := faultbook.New("no stack")
	if stack := err.Stack(); len(stack) != 0 {
		t.Errorf("expected no stack trace, got %d frames", len(stack))
	}
}

func TestStackPerErrorOverride(t *testing.T) {
	err := faultbook.New("trimmed",
		faultbook.StackTrace(&faultbook.StackTraceConfig{Enabled: true, ShowAllFrames: true, MaxFrames: 2}))
	if stack := err.Stack(); len(stack) > 2 {
		t.Errorf("expected at most 2 frames, got %d", len(stack))
	}

	err = faultbook.New("suppressed", faultbook.StackTrace(faultbook.NoStackTraceConfig()))
	if stack := err.Stack(); len(stack) != 0 {
		t.Errorf("expected no frames with a disabled override, got %d", len(stack))
	}
}

func TestStackInheritedFromCause(t *testing.T) {
	inner := newDeepError()
	outer := faultbook.Wrap(inner, "outer")

	top := outer.Stack().TopUserFrame()
	if top == nil {
		t.Fatal("expected a user frame")
	}
	// The wrap captures its own stack; the origin stays reachable on the cause.
	if innerTop := inner.Stack().TopUserFrame(); innerTop == nil || innerTop.Name != "newDeepError" {
		t.Errorf("expected the origin frame on the cause, got %v", innerTop)
	}
}

func newDeepError() faultbook.Error {
	return faultbook.New("deep")
}

func TestStackString(t *testing.T) {
	err := faultbook.New("formatted")
	s := err.Stack().String()
	if !strings.Contains(s, "TestStackString") {
		t.Errorf("expected the test function in %q", s)
	}
	full := err.StackFormat()
	if !strings.Contains(full, "stack_test.go:") {
		t.Errorf("expected file and line in %q", full)
	}
}

func TestFrameClassification(t *testing.T) {
	runtimeFrame := faultbook.Frame{FullName: "runtime.gopanic", File: "/usr/local/go/src/runtime/panic.go"}
	if !runtimeFrame.IsRuntime() {
		t.Error("expected a runtime frame")
	}
	if runtimeFrame.IsUser() {
		t.Error("runtime frames are not user code")
	}

	stdlibFrame := faultbook.Frame{FullName: "strconv.Atoi", File: "/usr/local/go/src/strconv/atoi.go", FileName: "atoi.go"}
	if !stdlibFrame.IsStandardLibrary() {
		t.Error("expected a stdlib frame")
	}

	userFrame := faultbook.Frame{
		FullName: "github.com/faultbook/faultbook/samples.openBook",
		File:     "/src/samples/filesystem.go",
		FileName: "filesystem.go",
	}
	if !userFrame.IsUser() {
		t.Error("expected a user frame")
	}

	testFrame := faultbook.Frame{FullName: "github.com/faultbook/faultbook.TestX", FileName: "x_test.go"}
	if !testFrame.IsTest() {
		t.Error("expected a test frame")
	}
}
