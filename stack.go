package faultbook

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

var stdlibPrefixes = []string{
	"runtime.", "testing.", "fmt.", "strings.", "strconv.", "time.",
	"context.", "sync.", "os.", "io.", "net.", "encoding.", "errors.",
	"database.", "reflect.", "sort.", "math.", "text.", "net/http.",
}

var uselessFrames = []string{
	"runtime.main",
	"runtime.goexit",
	"runtime.gopanic",
	"runtime.deferreturn",
}

// StackTraceConfig controls what information is included in stack traces.
type StackTraceConfig struct {
	Enabled       bool // Whether to capture and show stack traces
	ShowAllFrames bool // Whether to include runtime and stdlib frames
	MaxFrames     int  // Maximum number of frames to show (0 = all)
}

// DevelopmentStackTraceConfig returns the configuration used during development.
func DevelopmentStackTraceConfig() *StackTraceConfig {
	return &StackTraceConfig{
		Enabled:       true,
		ShowAllFrames: true,
	}
}

// ProductionStackTraceConfig returns a trimmed configuration for production logs.
func ProductionStackTraceConfig() *StackTraceConfig {
	return &StackTraceConfig{
		Enabled:   true,
		MaxFrames: 10,
	}
}

// NoStackTraceConfig returns a configuration that completely disables stack traces.
func NoStackTraceConfig() *StackTraceConfig {
	return &StackTraceConfig{}
}

var (
	globalStackTraceConfig = DevelopmentStackTraceConfig()
	cfgMutex               sync.Mutex
)

// SetStackTraceConfig sets the global stack trace configuration.
func SetStackTraceConfig(config *StackTraceConfig) {
	if config == nil {
		config = NoStackTraceConfig()
	}
	cfgMutex.Lock()
	defer cfgMutex.Unlock()
	globalStackTraceConfig = config
}

// GetStackTraceConfig returns the current global stack trace configuration.
func GetStackTraceConfig() *StackTraceConfig {
	cfgMutex.Lock()
	defer cfgMutex.Unlock()
	return globalStackTraceConfig
}

// rawStack holds program counters only; frames are resolved on demand.
type rawStack []uintptr

// captureStack captures up to MaxStackDepth program counters, skipping the
// given number of frames. Returns nil when capture is disabled globally.
func captureStack(skip int) rawStack {
	if !GetStackTraceConfig().Enabled {
		return nil
	}
	pcs := make([]uintptr, MaxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}
	return pcs[:n]
}

// isEmpty reports whether no program counters were captured.
func (s rawStack) isEmpty() bool {
	return len(s) == 0
}

// resolve turns raw program counters into human-readable frames.
func (s rawStack) resolve(cfg *StackTraceConfig) Stack {
	if len(s) == 0 || cfg == nil || !cfg.Enabled {
		return nil
	}

	frames := runtime.CallersFrames(s)
	stack := make(Stack, 0, len(s))
	for {
		fr, more := frames.Next()
		frame := newFrame(fr)
		if !frame.isUseless() {
			if cfg.ShowAllFrames || frame.IsUser() {
				stack = append(stack, frame)
			}
		}
		if !more {
			break
		}
	}

	if cfg.MaxFrames > 0 && len(stack) > cfg.MaxFrames {
		stack = stack[:cfg.MaxFrames]
	}
	return stack
}

// Frame stores a single stack frame's runtime information in readable form.
type Frame struct {
	Name     string // Function name (e.g. "openBook")
	FullName string // Full function name (e.g. "github.com/faultbook/faultbook/samples.openBook")
	Package  string // Package name (e.g. "samples")
	File     string // Full file path
	FileName string // Just the file name (e.g. "fileio.go")
	Line     int    // Line number
}

func newFrame(fr runtime.Frame) Frame {
	name := fr.Function
	short := name
	pkg := ""
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		short = name[idx+1:]
	}
	if dot := strings.Index(short, "."); dot >= 0 {
		pkg = short[:dot]
		short = short[dot+1:]
	}
	return Frame{
		Name:     short,
		FullName: name,
		Package:  pkg,
		File:     fr.File,
		FileName: filepath.Base(fr.File),
		Line:     fr.Line,
	}
}

// String returns a compact representation of the stack frame.
func (f Frame) String() string {
	return f.Name + " (" + f.FileName + ":" + strconv.Itoa(f.Line) + ")"
}

// FormatFull returns a detailed two-line representation of the stack frame.
func (f Frame) FormatFull() string {
	return "\t" + f.FullName + "\n\t\t" + f.File + ":" + strconv.Itoa(f.Line)
}

// IsRuntime returns true if this frame is from the Go runtime.
func (f Frame) IsRuntime() bool {
	return strings.HasPrefix(f.FullName, "runtime.") || strings.Contains(f.File, "runtime/")
}

// IsStandardLibrary returns true if this frame is from the Go standard library.
func (f Frame) IsStandardLibrary() bool {
	if f.FullName == "" {
		return false
	}
	// Packages with a domain before the first slash are never stdlib.
	if idx := strings.Index(f.FullName, "/"); idx > 0 {
		if strings.Contains(f.FullName[:idx], ".") {
			return false
		}
	}
	for _, prefix := range stdlibPrefixes {
		if strings.HasPrefix(f.FullName, prefix) {
			return true
		}
	}
	return false
}

// IsTest returns true if this frame is from test code.
func (f Frame) IsTest() bool {
	return strings.HasSuffix(f.FileName, "_test.go") || strings.Contains(f.File, "testing/")
}

// isInternal reports whether the frame comes from faultbook itself.
func (f Frame) isInternal() bool {
	return strings.Contains(f.FullName, "github.com/faultbook/faultbook.") && !f.IsTest()
}

// IsUser returns true if this frame represents user code.
func (f Frame) IsUser() bool {
	return !f.IsRuntime() && !f.IsStandardLibrary() && !f.isInternal()
}

func (f Frame) isUseless() bool {
	for _, name := range uselessFrames {
		if f.FullName == name {
			return true
		}
	}
	return false
}

// Stack is a resolved collection of stack frames.
type Stack []Frame

// String returns a single-line arrow-joined representation of the stack.
func (s Stack) String() string {
	var builder strings.Builder
	builder.Grow(len(s) * 50)
	for i, frame := range s {
		if i > 0 {
			builder.WriteString(" -> ")
		}
		builder.WriteString(frame.String())
	}
	return builder.String()
}

// FormatFull returns a detailed multi-line stack trace.
func (s Stack) FormatFull() string {
	var builder strings.Builder
	builder.Grow(len(s) * 100)
	for i, frame := range s {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(frame.FormatFull())
	}
	return builder.String()
}

// UserFrames returns only the user code frames.
func (s Stack) UserFrames() Stack {
	userFrames := make(Stack, 0, len(s))
	for _, frame := range s {
		if frame.IsUser() {
			userFrames = append(userFrames, frame)
		}
	}
	return userFrames
}

// TopUserFrame returns the topmost user code frame, where the error likely
// originated, or nil if there is none.
func (s Stack) TopUserFrame() *Frame {
	for i := range s {
		if s[i].IsUser() {
			return &s[i]
		}
	}
	return nil
}
