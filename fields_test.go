package faultbook

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPrepareFields(t *testing.T) {
	if got := prepareFields(nil); got != nil {
		t.Errorf("expected nil for no fields, got %v", got)
	}

	got := prepareFields([]any{"a", 1, "b"})
	if len(got) != 4 {
		t.Fatalf("expected odd list padded to 4, got %d", len(got))
	}
	if got[3] != MissingFieldPlaceholder {
		t.Errorf("expected placeholder, got %v", got[3])
	}

	huge := make([]any, MaxFieldsCount*2+10)
	for i := range huge {
		huge[i] = i
	}
	if got := prepareFields(huge); len(got) != MaxFieldsCount*2 {
		t.Errorf("expected capped at %d elements, got %d", MaxFieldsCount*2, len(got))
	}
}

func TestPrepareFieldsCopies(t *testing.T) {
	in := []any{"a", 1}
	out := prepareFields(in)
	out[1] = 2
	if in[1] != 1 {
		t.Error("expected prepareFields to copy the input")
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("expected untouched string, got %q", got)
	}
	got := truncateString(strings.Repeat("x", 20), 10)
	if len(got) != 10 || !strings.HasSuffix(got, "...") {
		t.Errorf("expected 10 chars ending in ellipsis, got %q", got)
	}
	if got := truncateString("abcdef", 2); got != "ab" {
		t.Errorf("expected hard cut for tiny limits, got %q", got)
	}
}

func TestValueToString(t *testing.T) {
	testCases := []struct {
		value    any
		expected string
	}{
		{"text", "text"},
		{[]byte("bytes"), "bytes"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint(9), "9"},
		{3.5, "3.5"},
		{true, "true"},
		{time.Second * 90, "1m30s"},
		{[]string{"a", "b"}, "a,b"},
		{errors.New("oops"), "oops"},
		{nil, "<nil>"},
		{Class("validation"), "validation"},
	}
	for _, tc := range testCases {
		if got := valueToString(tc.value); got != tc.expected {
			t.Errorf("value %v: expected %q, got %q", tc.value, tc.expected, got)
		}
	}
}

func TestFieldsToMap(t *testing.T) {
	if got := FieldsToMap(nil); got != nil {
		t.Errorf("expected nil map, got %v", got)
	}

	got := FieldsToMap([]any{"page", 600, "title", "Moby Dick"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got["page"] != 600 || got["title"] != "Moby Dick" {
		t.Errorf("unexpected map: %v", got)
	}
}

func TestCountFormatVerbs(t *testing.T) {
	testCases := []struct {
		format   string
		expected int
	}{
		{"no verbs", 0},
		{"one %s verb", 1},
		{"%s and %d", 2},
		{"escaped %% only", 0},
		{"%s with %% and %d", 2},
		{"trailing %", 0},
	}
	for _, tc := range testCases {
		if got := countFormatVerbs(tc.format); got != tc.expected {
			t.Errorf("format %q: expected %d, got %d", tc.format, tc.expected, got)
		}
	}
}

func TestExtractMeta(t *testing.T) {
	e := &fault{}
	plain := extractMeta(e, []any{
		ClassTimeout, CategoryNetwork, SeverityHigh, "key", "value",
	})
	if e.class != ClassTimeout || e.category != CategoryNetwork || e.severity != SeverityHigh {
		t.Errorf("metadata not extracted: %+v", e)
	}
	if len(plain) != 2 {
		t.Errorf("expected 2 plain fields, got %v", plain)
	}
}

func TestExtractMetaInvalidSeverity(t *testing.T) {
	e := &fault{}
	extractMeta(e, []any{Severity("made-up")})
	if e.severity != SeverityUnknown {
		t.Errorf("expected invalid severity ignored, got %s", e.severity)
	}
}
