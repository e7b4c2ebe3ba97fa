package logbook_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/logbook"
)

func newObserved(t *testing.T) (*logbook.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return logbook.FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	log, err := logbook.New(logbook.Options{Level: "debug", Development: true})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = logbook.New(logbook.Options{Level: "chatty"})
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassValidation, faultbook.Classify(err))
}

func TestExpected(t *testing.T) {
	log, logs := newObserved(t)

	log.Expected(faultbook.New("page out of range",
		faultbook.ClassValidation, "page", 600))
	log.Expected(nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "[EXPECTED] page out of range")
	assert.Equal(t, "validation", entries[0].ContextMap()["class"])
}

func TestUnexpected(t *testing.T) {
	faultbook.ClearGatheredErrors()
	faultbook.EnableGatherer()
	defer faultbook.DisableGatherer()

	log, logs := newObserved(t)

	log.Unexpected(faultbook.New("disk exploded", faultbook.ClassInternal))
	log.Unexpected(nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, "[UNEXPECTED] ")
	assert.Contains(t, entries[0].ContextMap(), "stack")

	require.Len(t, faultbook.GatheredErrors(), 1)
}

func TestLog(t *testing.T) {
	log, logs := newObserved(t)

	log.Log("plain string")
	log.Log(errors.New("an error"))
	log.Log(42)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "plain string", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
}

func TestLineSeparator(t *testing.T) {
	log, logs := newObserved(t)

	log.LineSeparator()
	log.LineSeparator(10)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Message, logbook.DefaultSeparatorLength)
	assert.Equal(t, "----------", entries[1].Message)
}

func TestErrFields(t *testing.T) {
	err := faultbook.New("boom",
		faultbook.ClassTimeout, faultbook.CategoryNetwork, faultbook.SeverityHigh,
		faultbook.Retryable(), "host", "localhost")

	fields := logbook.ErrFields(err)
	m := map[string]zap.Field{}
	for _, f := range fields {
		m[f.Key] = f
	}
	assert.Equal(t, "timeout", m["class"].String)
	assert.Equal(t, "network", m["category"].String)
	assert.Equal(t, "high", m["severity"].String)
	assert.Contains(t, m, "retryable")
	assert.Contains(t, m, "host")

	assert.Nil(t, logbook.ErrFields(errors.New("plain")))
}
