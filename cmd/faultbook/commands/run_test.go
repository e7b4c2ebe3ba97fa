package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultbook/faultbook"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	return root.ExecuteContext(context.Background())
}

func TestRunNoMatchingTopic(t *testing.T) {
	err := execute(t, "run", "--topic", "bogus")
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassNotFound, faultbook.Classify(err))

	var fbErr faultbook.Error
	require.ErrorAs(t, err, &fbErr)
	assert.Equal(t, "no demos match the selection", fbErr.Message())
}

func TestRunUnknownDemoName(t *testing.T) {
	err := execute(t, "run", "no-such-demo")
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassNotFound, faultbook.Classify(err))
}

func TestListUnknownTopicIsEmpty(t *testing.T) {
	require.NoError(t, execute(t, "list", "--topic", "bogus"))
}
