package demo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faultbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
timeout: 250ms
parallelism: 2
topics: [network, database]
skip: [unknown-host]
logging:
  level: debug
  development: true
`)

	cfg, err := demo.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Timeout))
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, []string{"network", "database"}, cfg.Topics)
	assert.Equal(t, []string{"unknown-host"}, cfg.Skip)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := demo.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, demo.DefaultTimeout, time.Duration(cfg.Timeout))
	assert.Equal(t, demo.DefaultParallelism, cfg.Parallelism)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "parallelism: 1\n")

	cfg, err := demo.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Parallelism)
	// Unset keys keep their defaults.
	assert.Equal(t, demo.DefaultTimeout, time.Duration(cfg.Timeout))
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	_, err := demo.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassNotFound, faultbook.Classify(err))
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"bad yaml":             "timeout: [unclosed",
		"bad duration":         "timeout: soonish\n",
		"negative parallelism": "parallelism: -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := demo.LoadConfig(writeConfig(t, content))
			require.Error(t, err)
			assert.Equal(t, faultbook.ClassValidation, faultbook.Classify(err))
		})
	}
}

func TestConfigSelect(t *testing.T) {
	reg := demo.NewRegistry()
	run := func(ctx context.Context) error { return nil }
	reg.MustRegister(demo.Demo{Name: "c1", Topic: "collections", Run: run})
	reg.MustRegister(demo.Demo{Name: "n1", Topic: "network", Run: run})
	reg.MustRegister(demo.Demo{Name: "n2", Topic: "network", Run: run})

	cfg := demo.Config{}
	assert.Equal(t, []string{"c1", "n1", "n2"}, cfg.Select(reg))

	cfg.Topics = []string{"network"}
	assert.Equal(t, []string{"n1", "n2"}, cfg.Select(reg))

	cfg.Skip = []string{"n2"}
	assert.Equal(t, []string{"n1"}, cfg.Select(reg))
}
