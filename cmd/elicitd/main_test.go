package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/elicitd/internal/config"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "elicitd vdev\n", out.String())
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "elicitd.yaml")
	require.NoError(t, os.WriteFile(file, []byte("store:\n  driver: sqlite\n  seed: true\nelicitation:\n  timeout: 1m\n"), 0o600))

	cmd := newRootCmd()
	fs := cmd.PersistentFlags()
	require.NoError(t, fs.Parse([]string{"--timeout", "30s", "--store-path", "/tmp/x.db"}))

	cfg, err := loadConfig(file, fs)
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, 30*time.Second, cfg.Elicitation.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Elicitation.ProgressInterval)
}

func TestLoadConfig_UnsetFlagsKeepFileValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "elicitd.yaml")
	require.NoError(t, os.WriteFile(file, []byte("store:\n  driver: sqlite\n"), 0o600))

	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Parse(nil))

	cfg, err := loadConfig(file, cmd.PersistentFlags())
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
}

func TestServe_InvalidDriver(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve", "--store-driver", "postgres"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.driver")
}

func TestSetupLogging(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var buf bytes.Buffer
	setupLogging(&buf, "warn", false)
	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	setupLogging(&buf, "warn", true)
	slog.Debug("verbose")
	assert.Contains(t, buf.String(), "verbose")
}
