package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Defaults ---

func TestLoad_Defaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Elicitation.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Elicitation.ProgressInterval)
	assert.InDelta(t, 50, cfg.Elicitation.ProgressValue, 0)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Empty(t, cfg.Store.Path)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
}

// --- File and environment overrides ---

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elicitd.yaml")
	content := `
elicitation:
  timeout: 30s
  progress_interval: 2s
store:
  driver: sqlite
  path: /tmp/records.db
  seed: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Elicitation.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Elicitation.ProgressInterval)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/records.db", cfg.Store.Path)
	assert.True(t, cfg.Store.Seed)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ELICITD_ELICITATION_TIMEOUT", "90s")
	t.Setenv("ELICITD_STORE_DRIVER", "sqlite")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Elicitation.Timeout)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// --- Validate ---

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero timeout", func(c *Config) { c.Elicitation.Timeout = 0 }, "elicitation.timeout"},
		{"negative interval", func(c *Config) { c.Elicitation.ProgressInterval = -time.Second }, "progress_interval"},
		{"progress over 100", func(c *Config) { c.Elicitation.ProgressValue = 101 }, "progress_value"},
		{"unknown driver", func(c *Config) { c.Store.Driver = "postgres" }, "store.driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// --- Options ---

func TestOptions_OrderAndLabels(t *testing.T) {
	assert.Equal(t, []string{"developer", "designer", "manager"}, Keys(Roles()))
	assert.Equal(t, []string{"Software Developer", "UI/UX Designer", "Project Manager"}, Labels(Roles()))
	assert.Equal(t, []string{"fulltime", "parttime", "contract"}, Keys(JobTypes()))
	assert.Equal(t, []string{"low", "medium", "high"}, Keys(Priorities()))
}

func TestOptions_FreshCopies(t *testing.T) {
	r := Roles()
	r.Set("analyst", "Business Analyst")

	assert.Equal(t, 3, Roles().Len(), "mutating one copy must not leak into the next")
}
