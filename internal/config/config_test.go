package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/termquest/internal/event"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 7.0, cfg.TickRate)
	assert.Equal(t, 25*time.Millisecond, cfg.PollBudget)
	assert.Equal(t, 7, cfg.TurnEvery)
	assert.Equal(t, 3, cfg.Heroes)
	assert.Equal(t, 3, cfg.Enemies)
	assert.Equal(t, "termquest.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Lossless)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TERMQUEST_TICK_RATE", "20")
	t.Setenv("TERMQUEST_POLL_BUDGET", "10ms")
	t.Setenv("TERMQUEST_LOSSLESS", "true")
	t.Setenv("TERMQUEST_SEED", "dragon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.TickRate)
	assert.Equal(t, 10*time.Millisecond, cfg.PollBudget)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, event.Oldest, cfg.Policy())
	assert.Equal(t, "dragon", cfg.Seed)
	assert.Equal(t, 7, cfg.TurnEvery)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termquest.yaml")
	content := "tickRate: 10\nheroes: 5\npollBudget: 40ms\nseed: from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(FileEnv, path)
	t.Setenv("TERMQUEST_HEROES", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.TickRate, "file overrides default")
	assert.Equal(t, 40*time.Millisecond, cfg.PollBudget)
	assert.Equal(t, 2, cfg.Heroes, "env overrides file")
	assert.Equal(t, 3, cfg.Enemies, "default kept")
	assert.Equal(t, "from-file", cfg.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open config")
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("TERMQUEST_TURN_EVERY", "not-an-int")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative budget", func(c *Config) { c.PollBudget = -time.Millisecond }},
		{"zero turn cadence", func(c *Config) { c.TurnEvery = 0 }},
		{"no participants", func(c *Config) { c.Heroes, c.Enemies = 0, 0 }},
		{"negative heroes", func(c *Config) { c.Heroes = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSeed64IsStableForAPhrase(t *testing.T) {
	a := Config{Seed: "dragon"}
	b := Config{Seed: "dragon"}
	c := Config{Seed: "wyvern"}

	assert.Equal(t, a.Seed64(), b.Seed64())
	assert.NotEqual(t, a.Seed64(), c.Seed64())
}
