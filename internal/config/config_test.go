package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, filepath.Join(home, ".sparkvibe", "data"), cfg.StoragePath)
	assert.Equal(t, time.Second, cfg.SimulatedLatency)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".sparkvibe")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `[storage]
backend = "sqlite"
path = "` + filepath.Join(home, "custom") + `"

[auth]
simulated_latency = "250ms"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, filepath.Join(home, "custom"), cfg.StoragePath)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := viper.New()
	cfg.Set("storage.backend", "cloud")

	_, err := Load(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage backend")
}

func TestLoadRejectsNegativeLatency(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := viper.New()
	cfg.Set("auth.simulated_latency", "-1s")

	_, err := Load(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative simulated latency")
}
