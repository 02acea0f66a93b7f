// Package config loads the CLI configuration from ~/.sparkvibe/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".sparkvibe"

	storageBackendKey = "storage.backend"
	storagePathKey    = "storage.path"
	latencyKey        = "auth.simulated_latency"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// StorageBackend selects the blob-store adapter: file, sqlite or memory.
	StorageBackend string
	// StoragePath is the data directory for the file backend and the parent
	// directory of the database file for the sqlite backend.
	StoragePath string
	// SimulatedLatency is the artificial round-trip applied to sign-in and
	// sign-up.
	SimulatedLatency time.Duration
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetDefault(storageBackendKey, BackendFile)
	cfg.SetDefault(storagePathKey, filepath.Join(baseDir, "data"))
	cfg.SetDefault(latencyKey, "1s")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := cfg.GetString(storageBackendKey)
	switch backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unsupported storage backend %q", backend)
	}

	storagePath := cfg.GetString(storagePathKey)
	if storagePath == "" {
		return Config{}, errors.New("storage path is empty")
	}
	storagePath, err = filepath.Abs(storagePath)
	if err != nil {
		return Config{}, fmt.Errorf("resolve storage path: %w", err)
	}

	latency := cfg.GetDuration(latencyKey)
	if latency < 0 {
		return Config{}, fmt.Errorf("negative simulated latency %s", latency)
	}

	return Config{
		StorageBackend:   backend,
		StoragePath:      filepath.Clean(storagePath),
		SimulatedLatency: latency,
	}, nil
}
