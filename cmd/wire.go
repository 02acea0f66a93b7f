package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	fileblob "github.com/sparkvibe/sparkvibe-cli/internal/adapters/blob/file"
	memoryblob "github.com/sparkvibe/sparkvibe-cli/internal/adapters/blob/memory"
	sqliteblob "github.com/sparkvibe/sparkvibe-cli/internal/adapters/blob/sqlite"
	"github.com/sparkvibe/sparkvibe-cli/internal/adapters/notify/terminal"
	"github.com/sparkvibe/sparkvibe-cli/internal/cart"
	"github.com/sparkvibe/sparkvibe-cli/internal/config"
	"github.com/sparkvibe/sparkvibe-cli/internal/logging"
	"github.com/sparkvibe/sparkvibe-cli/internal/ports"
	"github.com/sparkvibe/sparkvibe-cli/internal/session"
)

const sqliteFileName = "sparkvibe.db"

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	sessions *session.Service
	cart     *cart.Service
	closers  []func() error
}

func wireApp() (*app, error) {
	logger, err := logging.New(os.Getenv("SPARKVIBE_DEBUG") != "")
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}

	var store ports.BlobStore
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		sqliteStore, err := sqliteblob.NewStore(filepath.Join(cfg.StoragePath, sqliteFileName))
		if err != nil {
			return nil, fmt.Errorf("wire sqlite blob store: %w", err)
		}
		a.closers = append(a.closers, sqliteStore.Close)
		store = sqliteStore
	case config.BackendMemory:
		store = memoryblob.NewStore()
	default:
		store = fileblob.NewStore(cfg.StoragePath)
	}

	a.sessions = session.NewService(store, logger.Named("session"),
		session.WithLatency(cfg.SimulatedLatency))
	a.cart = cart.NewService(store, logger.Named("cart"))

	// Session restoration happens once, at process start.
	a.sessions.Restore(context.Background())

	return a, nil
}

func (a *app) notify(cmd *cobra.Command) ports.Notifier {
	return terminal.NewNotifier(cmd.OutOrStdout())
}

func (a *app) close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Warn("close store", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
