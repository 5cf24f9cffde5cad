package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/stocktrack/internal/cli"
	"github.com/dmitrijs2005/stocktrack/internal/config"
	"github.com/dmitrijs2005/stocktrack/internal/logging"
	"github.com/dmitrijs2005/stocktrack/internal/repositories/storage"
	"github.com/dmitrijs2005/stocktrack/internal/shared"
	"github.com/dmitrijs2005/stocktrack/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	ctx := context.Background()

	st, cleanup, err := setupStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app := cli.NewApp(cfg, st, logger)
	app.Run(ctx)
}

// setupStore builds the configured storage backend, opens the store over it
// and loads the persisted snapshot.
func setupStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (*store.Store, func(), error) {
	var backend store.Storage
	cleanup := func() {}

	switch cfg.Backend {
	case config.BackendFile:
		backend = storage.NewFileStorage(cfg.StorePath)

	case config.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = db.Close() }
		backend = storage.NewSQLiteStorage(db)

	case config.BackendEncrypted:
		pass, err := cli.GetPassword("Passphrase", os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		backend = storage.NewEncryptedFileStorage(cfg.StorePath, pass)
		shared.WipeByteArray(pass)

	case config.BackendMemory:
		backend = storage.NewMemoryStorage()

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	st := store.New(backend, logger)
	if err := st.Open(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return st, cleanup, nil
}
