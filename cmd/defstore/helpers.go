package main

import (
	"context"
	"fmt"
	"time"

	"github.com/k-hirata/defstore/internal/config"
	"github.com/k-hirata/defstore/internal/database"
	"github.com/k-hirata/defstore/internal/dictionary"
	"github.com/k-hirata/defstore/internal/seed"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openStore opens the database and runs the one-time initialization. The
// returned store holds its connection for the rest of the process lifetime.
func openStore(ctx context.Context, cfg *config.Config) (*dictionary.Store, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}

	var sources []seed.Source
	if cfg.Seed.File != "" {
		sources = append(sources, seed.NewFileSource(cfg.Seed.File))
	}
	if cfg.Seed.URL != "" {
		sources = append(sources, seed.NewHTTPSource(
			cfg.Seed.URL,
			time.Duration(cfg.Seed.TimeoutSeconds)*time.Second,
			cfg.Seed.RetryAttempts,
		))
	}

	store := dictionary.NewStore(dictionary.NewDBEntryRepository(db), sources...)
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("store.Initialize > %w", err)
	}
	return store, nil
}
