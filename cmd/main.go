package main

import (
	"context"
	"errors"
	"os"

	"github.com/polyglotfm/plx/internal/api"
	"github.com/polyglotfm/plx/internal/auth"
	"github.com/polyglotfm/plx/internal/flows"
	"github.com/polyglotfm/plx/internal/repositories"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	tokens := auth.NewFileTokenStore(config.TokenPath())
	client := api.NewClient(config.API.BaseURL, tokens, nil)

	// Offline cache is best-effort: a missing database disables write-through
	// but never blocks the CLI.
	var cache flows.LibraryCache
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		if err := shared.RunMigrations(db); err == nil {
			cache = repositories.NewCache(db)
			defer db.Close()
		} else {
			logger.Debug("cache unavailable", "error", err)
			db.Close()
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		API:    client,
		Tokens: tokens,
		Cache:  cache,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "plx",
		Usage:    "Manage podcasts and their translations from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not signed in, run 'plx auth login' first")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
