package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/fadedpez/basicstrategy/internal/config"
	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
)

// loadConfig reads the environment and applies the global overrides
func loadConfig(g *Globals) (*config.Config, error) {
	if g.RulesFile != "" {
		os.Setenv("RULES_FILE", g.RulesFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.New(w, logging.ParseLevel(cfg.LogLevel), "")
}

// openRepository builds the configured answer history backend, mirrored
// to Elasticsearch when ELASTICSEARCH_URL is set
func openRepository(ctx context.Context, cfg *config.Config, logger *log.Logger) (results.Repository, error) {
	var repo results.Repository
	switch cfg.StorageType {
	case config.StorageSQLite:
		path := cfg.SQLitePath()
		sqliteRepo, err := results.NewSQLiteRepository(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using SQLite answer history", "path", path)
		repo = sqliteRepo
	case config.StoragePostgres:
		pgRepo, err := results.NewPostgresRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Postgres answer history")
		repo = pgRepo
	case config.StorageMemory, "":
		logger.Info("Using in-memory answer history (data will be lost on restart)")
		repo = results.NewMemoryRepository()
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	if cfg.ElasticsearchURL == "" {
		return repo, nil
	}

	esRepo, err := results.NewElasticsearchRepository(ctx, repo, &results.ElasticsearchConfig{
		URL:      cfg.ElasticsearchURL,
		Username: cfg.ElasticsearchUsername,
		Password: cfg.ElasticsearchPassword,
		Index:    cfg.ElasticsearchIndex,
	}, logger)
	if err != nil {
		repo.Close()
		return nil, err
	}
	logger.Info("Mirroring answers to Elasticsearch", "index", esRepo.IndexName())
	return esRepo, nil
}

func gameOptions(cfg *config.Config) trainer.GameOptions {
	return trainer.GameOptions{
		NumDecks: cfg.NumDecks,
		Rules:    cfg.Rules,
		Seed:     cfg.ShuffleSeed,
		HasSeed:  cfg.HasSeed,
	}
}

// signalContext is cancelled on interrupt or SIGTERM
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
