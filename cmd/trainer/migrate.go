package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/basicstrategy/internal/config"
	"github.com/fadedpez/basicstrategy/pkg/db/migrations"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
)

type MigrateCmd struct {
	Create string `help:"Create a new empty migration with this description instead of applying"`
	Dir    string `default:"pkg/repositories/results/migrations/sqlite" help:"Directory new migrations are written to"`
}

func (c *MigrateCmd) Run(g *Globals) error {
	if c.Create != "" {
		path, err := migrations.CreateMigration(c.Dir, c.Create, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	}

	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)
	ctx := context.Background()

	switch cfg.StorageType {
	case config.StorageSQLite:
		db, err := sql.Open("sqlite3", cfg.SQLitePath())
		if err != nil {
			return fmt.Errorf("error opening database: %w", err)
		}
		defer db.Close()

		count, err := results.MigrateSQLite(ctx, db, logger)
		if err != nil {
			return err
		}
		logger.Info("Migrations complete", "applied", count, "path", cfg.SQLitePath())
	case config.StoragePostgres:
		repo, err := results.NewPostgresRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer repo.Close()
		logger.Info("Postgres schema is up to date")
	default:
		logger.Info("Nothing to migrate", "storage", cfg.StorageType)
	}
	return nil
}
