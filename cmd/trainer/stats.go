package main

import (
	"context"
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/fadedpez/basicstrategy/internal/tui"
	"github.com/fadedpez/basicstrategy/pkg/scheduler"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
)

type StatsCmd struct {
	Player string `short:"p" env:"USER" default:"trainee" help:"Player to report on"`
	Limit  int    `short:"n" default:"5" help:"How many weak spots to list"`
}

func (c *StatsCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	ctx := context.Background()
	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	stats := statistics.NewService(repo)
	tables, err := stats.GetTableAccuracy(ctx, c.Player)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Printf("No answers recorded for %s yet.\n", c.Player)
		return nil
	}

	fmt.Println(tui.HeaderStyle.Render("Accuracy for " + c.Player))
	for _, t := range tables {
		fmt.Printf("  %-10s %d/%d right (%.0f%%)\n", t.TableType, t.Attempts-t.Wrong, t.Attempts, t.Accuracy*100)
	}

	weak, err := stats.GetWeakestCells(ctx, c.Player, c.Limit)
	if err != nil {
		return err
	}
	if len(weak) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println(tui.HeaderStyle.Render("Weakest spots"))
	for _, w := range weak {
		line := fmt.Sprintf("  %-22s wrong %d of %d", w.Description, w.Wrong, w.Attempts)
		if w.Correct != "" {
			line += ", play " + w.Correct
		}
		fmt.Println(line)
	}
	return nil
}

type PruneCmd struct{}

func (c *PruneCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	ctx := context.Background()
	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	prune := scheduler.NewPruneTask(repo, cfg.Retention, quartz.NewReal(), logger)
	return prune(ctx)
}
