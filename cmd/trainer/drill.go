package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/fadedpez/basicstrategy/internal/tui"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
)

type DrillCmd struct {
	Player  string `short:"p" env:"USER" default:"trainee" help:"Player name answers are recorded under"`
	Decks   int    `short:"d" help:"Decks in the shoe (overrides NUM_DECKS)"`
	Seed    uint64 `help:"Shuffle seed for a repeatable shoe"`
	LogFile string `help:"Write logs to this file instead of discarding them"`
}

func (c *DrillCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	// the terminal belongs to the drill, so logs only go to a file
	var out io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(cfg, out)

	ctx := context.Background()
	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	opts := gameOptions(cfg)
	if c.Decks > 0 {
		opts.NumDecks = c.Decks
	}
	if c.Seed != 0 {
		opts.Seed = c.Seed
		opts.HasSeed = true
	}

	drills := trainer.NewManager(trainer.NewGameFactory(opts), repo, quartz.NewReal(), logger)
	session := drills.Create("", c.Player)

	p := tea.NewProgram(tui.NewModel(ctx, session, logger))
	_, err = p.Run()
	return err
}
