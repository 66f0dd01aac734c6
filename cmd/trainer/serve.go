package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/fadedpez/basicstrategy/internal/api"
	"github.com/fadedpez/basicstrategy/internal/config"
	"github.com/fadedpez/basicstrategy/internal/discord"
	"github.com/fadedpez/basicstrategy/internal/logging"
	botpkg "github.com/fadedpez/basicstrategy/pkg/discord"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
	"github.com/fadedpez/basicstrategy/pkg/scheduler"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
)

const (
	sessionIdle   = 30 * time.Minute
	sweepInterval = 5 * time.Minute
	shutdownGrace = 10 * time.Second
)

// services is everything a long running command shares
type services struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	repo   results.Repository
	drills *trainer.Manager
	stats  *statistics.Service
}

func newServices(ctx context.Context, g *Globals) (*services, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, os.Stderr)

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	clock := quartz.NewReal()
	return &services{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		repo:   repo,
		drills: trainer.NewManager(trainer.NewGameFactory(gameOptions(cfg)), repo, clock, logger),
		stats:  statistics.NewService(repo),
	}, nil
}

// newScheduler registers history pruning and the idle session sweep
func (s *services) newScheduler() *scheduler.Scheduler {
	sched := scheduler.NewScheduler(s.clock, s.logger)
	sched.AddTask(scheduler.PruneTaskName, s.cfg.PruneInterval,
		scheduler.NewPruneTask(s.repo, s.cfg.Retention, s.clock, s.logger))
	sched.AddTask(scheduler.SessionSweepTaskName, sweepInterval,
		scheduler.NewSessionSweepTask(s.drills, sessionIdle, s.clock, s.logger))
	return sched
}

// runBot starts the Discord bot and stops it once ctx is done
func (s *services) runBot(ctx context.Context) error {
	if err := s.cfg.ValidateDiscord(); err != nil {
		return err
	}
	session, err := discord.NewSession(s.cfg.Token)
	if err != nil {
		return err
	}

	bot := botpkg.NewBot(session, botpkg.Options{
		AppID:           s.cfg.AppID,
		GuildID:         s.cfg.GuildID,
		CleanupCommands: s.cfg.IsDevelopment(),
	}, s.drills, s.stats, s.cfg.Rules, s.logger)

	if err := bot.Start(ctx); err != nil {
		return err
	}
	s.logger.Info("Bot is running")

	<-ctx.Done()
	s.logger.Info("Shutting down bot")
	return bot.Stop()
}

type ServeCmd struct {
	Addr    string `short:"a" help:"Address to listen on (overrides HTTP_ADDR)"`
	WithBot bool   `help:"Also run the Discord bot"`
}

func (c *ServeCmd) Run(g *Globals) error {
	ctx := context.Background()
	svc, err := newServices(ctx, g)
	if err != nil {
		return err
	}
	defer svc.repo.Close()

	addr := svc.cfg.HTTPAddr
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, cancel := signalContext(svc.logger)
	defer cancel()

	httpServer := api.NewServer(svc.drills, svc.stats, svc.cfg.Rules, svc.logger).NewHTTPServer(addr)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		svc.logger.Info("HTTP API listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownGrace)
		defer done()
		return httpServer.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		return svc.newScheduler().Run(ctx)
	})
	if c.WithBot {
		group.Go(func() error {
			return svc.runBot(ctx)
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logging.LogError(svc.logger, "Server stopped", err)
		return err
	}
	svc.logger.Info("Shutdown complete")
	return nil
}

type BotCmd struct{}

func (c *BotCmd) Run(g *Globals) error {
	ctx := context.Background()
	svc, err := newServices(ctx, g)
	if err != nil {
		return err
	}
	defer svc.repo.Close()

	ctx, cancel := signalContext(svc.logger)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return svc.newScheduler().Run(ctx)
	})
	group.Go(func() error {
		return svc.runBot(ctx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
