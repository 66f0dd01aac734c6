package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/fadedpez/basicstrategy/internal/discord"
	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/pkg/discord/commands"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// Command is a slash command the bot registers and routes
type Command interface {
	Command() *discordgo.ApplicationCommand
	Handle(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) error
}

// Options configure command registration
type Options struct {
	AppID   string
	GuildID string
	// CleanupCommands deletes the registered commands on Stop
	CleanupCommands bool
}

// Bot represents the Discord bot instance
type Bot struct {
	session discord.SessionHandler
	opts    Options
	logger  *log.Logger

	drills   *trainer.Manager
	commands map[string]Command
	order    []string

	// ctx is set by Start and used by interaction handlers
	ctx           context.Context
	mu            sync.Mutex
	registered    []*discordgo.ApplicationCommand
	removeHandler func()
}

// NewBot wires the drill, lookup and stats commands onto session
func NewBot(session discord.SessionHandler, opts Options, drills *trainer.Manager, stats commands.StatisticsService, rules strategy.Ruleset, logger *log.Logger) *Bot {
	if logger == nil {
		logger = logging.Discard()
	}
	b := &Bot{
		session:  session,
		opts:     opts,
		logger:   logger.WithPrefix("discord"),
		drills:   drills,
		commands: make(map[string]Command),
		ctx:      context.Background(),
	}
	b.addCommand(&drillCommand{bot: b})
	b.addCommand(commands.NewLookupCommand(rules))
	b.addCommand(commands.NewStatsCommand(stats))
	return b
}

func (b *Bot) addCommand(c Command) {
	name := c.Command().Name
	b.commands[name] = c
	b.order = append(b.order, name)
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ctx = ctx
	b.removeHandler = b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteractionCreate(i)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	for _, name := range b.order {
		created, err := b.session.ApplicationCommandCreate(b.opts.AppID, b.opts.GuildID, b.commands[name].Command())
		if err != nil {
			return fmt.Errorf("error creating command %s: %w", name, err)
		}
		b.registered = append(b.registered, created)
		b.logger.Info("Registered command", "name", created.Name)
	}
	return nil
}

// Stop removes commands when asked to and closes the connection
func (b *Bot) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opts.CleanupCommands {
		for _, cmd := range b.registered {
			if err := b.session.ApplicationCommandDelete(b.opts.AppID, b.opts.GuildID, cmd.ID); err != nil {
				logging.LogError(b.logger, "Failed to delete command", err, "name", cmd.Name)
			}
		}
	}
	b.registered = nil

	if b.removeHandler != nil {
		b.removeHandler()
		b.removeHandler = nil
	}

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}
