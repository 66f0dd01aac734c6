package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fadedpez/basicstrategy/internal/logging"
)

// handleInteractionCreate routes slash commands and button presses
func (b *Bot) handleInteractionCreate(i *discordgo.InteractionCreate) {
	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.handleSlashCommand(i)
	case discordgo.InteractionMessageComponent:
		err = b.handleMessageComponent(i)
	default:
		return
	}
	if err != nil {
		logging.LogError(b.logger, "Failed to respond to interaction", err, "interaction", i.ID)
	}
}

func (b *Bot) handleSlashCommand(i *discordgo.InteractionCreate) error {
	name := i.ApplicationCommandData().Name
	c, ok := b.commands[name]
	if !ok {
		b.logger.Warn("Unknown command", "name", name)
		return nil
	}
	b.logger.Debug("Handling command", "name", name, "channel", i.ChannelID)
	return c.Handle(b.ctx, b.session, i)
}

func (b *Bot) handleMessageComponent(i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, drillPrefix):
		return b.handleDrillButton(i, strings.TrimPrefix(customID, drillPrefix))
	default:
		b.logger.Warn("Unknown component interaction", "custom_id", customID)
		return nil
	}
}
