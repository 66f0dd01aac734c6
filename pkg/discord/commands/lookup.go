package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/fadedpez/basicstrategy/internal/discord"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// LookupCommand handles /lookup, answering the chart question for any hand
type LookupCommand struct {
	rules strategy.Ruleset
}

// NewLookupCommand creates a lookup command resolving under rules
func NewLookupCommand(rules strategy.Ruleset) *LookupCommand {
	return &LookupCommand{rules: rules}
}

// Command returns the command definition for the lookup command
func (c *LookupCommand) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "lookup",
		Description: "Look up the basic strategy play for a hand",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "player",
				Description: "Your cards, e.g. AS 7H",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
			{
				Name:        "dealer",
				Description: "The dealer's up-card, e.g. 9C",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// Handle handles the lookup command
func (c *LookupCommand) Handle(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) error {
	opts := discord.Options(i)
	player, dealer := opts["player"], opts["dealer"]
	if player == nil || dealer == nil {
		return discord.SendErrorResponse(s, i, types.NewGameError(types.ErrInvalidArgument, "both player and dealer cards are required"))
	}

	advice, err := strategy.Advise(player.StringValue(), dealer.StringValue(), c.rules)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}
	return discord.SendResponse(s, i, discord.NewEphemeralResponse(FormatAdvice(advice), nil))
}

// FormatAdvice renders a lookup result as a chat message
func FormatAdvice(advice *strategy.Advice) string {
	kind := "hard"
	if advice.Soft {
		kind = "soft"
	}
	msg := fmt.Sprintf("**%s** (%s %d) vs **%s**: **%s**",
		FormatHand(advice.Player), kind, advice.Total, FormatHand(advice.Dealer), advice.Action)
	if advice.TableIndex != nil {
		msg += fmt.Sprintf("\n_%s_", advice.TableIndex.Describe())
	}
	return msg
}
