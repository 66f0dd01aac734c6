package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fadedpez/basicstrategy/internal/discord"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/discord/commands"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

const (
	drillPrefix = "drill_"
	drillNext   = "next"
	drillStop   = "stop"
)

// drillCommand handles /drill. Each user gets one drill per channel;
// running /drill again starts over with a fresh shoe.
type drillCommand struct {
	bot *Bot
}

func (c *drillCommand) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "drill",
		Description: "Practice basic strategy on hands from a fresh shoe",
	}
}

func (c *drillCommand) Handle(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) error {
	userID := discord.UserID(i)
	session := c.bot.drills.Create(drillKey(i), userID)

	snap, err := session.Deal(ctx)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}
	c.bot.logger.Info("Drill started", "user", userID, "session", session.ID())
	return discord.SendResponse(s, i, discord.NewEphemeralResponse(formatQuestion(snap), actionButtons()))
}

func (b *Bot) handleDrillButton(i *discordgo.InteractionCreate, button string) error {
	session, err := b.drills.GetByKey(drillKey(i))
	if err != nil {
		return discord.SendErrorResponse(b.session, i, types.WrapError(types.ErrSessionNotFound, "No drill running here. Start one with /drill", err))
	}

	switch button {
	case drillNext:
		snap, err := session.Deal(b.ctx)
		if types.IsGameError(err, types.ErrShoeDone) {
			b.drills.Remove(session.ID())
			return discord.UpdateResponse(b.session, i, discord.NewEphemeralResponse(formatSummary(snap, true), nil))
		}
		if err != nil {
			return discord.SendErrorResponse(b.session, i, err)
		}
		return discord.UpdateResponse(b.session, i, discord.NewEphemeralResponse(formatQuestion(snap), actionButtons()))

	case drillStop:
		b.drills.Remove(session.ID())
		return discord.UpdateResponse(b.session, i, discord.NewEphemeralResponse(formatSummary(session.Snapshot(), false), nil))
	}

	action, err := strategy.ParseAction(button)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}
	outcome, err := session.Answer(b.ctx, action)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}
	return discord.UpdateResponse(b.session, i, discord.NewEphemeralResponse(formatOutcome(outcome), nextButtons()))
}

// drillKey scopes a drill to one user in one channel
func drillKey(i *discordgo.InteractionCreate) string {
	return i.ChannelID + ":" + discord.UserID(i)
}

func actionButtons() []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(strategy.Actions))
	for _, a := range strategy.Actions {
		buttons = append(buttons, discordgo.Button{
			Label:    a.String(),
			Style:    discordgo.PrimaryButton,
			CustomID: drillPrefix + strings.ToLower(a.String()),
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func nextButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Next hand", Style: discordgo.SuccessButton, CustomID: drillPrefix + drillNext},
		discordgo.Button{Label: "Stop", Style: discordgo.SecondaryButton, CustomID: drillPrefix + drillStop},
	}}}
}

func formatQuestion(snap trainer.Snapshot) string {
	kind := "hard"
	if snap.PlayerSoft {
		kind = "soft"
	}
	return fmt.Sprintf("Dealer shows **%s**\nYou have **%s** (%s %d)\nWhat's your play?\n%s",
		commands.FormatCard(snap.DealerCard), commands.FormatHand(snap.PlayerHand), kind, snap.PlayerTotal, formatScore(snap))
}

func formatOutcome(o *trainer.Outcome) string {
	var b strings.Builder
	if o.Correct {
		b.WriteString("✅ ")
	} else {
		b.WriteString("❌ ")
	}
	b.WriteString(o.Message)
	if o.TableIndex != nil {
		fmt.Fprintf(&b, "\n_%s_", o.TableIndex.Describe())
	}
	b.WriteString("\n")
	b.WriteString(formatScore(o.Snapshot))
	return b.String()
}

func formatSummary(snap trainer.Snapshot, shoeDone bool) string {
	title := "Drill stopped."
	if shoeDone {
		title = "🏁 The shoe is finished!"
	}
	return fmt.Sprintf("%s %s", title, formatScore(snap))
}

func formatScore(snap trainer.Snapshot) string {
	return fmt.Sprintf("Score: %d/%d (%.0f%%)", snap.NumQuestions-snap.NumWrong, snap.NumQuestions, snap.Accuracy*100)
}
