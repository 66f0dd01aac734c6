package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/fadedpez/basicstrategy/internal/discord"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
)

// StatisticsService is what /strategystats reads
type StatisticsService interface {
	GetTableAccuracy(ctx context.Context, playerID string) ([]*statistics.TableAccuracy, error)
	GetWeakestCells(ctx context.Context, playerID string, limit int) ([]*statistics.WeakCell, error)
}

// StatsCommand handles the /strategystats command
type StatsCommand struct {
	statisticsService StatisticsService
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(statisticsService StatisticsService) *StatsCommand {
	return &StatsCommand{statisticsService: statisticsService}
}

// Command returns the command definition for the stats command
func (c *StatsCommand) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "strategystats",
		Description: "Show drill accuracy per chart and your weakest spots",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "user",
				Description: "Whose stats to show (defaults to you)",
				Type:        discordgo.ApplicationCommandOptionUser,
			},
		},
	}
}

// Handle handles the stats command
func (c *StatsCommand) Handle(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) error {
	playerID := discord.UserID(i)
	if opt := discord.Options(i)["user"]; opt != nil {
		playerID = opt.UserValue(nil).ID
	}

	tables, err := c.statisticsService.GetTableAccuracy(ctx, playerID)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}

	attempts := 0
	for _, t := range tables {
		attempts += t.Attempts
	}
	if attempts == 0 {
		return discord.SendResponse(s, i, discord.NewEphemeralResponse("No answers recorded yet. Start a drill with /drill", nil))
	}

	weakest, err := c.statisticsService.GetWeakestCells(ctx, playerID, statistics.DefaultWeakestLimit)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}

	return discord.SendResponse(s, i, discord.NewEmbedResponse(createStatsEmbed(playerID, tables, weakest)))
}

func createStatsEmbed(playerID string, tables []*statistics.TableAccuracy, weakest []*statistics.WeakCell) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📊 Basic Strategy Stats",
		Description: fmt.Sprintf("<@%s>", playerID),
		Color:       0x2E7D32,
	}

	for _, t := range tables {
		if t.Attempts == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   strings.ToUpper(t.TableType[:1]) + t.TableType[1:],
			Value:  fmt.Sprintf("%d/%d right (%.0f%%)", t.Attempts-t.Wrong, t.Attempts, t.Accuracy*100),
			Inline: true,
		})
	}

	if len(weakest) > 0 {
		lines := make([]string, 0, len(weakest))
		for _, w := range weakest {
			line := fmt.Sprintf("%s: %d/%d wrong", w.Description, w.Wrong, w.Attempts)
			if w.Correct != "" {
				line += fmt.Sprintf(", play **%s**", w.Correct)
			}
			lines = append(lines, line)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Weakest spots",
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}
