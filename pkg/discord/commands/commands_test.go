package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	discordmock "github.com/fadedpez/basicstrategy/internal/discord/mock"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type mockStatistics struct {
	mock.Mock
}

func (m *mockStatistics) GetTableAccuracy(ctx context.Context, playerID string) ([]*statistics.TableAccuracy, error) {
	args := m.Called(ctx, playerID)
	tables, _ := args.Get(0).([]*statistics.TableAccuracy)
	return tables, args.Error(1)
}

func (m *mockStatistics) GetWeakestCells(ctx context.Context, playerID string, limit int) ([]*statistics.WeakCell, error) {
	args := m.Called(ctx, playerID, limit)
	cells, _ := args.Get(0).([]*statistics.WeakCell)
	return cells, args.Error(1)
}

type CommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	session *discordmock.SessionHandler
	stats   *mockStatistics
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.session = &discordmock.SessionHandler{}
	s.session.Test(s.T())
	s.stats = &mockStatistics{}
	s.stats.Test(s.T())
}

func (s *CommandsTestSuite) TearDownTest() {
	s.session.AssertExpectations(s.T())
	s.stats.AssertExpectations(s.T())
}

func command(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction",
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "channel",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
	}}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

// expectContent records the response and checks its content
func (s *CommandsTestSuite) expectContent(check func(string) bool) {
	s.session.On("InteractionRespond", mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return check(r.Data.Content)
	})).Return(nil).Once()
}

func (s *CommandsTestSuite) TestLookupCommandDefinition() {
	cmd := NewLookupCommand(strategy.Ruleset{}).Command()
	s.Equal("lookup", cmd.Name)
	s.Len(cmd.Options, 2)
	s.True(cmd.Options[0].Required)
	s.True(cmd.Options[1].Required)
}

func (s *CommandsTestSuite) TestLookup() {
	s.expectContent(func(content string) bool {
		return strings.Contains(content, "(soft 18)") &&
			strings.Contains(content, "**Hit**") &&
			strings.Contains(content, "soft A,7 vs 9")
	})

	i := command("lookup", stringOption("player", "AS 7H"), stringOption("dealer", "9C"))
	s.NoError(NewLookupCommand(strategy.Ruleset{}).Handle(s.ctx, s.session, i))
}

func (s *CommandsTestSuite) TestLookupHonorsRules() {
	s.expectContent(func(content string) bool {
		return strings.Contains(content, "**Hit**") && strings.Contains(content, "(hard 11)")
	})

	i := command("lookup", stringOption("player", "5S 6H"), stringOption("dealer", "6C"))
	s.NoError(NewLookupCommand(strategy.Ruleset{NoDouble: true}).Handle(s.ctx, s.session, i))
}

func (s *CommandsTestSuite) TestLookupBadCard() {
	s.expectContent(func(content string) bool {
		return strings.HasPrefix(content, "🃏")
	})

	i := command("lookup", stringOption("player", "ZS 7H"), stringOption("dealer", "9C"))
	s.NoError(NewLookupCommand(strategy.Ruleset{}).Handle(s.ctx, s.session, i))
}

func (s *CommandsTestSuite) TestLookupMissingOption() {
	s.expectContent(func(content string) bool {
		return strings.Contains(content, "both player and dealer cards are required")
	})

	i := command("lookup", stringOption("player", "AS 7H"))
	s.NoError(NewLookupCommand(strategy.Ruleset{}).Handle(s.ctx, s.session, i))
}

func (s *CommandsTestSuite) TestStatsCommandDefinition() {
	cmd := NewStatsCommand(s.stats).Command()
	s.Equal("strategystats", cmd.Name)
	s.Len(cmd.Options, 1)
	s.Equal(discordgo.ApplicationCommandOptionUser, cmd.Options[0].Type)
}

func (s *CommandsTestSuite) TestStatsNoAnswers() {
	s.stats.On("GetTableAccuracy", s.ctx, "user-1").Return([]*statistics.TableAccuracy{}, nil)
	s.expectContent(func(content string) bool {
		return strings.HasPrefix(content, "No answers recorded yet")
	})

	s.NoError(NewStatsCommand(s.stats).Handle(s.ctx, s.session, command("strategystats")))
}

func (s *CommandsTestSuite) TestStatsEmbed() {
	s.stats.On("GetTableAccuracy", s.ctx, "user-1").Return([]*statistics.TableAccuracy{
		{TableType: "hard", Attempts: 10, Wrong: 2, Accuracy: 0.8},
		{TableType: "soft", Attempts: 4, Wrong: 1, Accuracy: 0.75},
	}, nil)
	s.stats.On("GetWeakestCells", s.ctx, "user-1", statistics.DefaultWeakestLimit).Return([]*statistics.WeakCell{
		{
			CellStatistics: &entities.CellStatistics{TableIndex: "hard:16,10", TableType: "hard", Attempts: 3, Wrong: 2},
			Description:    "hard 16 vs T",
			Correct:        "Hit",
		},
	}, nil)

	s.session.On("InteractionRespond", mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		if len(r.Data.Embeds) != 1 {
			return false
		}
		embed := r.Data.Embeds[0]
		return len(embed.Fields) == 3 &&
			embed.Fields[0].Name == "Hard" &&
			embed.Fields[0].Value == "8/10 right (80%)" &&
			embed.Fields[1].Value == "3/4 right (75%)" &&
			strings.Contains(embed.Fields[2].Value, "hard 16 vs T: 2/3 wrong, play **Hit**")
	})).Return(nil)

	s.NoError(NewStatsCommand(s.stats).Handle(s.ctx, s.session, command("strategystats")))
}

func (s *CommandsTestSuite) TestStatsForOtherUser() {
	s.stats.On("GetTableAccuracy", s.ctx, "user-2").Return(nil, nil)
	s.expectContent(func(content string) bool { return content != "" })

	i := command("strategystats", &discordgo.ApplicationCommandInteractionDataOption{
		Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: "user-2",
	})
	s.NoError(NewStatsCommand(s.stats).Handle(s.ctx, s.session, i))
}

func (s *CommandsTestSuite) TestStatsError() {
	s.stats.On("GetTableAccuracy", s.ctx, "user-1").Return(nil, errors.New("db down"))
	s.expectContent(func(content string) bool {
		return content == "❌ An error occurred: db down"
	})

	s.NoError(NewStatsCommand(s.stats).Handle(s.ctx, s.session, command("strategystats")))
}

func TestFormatHand(t *testing.T) {
	assert.Equal(t, "A♠️ T♥️ 9♦️ K♣️", FormatHand("AS TH 9D KC"))
	assert.Equal(t, "", FormatHand(""))
	assert.Equal(t, "??", FormatCard("??"))
}
