package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member"}},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "dm"},
	}}
	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}

	assert.Equal(t, "member", UserID(guild))
	assert.Equal(t, "dm", UserID(dm))
	assert.Equal(t, "", UserID(empty))
}

func TestOptions(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "lookup",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "player", Type: discordgo.ApplicationCommandOptionString, Value: "AS 7H"},
				{Name: "dealer", Type: discordgo.ApplicationCommandOptionString, Value: "9C"},
			},
		},
	}}

	opts := Options(i)
	assert.Len(t, opts, 2)
	assert.Equal(t, "AS 7H", opts["player"].StringValue())
	assert.Equal(t, "9C", opts["dealer"].StringValue())
	assert.Nil(t, opts["missing"])
}
