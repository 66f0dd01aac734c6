package commands

import (
	"strings"

	"github.com/fadedpez/basicstrategy/pkg/entities"
)

var suitEmoji = map[entities.Suit]string{
	entities.Hearts:   "♥️",
	entities.Diamonds: "♦️",
	entities.Clubs:    "♣️",
	entities.Spades:   "♠️",
}

// FormatCard renders a card token with its suit symbol. Unparseable
// tokens come back unchanged.
func FormatCard(token string) string {
	card, err := entities.ParseCard(token)
	if err != nil {
		return token
	}
	return card.Rank.String() + suitEmoji[card.Suit]
}

// FormatHand renders space separated card tokens
func FormatHand(hand string) string {
	tokens := strings.Fields(hand)
	for i, tok := range tokens {
		tokens[i] = FormatCard(tok)
	}
	return strings.Join(tokens, " ")
}
