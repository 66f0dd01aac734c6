package entities

import (
	"fmt"
	"strings"

	"github.com/fadedpez/basicstrategy/internal/types"
)

// Rank represents a card rank, Ace first
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a suit
const NumRanks = 13

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a deck
const NumSuits = 4

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = NumRanks * NumSuits

var rankTokens = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}

var suitTokens = [NumSuits]string{"S", "H", "D", "C"}

var suitNames = [NumSuits]string{"Spades", "Hearts", "Diamonds", "Clubs"}

// String returns the single character rank token
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankTokens[r]
}

// String returns the single character suit token
func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return "?"
	}
	return suitTokens[s]
}

// Name returns the suit's full name
func (s Suit) Name() string {
	if s < Spades || s > Clubs {
		return "Unknown"
	}
	return suitNames[s]
}

// Card represents a playing card. Cards are plain values; two cards are
// equal when rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the blackjack point value. Aces count 11 here; hands
// reduce them to 1 when needed.
func (c Card) Value() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank) + 1
	}
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Index returns the card's position 0..51 in a canonical deck
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// CardFromIndex is the inverse of Index
func CardFromIndex(n int) (Card, error) {
	if n < 0 || n >= CardsPerDeck {
		return Card{}, types.NewRangeError("card index", n, 0, CardsPerDeck-1)
	}
	return Card{Rank: Rank(n % NumRanks), Suit: Suit(n / NumRanks)}, nil
}

// String returns the canonical two character token, e.g. "TD"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a card token. "1" is accepted for an ace and "10" for a
// ten; rank letters and the suit letter are case-insensitive.
func ParseCard(text string) (Card, error) {
	token := strings.TrimSpace(text)
	if len(token) < 2 {
		return Card{}, types.NewGameError(types.ErrInvalidCard, fmt.Sprintf("card token %q is too short", text))
	}

	rankText, suitText := token[:len(token)-1], token[len(token)-1:]

	rank, err := parseRank(rankText)
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(suitText)
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(text string) (Rank, error) {
	switch strings.ToUpper(text) {
	case "A", "1":
		return Ace, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	if len(text) == 1 && text[0] >= '2' && text[0] <= '9' {
		return Rank(text[0] - '1'), nil
	}
	return 0, types.NewGameError(types.ErrInvalidRank, fmt.Sprintf("invalid rank token %q", text))
}

func parseSuit(text string) (Suit, error) {
	switch strings.ToUpper(text) {
	case "S":
		return Spades, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	}
	return 0, types.NewGameError(types.ErrInvalidSuit, fmt.Sprintf("invalid suit token %q", text))
}

// MarshalText encodes the card as its canonical token
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card token
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}
