package entities

import (
	"strings"
)

// Hand is an ordered set of dealt cards with its best blackjack total
type Hand struct {
	cards []Card
	total int
	soft  bool
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard appends a card and recomputes the total
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
	h.recompute()
}

// recompute counts every ace as 11 and then demotes aces to 1, one at a
// time, while the hand is over 21.
func (h *Hand) recompute() {
	total := 0
	softAces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}

	for total > 21 && softAces > 0 {
		total -= 10
		softAces--
	}

	h.total = total
	h.soft = softAces > 0
}

// Total returns the best total, which may exceed 21 for a bust hand
func (h *Hand) Total() int {
	return h.total
}

// IsSoft reports whether an ace still counts as 11 in the total
func (h *Hand) IsSoft() bool {
	return h.soft
}

// IsBust reports whether the hand is over 21
func (h *Hand) IsBust() bool {
	return h.total > 21
}

// FirstCard returns the first card dealt to the hand
func (h *Hand) FirstCard() (Card, bool) {
	if len(h.cards) == 0 {
		return Card{}, false
	}
	return h.cards[0], true
}

// Splittable reports whether the hand is exactly two cards of equal value.
// A king and a queen count as a pair.
func (h *Hand) Splittable() bool {
	return len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// NumCards returns the number of cards in the hand
func (h *Hand) NumCards() int {
	return len(h.cards)
}

// String returns the card tokens joined by single spaces
func (h *Hand) String() string {
	tokens := make([]string, len(h.cards))
	for i, c := range h.cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// ParseHand parses space separated card tokens. An empty string is an
// empty hand.
func ParseHand(text string) (*Hand, error) {
	h := NewHand()
	for _, token := range strings.Fields(text) {
		c, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		h.AddCard(c)
	}
	return h, nil
}
