package entities

import (
	rand "math/rand/v2"

	"github.com/fadedpez/basicstrategy/internal/randutil"
)

// CutCardReserve is how many cards at the back of the shoe are never dealt
const CutCardReserve = 26

// DefaultNumDecks is the standard shoe size for the trainer
const DefaultNumDecks = 6

// Shoe is a multi-deck stack of cards dealt front to back until the cut card
type Shoe struct {
	cards       []Card
	next        int
	penetration int
	rng         *rand.Rand
}

// NewShoe builds an unshuffled shoe of numDecks canonical decks using a
// time-seeded generator. A count below one is treated as one.
func NewShoe(numDecks int) *Shoe {
	return NewShoeWithRand(numDecks, randutil.NewTimeSeeded())
}

// NewShoeWithRand builds an unshuffled shoe that shuffles with rng
func NewShoeWithRand(numDecks int, rng *rand.Rand) *Shoe {
	if numDecks < 1 {
		numDecks = 1
	}
	if rng == nil {
		rng = randutil.NewTimeSeeded()
	}

	total := CardsPerDeck * numDecks
	cards := make([]Card, 0, total)
	for d := 0; d < numDecks; d++ {
		for n := 0; n < CardsPerDeck; n++ {
			cards = append(cards, Card{Rank: Rank(n % NumRanks), Suit: Suit(n / NumRanks)})
		}
	}

	return &Shoe{
		cards:       cards,
		penetration: total - CutCardReserve,
		rng:         rng,
	}
}

// Shuffle randomizes the card order and puts every card back in play
func (s *Shoe) Shuffle() {
	// Fisher-Yates
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.next = 0
}

// Deal returns the next card. It only reports false at the physical end of
// the shoe, which lies past the cut card.
func (s *Shoe) Deal() (Card, bool) {
	if s.next >= len(s.cards) {
		return Card{}, false
	}
	card := s.cards[s.next]
	s.next++
	return card, true
}

// IsDone reports whether the cut card has been reached
func (s *Shoe) IsDone() bool {
	return s.next >= s.penetration
}

// Remaining returns how many cards are left before the physical end
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Dealt returns how many cards have been dealt since the last shuffle
func (s *Shoe) Dealt() int {
	return s.next
}

// Size returns the total number of cards in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Penetration returns the number of cards dealt before the shoe is done
func (s *Shoe) Penetration() int {
	return s.penetration
}
