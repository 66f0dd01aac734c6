package entities

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/basicstrategy/internal/types"
)

type HandTestSuite struct {
	suite.Suite
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) mustParse(text string) *Hand {
	h, err := ParseHand(text)
	s.Require().NoError(err)
	return h
}

func (s *HandTestSuite) TestEmptyHand() {
	h := NewHand()
	s.Equal(0, h.Total())
	s.False(h.IsSoft())
	s.False(h.Splittable())
	s.Equal(0, h.NumCards())

	_, ok := h.FirstCard()
	s.False(ok)
}

func (s *HandTestSuite) TestAceReductionSequence() {
	h := NewHand()
	steps := []struct {
		card  string
		total int
		soft  bool
	}{
		{card: "AS", total: 11, soft: true},
		{card: "AH", total: 12, soft: true},
		{card: "TD", total: 12, soft: false},
		{card: "TC", total: 22, soft: false},
	}

	for _, step := range steps {
		card, err := ParseCard(step.card)
		s.Require().NoError(err)
		h.AddCard(card)
		s.Equal(step.total, h.Total(), "after %s", step.card)
		s.Equal(step.soft, h.IsSoft(), "after %s", step.card)
	}
	s.True(h.IsBust())
}

func (s *HandTestSuite) TestTotals() {
	testCases := []struct {
		name  string
		hand  string
		total int
		soft  bool
	}{
		{name: "hard sixteen", hand: "9H 7C", total: 16, soft: false},
		{name: "soft eighteen", hand: "AH 7C", total: 18, soft: true},
		{name: "blackjack", hand: "AS KD", total: 21, soft: true},
		{name: "soft becomes hard", hand: "AH 7C 9D", total: 17, soft: false},
		{name: "three aces", hand: "AH AC AD", total: 13, soft: true},
		{name: "ace and six then ace", hand: "AH 6C AD", total: 18, soft: true},
		{name: "face cards", hand: "KH QC", total: 20, soft: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			h := s.mustParse(tc.hand)
			s.Equal(tc.total, h.Total())
			s.Equal(tc.soft, h.IsSoft())
		})
	}
}

func (s *HandTestSuite) TestSplittable() {
	testCases := []struct {
		name     string
		hand     string
		expected bool
	}{
		{name: "eights", hand: "8H 8D", expected: true},
		{name: "ten and queen", hand: "TH QD", expected: true},
		{name: "aces", hand: "AS AD", expected: true},
		{name: "eight and nine", hand: "8H 9D", expected: false},
		{name: "single card", hand: "8H", expected: false},
		{name: "three of a kind", hand: "8H 8D 8C", expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.mustParse(tc.hand).Splittable())
		})
	}
}

func (s *HandTestSuite) TestFirstCardAndCards() {
	h := s.mustParse("QS 4H")

	first, ok := h.FirstCard()
	s.Require().True(ok)
	s.Equal(NewCard(Queen, Spades), first)

	cards := h.Cards()
	s.Equal([]Card{NewCard(Queen, Spades), NewCard(Four, Hearts)}, cards)

	// The returned slice is a copy
	cards[0] = NewCard(Two, Clubs)
	first, _ = h.FirstCard()
	s.Equal(NewCard(Queen, Spades), first)
}

func (s *HandTestSuite) TestParseAndFormat() {
	s.Equal("AH 2C", s.mustParse("AH 2C").String())
	s.Equal("TD AS", s.mustParse("  10d   1s ").String())
	s.Equal("", s.mustParse("").String())
	s.Equal(0, s.mustParse("").NumCards())
}

func (s *HandTestSuite) TestParseHandError() {
	_, err := ParseHand("AH ZZ")
	s.Require().Error(err)
	s.True(types.IsGameError(err, types.ErrInvalidRank))

	_, err = ParseHand("AH 2X")
	s.Require().Error(err)
	s.True(types.IsGameError(err, types.ErrInvalidSuit))
}
