package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrInvalidCard
	message := "bad card token"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
	s.Equal("INVALID_CARD: bad card token", err.Error(), "Error string should be formatted correctly")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrDatabaseError
	message := "failed to save answer"
	underlying := errors.New("disk full")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code)
	s.Equal(message, err.Message)
	s.Equal(underlying, err.Err)
	s.Equal("DATABASE_ERROR: failed to save answer (disk full)", err.Error())
	s.True(errors.Is(err, underlying), "Wrapped error should be reachable with errors.Is")
}

func (s *ErrorTestSuite) TestNewRangeError() {
	err := NewRangeError("soft table row", 12, 13, 21)

	s.True(IsGameError(err, ErrValueOutOfRange))

	rangeErr, ok := AsRange(err)
	s.Require().True(ok, "RangeError should be found in the chain")
	s.Equal(12, rangeErr.Value)
	s.Equal(13, rangeErr.Min)
	s.Equal(21, rangeErr.Max)
	s.Equal("value 12 outside [13, 21]", rangeErr.Error())
}

func (s *ErrorTestSuite) TestIsGameError() {
	// Setup
	gameErr := NewGameError(ErrMissingDealerCard, "dealer hand is empty")
	wrapped := fmt.Errorf("lookup: %w", gameErr)
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching game error",
			err:      gameErr,
			code:     ErrMissingDealerCard,
			expected: true,
		},
		{
			name:     "Matching wrapped game error",
			err:      wrapped,
			code:     ErrMissingDealerCard,
			expected: true,
		},
		{
			name:     "Non-matching game error",
			err:      gameErr,
			code:     ErrInternalError,
			expected: false,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrMissingDealerCard,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrMissingDealerCard,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsGameError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsGameError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	gameErr := NewGameError(ErrShoeDone, "shoe reached penetration")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Game error",
			err:      gameErr,
			expected: true,
		},
		{
			name:     "Wrapped game error",
			err:      fmt.Errorf("deal: %w", gameErr),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *GameError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(gameErr, target, "Target should be set to the game error")
			}
		})
	}
}

func (s *ErrorTestSuite) TestAsRangeMissing() {
	_, ok := AsRange(NewGameError(ErrBadRow, "row is not a number"))
	s.False(ok)

	_, ok = AsRange(nil)
	s.False(ok)
}
