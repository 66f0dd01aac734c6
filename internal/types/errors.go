package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Card and hand parse errors
	ErrInvalidCard ErrorCode = "INVALID_CARD"
	ErrInvalidRank ErrorCode = "INVALID_RANK"
	ErrInvalidSuit ErrorCode = "INVALID_SUIT"

	// Numeric domain errors
	ErrValueOutOfRange ErrorCode = "VALUE_OUT_OF_RANGE"

	// Table index errors
	ErrBadTableIndex     ErrorCode = "BAD_TABLE_INDEX"
	ErrUnknownTableType  ErrorCode = "UNKNOWN_TABLE_TYPE"
	ErrBadRow            ErrorCode = "BAD_ROW"
	ErrBadColumn         ErrorCode = "BAD_COLUMN"
	ErrMissingDealerCard ErrorCode = "MISSING_DEALER_CARD"

	// Raised when the hard or soft chart has no verdict for a hand.
	// This is never a trainee mistake.
	ErrChartInconsistency ErrorCode = "CHART_INCONSISTENCY"

	// Session errors
	ErrShoeDone        ErrorCode = "SHOE_DONE"
	ErrNoHandDealt     ErrorCode = "NO_HAND_DEALT"
	ErrSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrInvalidAction   ErrorCode = "INVALID_ACTION"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// GameError represents a trainer error
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// RangeError reports a value that fell outside an enumerated numeric domain.
// Min and Max are inclusive.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d outside [%d, %d]", e.Value, e.Min, e.Max)
}

// NewRangeError wraps a RangeError in a GameError with the VALUE_OUT_OF_RANGE code
func NewRangeError(what string, value, min, max int) *GameError {
	return WrapError(ErrValueOutOfRange, what, &RangeError{Value: value, Min: min, Max: max})
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain
func As(err error, target **GameError) bool {
	if target == nil || err == nil {
		return false
	}
	return errors.As(err, target)
}

// AsRange finds the first RangeError in err's chain
func AsRange(err error) (*RangeError, bool) {
	var rangeErr *RangeError
	if err == nil {
		return nil, false
	}
	if !errors.As(err, &rangeErr) {
		return nil, false
	}
	return rangeErr, true
}
