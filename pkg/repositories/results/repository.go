package results

import (
	"context"
	"time"

	"github.com/fadedpez/basicstrategy/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_results

// Repository stores answered questions and the per-cell statistics
// derived from them
type Repository interface {
	// Answers
	SaveAnswer(ctx context.Context, record *entities.AnswerRecord) error
	GetSessionAnswers(ctx context.Context, sessionID string) ([]*entities.AnswerRecord, error)
	// GetPlayerAnswers returns the newest answers first. A limit of zero or
	// less returns everything.
	GetPlayerAnswers(ctx context.Context, playerID string, limit int) ([]*entities.AnswerRecord, error)

	// Statistics, ordered by table index
	GetCellStatistics(ctx context.Context, playerID string) ([]*entities.CellStatistics, error)

	// PruneAnswers deletes answers older than before and reports how many went
	PruneAnswers(ctx context.Context, before time.Time) (int64, error)

	// Close closes any resources used by the repository
	Close() error
}
