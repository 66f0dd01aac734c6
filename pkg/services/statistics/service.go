package statistics

import (
	"context"
	"fmt"
	"sort"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// DefaultWeakestLimit is how many cells GetWeakestCells returns by default
const DefaultWeakestLimit = 5

// Service turns the answer history into accuracy reports
type Service struct {
	repository results.Repository
}

// NewService creates a new statistics service
func NewService(repository results.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// TableAccuracy sums a player's answers for one chart
type TableAccuracy struct {
	TableType string  `json:"table_type"`
	Attempts  int     `json:"attempts"`
	Wrong     int     `json:"wrong"`
	Accuracy  float64 `json:"accuracy"`
}

// WeakCell is a chart cell the player keeps getting wrong
type WeakCell struct {
	*entities.CellStatistics
	ErrorRate   float64 `json:"error_rate"`
	Description string  `json:"description"`
	// Correct is the action the cell asks for under the default rules
	Correct string `json:"correct,omitempty"`
}

// SessionSummary describes one drill session after the fact
type SessionSummary struct {
	SessionID string                   `json:"session_id"`
	PlayerID  string                   `json:"player_id"`
	Answered  int                      `json:"answered"`
	Wrong     int                      `json:"wrong"`
	Accuracy  float64                  `json:"accuracy"`
	Missed    []*entities.AnswerRecord `json:"missed"`
}

// GetTableAccuracy returns the player's accuracy per chart, in chart order.
// Charts the player has never been asked about are left out.
func (s *Service) GetTableAccuracy(ctx context.Context, playerID string) ([]*TableAccuracy, error) {
	cells, err := s.repository.GetCellStatistics(ctx, playerID)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*TableAccuracy)
	for _, cell := range cells {
		acc, ok := byType[cell.TableType]
		if !ok {
			acc = &TableAccuracy{TableType: cell.TableType}
			byType[cell.TableType] = acc
		}
		acc.Attempts += cell.Attempts
		acc.Wrong += cell.Wrong
	}

	out := make([]*TableAccuracy, 0, len(byType))
	for _, tt := range strategy.TableTypes {
		if acc, ok := byType[tt.String()]; ok {
			acc.Accuracy = accuracy(acc.Attempts, acc.Wrong)
			out = append(out, acc)
		}
	}
	return out, nil
}

// GetWeakestCells returns up to limit cells with at least one wrong answer,
// worst error rate first and, on ties, the most attempted first
func (s *Service) GetWeakestCells(ctx context.Context, playerID string, limit int) ([]*WeakCell, error) {
	if limit < 1 {
		limit = DefaultWeakestLimit
	}

	cells, err := s.repository.GetCellStatistics(ctx, playerID)
	if err != nil {
		return nil, err
	}

	weak := make([]*WeakCell, 0, len(cells))
	for _, cell := range cells {
		if cell.Wrong == 0 {
			continue
		}
		weak = append(weak, newWeakCell(cell))
	}

	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].ErrorRate != weak[j].ErrorRate {
			return weak[i].ErrorRate > weak[j].ErrorRate
		}
		if weak[i].Attempts != weak[j].Attempts {
			return weak[i].Attempts > weak[j].Attempts
		}
		return weak[i].TableIndex < weak[j].TableIndex
	})

	if len(weak) > limit {
		weak = weak[:limit]
	}
	return weak, nil
}

func newWeakCell(cell *entities.CellStatistics) *WeakCell {
	w := &WeakCell{
		CellStatistics: cell,
		ErrorRate:      cell.ErrorRate(),
		Description:    cell.TableIndex,
	}

	// Stored indexes should always parse; fall back to the raw text if not
	ti, err := strategy.ParseTableIndex(cell.TableIndex)
	if err != nil {
		return w
	}
	w.Description = ti.Describe()
	if chartAction, err := strategy.ActionAt(ti); err == nil {
		if action, ok := chartAction.ApplyRules(strategy.Ruleset{}); ok {
			w.Correct = action.String()
		}
	}
	return w
}

// GetSessionSummary totals one session's answers and lists the misses
func (s *Service) GetSessionSummary(ctx context.Context, sessionID string) (*SessionSummary, error) {
	answers, err := s.repository.GetSessionAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, types.NewGameError(types.ErrSessionNotFound, fmt.Sprintf("no answers recorded for session %s", sessionID))
	}

	summary := &SessionSummary{
		SessionID: sessionID,
		PlayerID:  answers[0].PlayerID,
		Answered:  len(answers),
		Missed:    []*entities.AnswerRecord{},
	}
	for _, a := range answers {
		if !a.Correct {
			summary.Wrong++
			summary.Missed = append(summary.Missed, a)
		}
	}
	summary.Accuracy = accuracy(summary.Answered, summary.Wrong)
	return summary, nil
}

func accuracy(attempts, wrong int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(attempts-wrong) / float64(attempts)
}
