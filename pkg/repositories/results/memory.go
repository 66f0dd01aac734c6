package results

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadedpez/basicstrategy/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Answers in insertion order
	answers []*entities.AnswerRecord
	// Map of sessionID to answers
	sessionAnswers map[string][]*entities.AnswerRecord
	// Map of playerID to answers
	playerAnswers map[string][]*entities.AnswerRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessionAnswers: make(map[string][]*entities.AnswerRecord),
		playerAnswers:  make(map[string][]*entities.AnswerRecord),
	}
}

// SaveAnswer stores an answer under its session and player
func (r *MemoryRepository) SaveAnswer(ctx context.Context, record *entities.AnswerRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	r.answers = append(r.answers, &stored)
	r.sessionAnswers[stored.SessionID] = append(r.sessionAnswers[stored.SessionID], &stored)
	r.playerAnswers[stored.PlayerID] = append(r.playerAnswers[stored.PlayerID], &stored)
	return nil
}

// GetSessionAnswers returns a session's answers in the order given
func (r *MemoryRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]*entities.AnswerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyRecords(r.sessionAnswers[sessionID]), nil
}

// GetPlayerAnswers returns a player's answers, newest first
func (r *MemoryRepository) GetPlayerAnswers(ctx context.Context, playerID string, limit int) ([]*entities.AnswerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := copyRecords(r.playerAnswers[playerID])
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AnsweredAt.After(records[j].AnsweredAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// GetCellStatistics aggregates a player's answers per table index
func (r *MemoryRepository) GetCellStatistics(ctx context.Context, playerID string) ([]*entities.CellStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return aggregateCells(playerID, r.playerAnswers[playerID]), nil
}

// PruneAnswers drops answers older than before
func (r *MemoryRepository) PruneAnswers(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.answers[:0]
	var pruned int64
	for _, a := range r.answers {
		if a.AnsweredAt.Before(before) {
			pruned++
			continue
		}
		kept = append(kept, a)
	}
	r.answers = kept

	// Rebuild the indexes from what is left
	r.sessionAnswers = make(map[string][]*entities.AnswerRecord)
	r.playerAnswers = make(map[string][]*entities.AnswerRecord)
	for _, a := range r.answers {
		r.sessionAnswers[a.SessionID] = append(r.sessionAnswers[a.SessionID], a)
		r.playerAnswers[a.PlayerID] = append(r.playerAnswers[a.PlayerID], a)
	}

	return pruned, nil
}

// Close implements Repository
func (r *MemoryRepository) Close() error {
	return nil
}

func copyRecords(records []*entities.AnswerRecord) []*entities.AnswerRecord {
	out := make([]*entities.AnswerRecord, len(records))
	for i, rec := range records {
		c := *rec
		out[i] = &c
	}
	return out
}
