package trainer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/repositories/results"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// Session owns one Game for one player. All methods are safe for
// concurrent use; writers hold the lock for a single deal or answer.
type Session struct {
	mu sync.RWMutex

	id         string
	playerID   string
	game       *Game
	awaiting   bool
	createdAt  time.Time
	lastActive time.Time

	repo   results.Repository
	logger *log.Logger
	clock  quartz.Clock
}

// Outcome is what the trainee sees after answering
type Outcome struct {
	*Verdict
	Record    *entities.AnswerRecord
	Persisted bool
	Snapshot  Snapshot
}

// Snapshot is a read-only view of a session
type Snapshot struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	PlayerHand    string    `json:"player_hand"`
	PlayerTotal   int       `json:"player_total"`
	PlayerSoft    bool      `json:"player_soft"`
	DealerCard    string    `json:"dealer_card"`
	Awaiting      bool      `json:"awaiting_answer"`
	NumQuestions  int       `json:"num_questions"`
	NumWrong      int       `json:"num_wrong"`
	Accuracy      float64   `json:"accuracy"`
	Mode          Mode      `json:"mode"`
	ShoeRemaining int       `json:"shoe_remaining"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewSession wraps game in a session. repo may be nil, in which case
// answers are scored but not recorded.
func NewSession(playerID string, game *Game, repo results.Repository, clock quartz.Clock, logger *log.Logger) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.Default()
	}
	now := clock.Now()
	return &Session{
		id:         uuid.New().String(),
		playerID:   playerID,
		game:       game,
		createdAt:  now,
		lastActive: now,
		repo:       repo,
		logger:     logger,
		clock:      clock,
	}
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// PlayerID returns the player the session belongs to
func (s *Session) PlayerID() string {
	return s.playerID
}

// Deal deals the next question
func (s *Session) Deal(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.clock.Now()
	if !s.game.DealAHand() {
		return s.snapshotLocked(), types.NewGameError(types.ErrShoeDone, "the shoe is finished, start a new session")
	}
	s.awaiting = true

	s.logger.Debug("Dealt hand",
		"session", s.id,
		"player", s.game.PlayerHand().String(),
		"dealer", s.game.DealerHand().String(),
	)
	return s.snapshotLocked(), nil
}

// Answer scores guess against the current hand and records it. Recording
// failures are logged and reported through Outcome.Persisted; they never
// change the verdict.
func (s *Session) Answer(ctx context.Context, guess strategy.Action) (*Outcome, error) {
	s.mu.Lock()
	if !s.awaiting {
		s.mu.Unlock()
		return nil, types.NewGameError(types.ErrNoHandDealt, "deal a hand before answering")
	}

	verdict, err := s.game.Check(guess)
	if err != nil {
		if types.IsGameError(err, types.ErrChartInconsistency) {
			logging.LogError(s.logger, "Chart lookup is inconsistent", err,
				"session", s.id,
				"player", s.game.PlayerHand().String(),
				"dealer", s.game.DealerHand().String(),
			)
		}
		s.mu.Unlock()
		return nil, err
	}
	s.awaiting = false
	s.lastActive = s.clock.Now()

	record := s.recordLocked(verdict)
	outcome := &Outcome{
		Verdict:  verdict,
		Record:   record,
		Snapshot: s.snapshotLocked(),
	}
	s.mu.Unlock()

	if s.repo == nil {
		return outcome, nil
	}
	if err := s.repo.SaveAnswer(ctx, record); err != nil {
		logging.LogError(s.logger, "Failed to record answer", err, "session", s.id, "answer_id", record.ID)
		return outcome, nil
	}
	outcome.Persisted = true
	return outcome, nil
}

// LastActive returns when the session last dealt or scored a hand
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastActive
}

// Snapshot returns the current state of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// History returns the answers recorded for this session
func (s *Session) History(ctx context.Context) ([]*entities.AnswerRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetSessionAnswers(ctx, s.id)
}

func (s *Session) recordLocked(v *Verdict) *entities.AnswerRecord {
	record := &entities.AnswerRecord{
		ID:         uuid.New().String(),
		SessionID:  s.id,
		PlayerID:   s.playerID,
		PlayerHand: s.game.PlayerHand().String(),
		Expected:   v.Expected.String(),
		Guess:      v.Guess.String(),
		Correct:    v.Correct,
		AnsweredAt: s.clock.Now().UTC(),
	}
	if card, ok := s.game.DealerHand().FirstCard(); ok {
		record.DealerCard = card.String()
	}
	if v.TableIndex != nil {
		record.TableIndex = v.TableIndex.String()
		record.TableType = v.TableIndex.TableType().String()
	}
	return record
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		PlayerID:      s.playerID,
		Awaiting:      s.awaiting,
		NumQuestions:  s.game.NumQuestions(),
		NumWrong:      s.game.NumWrong(),
		Accuracy:      s.game.Accuracy(),
		Mode:          s.game.Mode(),
		ShoeRemaining: s.game.ShoeRemaining(),
		CreatedAt:     s.createdAt,
	}

	player := s.game.PlayerHand()
	if player.NumCards() > 0 {
		snap.PlayerHand = player.String()
		snap.PlayerTotal = player.Total()
		snap.PlayerSoft = player.IsSoft()
	}
	if card, ok := s.game.DealerHand().FirstCard(); ok {
		snap.DealerCard = card.String()
	}
	return snap
}
