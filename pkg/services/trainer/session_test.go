package trainer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	mock_results "github.com/fadedpez/basicstrategy/pkg/repositories/results/mock"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mock_results.MockRepository
	clock   *quartz.Mock
	start   time.Time
	session *Session
	ctx     context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mock_results.NewMockRepository(s.ctrl)
	s.clock = quartz.NewMock(s.T())
	s.start = s.clock.Now()
	s.ctx = context.Background()
	s.session = NewSession("player-1", newOrderedGame(strategy.Ruleset{}), s.repo, s.clock, logging.Discard())
}

func (s *SessionTestSuite) TestNewSession() {
	snap := s.session.Snapshot()
	s.NotEmpty(s.session.ID())
	s.Equal(s.session.ID(), snap.ID)
	s.Equal("player-1", snap.PlayerID)
	s.Equal("", snap.PlayerHand)
	s.False(snap.Awaiting)
	s.Equal(ModePlaying, snap.Mode)
	s.True(s.start.Equal(snap.CreatedAt))
}

func (s *SessionTestSuite) TestAnswerBeforeDeal() {
	_, err := s.session.Answer(s.ctx, strategy.Hit)
	s.True(types.IsGameError(err, types.ErrNoHandDealt))
}

func (s *SessionTestSuite) TestDealAndAnswerRecordsAnswer() {
	snap, err := s.session.Deal(s.ctx)
	s.Require().NoError(err)
	s.Equal("AS 3S", snap.PlayerHand)
	s.Equal(14, snap.PlayerTotal)
	s.True(snap.PlayerSoft)
	s.Equal("2S", snap.DealerCard)
	s.True(snap.Awaiting)

	s.clock.Advance(5 * time.Second)

	var saved *entities.AnswerRecord
	s.repo.EXPECT().SaveAnswer(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *entities.AnswerRecord) error {
			saved = rec
			return nil
		},
	)

	outcome, err := s.session.Answer(s.ctx, strategy.Stand)
	s.Require().NoError(err)
	s.False(outcome.Correct)
	s.Equal(strategy.Hit, outcome.Expected)
	s.Equal("Wrong: Hit, not Stand", outcome.Message)
	s.True(outcome.Persisted)
	s.Equal(1, outcome.Snapshot.NumQuestions)
	s.Equal(1, outcome.Snapshot.NumWrong)
	s.False(outcome.Snapshot.Awaiting)

	s.Require().NotNil(saved)
	s.Equal(outcome.Record, saved)
	s.NotEmpty(saved.ID)
	s.Equal(s.session.ID(), saved.SessionID)
	s.Equal("player-1", saved.PlayerID)
	s.Equal("AS 3S", saved.PlayerHand)
	s.Equal("2S", saved.DealerCard)
	s.Equal("soft:14,2", saved.TableIndex)
	s.Equal("soft", saved.TableType)
	s.Equal("Hit", saved.Expected)
	s.Equal("Stand", saved.Guess)
	s.False(saved.Correct)
	s.True(s.start.Add(5 * time.Second).Equal(saved.AnsweredAt))
}

func (s *SessionTestSuite) TestAnswerTwiceNeedsNewDeal() {
	_, err := s.session.Deal(s.ctx)
	s.Require().NoError(err)

	s.repo.EXPECT().SaveAnswer(s.ctx, gomock.Any()).Return(nil)
	_, err = s.session.Answer(s.ctx, strategy.Hit)
	s.Require().NoError(err)

	_, err = s.session.Answer(s.ctx, strategy.Hit)
	s.True(types.IsGameError(err, types.ErrNoHandDealt))
}

func (s *SessionTestSuite) TestInvalidActionKeepsHand() {
	_, err := s.session.Deal(s.ctx)
	s.Require().NoError(err)

	_, err = s.session.Answer(s.ctx, strategy.Action(42))
	s.True(types.IsGameError(err, types.ErrInvalidAction))
	s.True(s.session.Snapshot().Awaiting)
	s.Equal(0, s.session.Snapshot().NumQuestions)
}

func (s *SessionTestSuite) TestSaveFailureKeepsVerdict() {
	_, err := s.session.Deal(s.ctx)
	s.Require().NoError(err)

	s.repo.EXPECT().SaveAnswer(s.ctx, gomock.Any()).Return(errors.New("database is locked"))

	outcome, err := s.session.Answer(s.ctx, strategy.Hit)
	s.Require().NoError(err)
	s.True(outcome.Correct)
	s.False(outcome.Persisted)
	s.Equal(1, s.session.Snapshot().NumQuestions)
}

func (s *SessionTestSuite) TestDealOnFinishedShoe() {
	for i := 0; i < 9; i++ {
		_, err := s.session.Deal(s.ctx)
		s.Require().NoError(err)
	}

	snap, err := s.session.Deal(s.ctx)
	s.True(types.IsGameError(err, types.ErrShoeDone))
	s.Equal(ModeDone, snap.Mode)
}

func (s *SessionTestSuite) TestHistory() {
	records := []*entities.AnswerRecord{{ID: "a1", SessionID: s.session.ID()}}
	s.repo.EXPECT().GetSessionAnswers(s.ctx, s.session.ID()).Return(records, nil)

	got, err := s.session.History(s.ctx)
	s.Require().NoError(err)
	s.Equal(records, got)
}

func (s *SessionTestSuite) TestWithoutRepository() {
	session := NewSession("player-2", newOrderedGame(strategy.Ruleset{}), nil, s.clock, logging.Discard())
	_, err := session.Deal(s.ctx)
	s.Require().NoError(err)

	outcome, err := session.Answer(s.ctx, strategy.Hit)
	s.Require().NoError(err)
	s.True(outcome.Correct)
	s.False(outcome.Persisted)

	history, err := session.History(s.ctx)
	s.NoError(err)
	s.Empty(history)
}
