package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/internal/randutil"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

func newTestModel(t *testing.T) Model {
	game := trainer.NewGameWithShoe(entities.NewShoeWithRand(1, randutil.New(1)), strategy.Ruleset{})
	session := trainer.NewSession("player-1", game, nil, quartz.NewMock(t), logging.Discard())
	return NewModel(context.Background(), session, logging.Discard())
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// step applies msg and runs any command it returns
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(Model)
	}
	return m
}

func TestModel_InitDealsFirstHand(t *testing.T) {
	m := newTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	m = step(t, m, cmd())
	assert.Equal(t, "AS 3S", m.snap.PlayerHand)
	assert.Equal(t, "2S", m.snap.DealerCard)
	assert.True(t, m.snap.Awaiting)

	view := m.View()
	assert.Contains(t, view, "Dealer:")
	assert.Contains(t, view, "soft 14")
	assert.Contains(t, view, "What's your play?")
}

func TestModel_WrongThenRightAnswer(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, m.Init()())

	m = step(t, m, press('s'))
	require.NotNil(t, m.outcome)
	assert.False(t, m.outcome.Correct)
	assert.Equal(t, strategy.Hit, m.outcome.Expected)
	assert.Equal(t, 1, m.snap.NumWrong)
	assert.Contains(t, m.View(), "soft A,3 vs 2")

	m = step(t, m, press('n'))
	assert.Equal(t, "4S 6S", m.snap.PlayerHand)
	assert.Nil(t, m.outcome)

	m = step(t, m, press('d'))
	require.NotNil(t, m.outcome)
	assert.True(t, m.outcome.Correct)
	assert.Equal(t, 2, m.snap.NumQuestions)
	assert.Equal(t, 1, m.snap.NumWrong)
}

func TestModel_IgnoresOutOfTurnKeys(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, m.Init()())

	// next hand is refused while a question is open
	_, cmd := m.Update(press('n'))
	assert.Nil(t, cmd)

	m = step(t, m, press('h'))
	require.NotNil(t, m.outcome)

	// a second answer needs a new deal
	_, cmd = m.Update(press('h'))
	assert.Nil(t, cmd)

	// unbound keys do nothing
	_, cmd = m.Update(press('x'))
	assert.Nil(t, cmd)
}

func TestModel_SpaceDealsNextHand(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, m.Init()())
	m = step(t, m, press('h'))

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "4S 6S", m.snap.PlayerHand)
}

func TestModel_ShoeFinishes(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, m.Init()())

	for i := 0; i < 9; i++ {
		require.True(t, m.snap.Awaiting, "hand %d", i+1)
		m = step(t, m, press('s'))
		m = step(t, m, press('n'))
	}

	assert.True(t, m.finished)
	assert.Equal(t, 9, m.snap.NumQuestions)
	assert.Contains(t, m.View(), "The shoe is finished.")

	_, cmd := m.Update(press('h'))
	assert.Nil(t, cmd)
}

func TestModel_ChartToggle(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, m.Init()())

	m = step(t, m, press('c'))
	assert.True(t, m.showChart)
	assert.Contains(t, m.View(), "HARD")

	m = step(t, m, press('h'))
	view := m.View()
	assert.Contains(t, view, "SOFT")
	assert.Contains(t, view, "A,3")

	m = step(t, m, press('c'))
	assert.False(t, m.showChart)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(press('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, next.(Model).View(), "Score: 0/0 right")
}

func TestRenderChart_HighlightsCell(t *testing.T) {
	table, err := strategy.Chart(strategy.SplitTable)
	require.NoError(t, err)

	ti, err := strategy.NewTableIndex(strategy.SplitTable, 8, 1)
	require.NoError(t, err)

	out := RenderChart(table, &ti)
	assert.Contains(t, out, "SPLIT")
	assert.Contains(t, out, "8,8")

	row, col := chartPosition(strategy.SplitTable, &ti)
	assert.Equal(t, 7, row)
	assert.Equal(t, 9, col)
}

func TestChartPosition_HardEdges(t *testing.T) {
	low, err := strategy.NewTableIndex(strategy.HardTable, 5, 10)
	require.NoError(t, err)
	row, col := chartPosition(strategy.HardTable, &low)
	assert.Equal(t, 0, row)
	assert.Equal(t, 8, col)

	high, err := strategy.NewTableIndex(strategy.HardTable, 20, 2)
	require.NoError(t, err)
	row, col = chartPosition(strategy.HardTable, &high)
	assert.Equal(t, 9, row)
	assert.Equal(t, 0, col)
}

func TestRenderChart_Surrender(t *testing.T) {
	table, err := strategy.Chart(strategy.SurrenderTable)
	require.NoError(t, err)
	assert.Contains(t, RenderChart(table, nil), "no entries")
}
