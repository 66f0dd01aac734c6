package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type dealtMsg struct {
	snap trainer.Snapshot
	err  error
}

type answeredMsg struct {
	outcome *trainer.Outcome
	err     error
}

// Model is the terminal drill. It deals from one session and scores each
// key press against the charts.
type Model struct {
	ctx     context.Context
	session *trainer.Session
	logger  *log.Logger

	keys keyMap
	help help.Model

	snap      trainer.Snapshot
	outcome   *trainer.Outcome
	err       error
	finished  bool
	showChart bool
	busy      bool
	quitting  bool
}

// NewModel creates a drill over session
func NewModel(ctx context.Context, session *trainer.Session, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		ctx:     ctx,
		session: session,
		logger:  logger.WithPrefix("tui"),
		keys:    defaultKeyMap(),
		help:    help.New(),
		snap:    session.Snapshot(),
	}
}

// Init deals the first hand
func (m Model) Init() tea.Cmd {
	return m.deal()
}

func (m Model) deal() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.session.Deal(m.ctx)
		return dealtMsg{snap: snap, err: err}
	}
}

func (m Model) answer(a strategy.Action) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.session.Answer(m.ctx, a)
		return answeredMsg{outcome: outcome, err: err}
	}
}

// Update handles key presses and session results
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case dealtMsg:
		m.busy = false
		m.snap = msg.snap
		m.outcome = nil
		m.err = nil
		if msg.err != nil {
			if types.IsGameError(msg.err, types.ErrShoeDone) {
				m.finished = true
				m.logger.Info("Shoe finished", "questions", m.snap.NumQuestions, "wrong", m.snap.NumWrong)
			} else {
				m.err = msg.err
			}
		}

	case answeredMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			logging.LogError(m.logger, "Answer failed", msg.err, "session", m.session.ID())
			return m, nil
		}
		m.err = nil
		m.outcome = msg.outcome
		m.snap = msg.outcome.Snapshot

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Chart):
		m.showChart = !m.showChart
		return m, nil
	}

	if m.busy || m.finished {
		return m, nil
	}

	if key.Matches(msg, m.keys.Next) {
		if m.snap.Awaiting {
			return m, nil
		}
		m.busy = true
		return m, m.deal()
	}

	if action, ok := m.keys.actionFor(msg.String()); ok {
		if !m.snap.Awaiting {
			return m, nil
		}
		m.busy = true
		return m, m.answer(action)
	}
	return m, nil
}

// View renders the table
func (m Model) View() string {
	if m.quitting {
		return m.summary() + "\n"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Basic Strategy Trainer"))
	b.WriteString("\n\n")

	if m.snap.DealerCard != "" {
		b.WriteString(LabelStyle.Render("Dealer: "))
		b.WriteString(renderCards(m.snap.DealerCard))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("You:    "))
		b.WriteString(renderCards(m.snap.PlayerHand))
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  (%s)", describeTotal(m.snap))))
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	case m.finished:
		b.WriteString(WarningStyle.Render("The shoe is finished."))
	case m.outcome != nil && m.outcome.Correct:
		b.WriteString(SuccessStyle.Render(m.outcome.Message))
	case m.outcome != nil:
		b.WriteString(ErrorStyle.Render(m.outcome.Message))
		if m.outcome.TableIndex != nil {
			b.WriteString(InfoStyle.Render(" (" + m.outcome.TableIndex.Describe() + ")"))
		}
	case m.snap.Awaiting:
		b.WriteString("What's your play?")
	}
	b.WriteString("\n\n")

	if m.showChart {
		b.WriteString(m.chartView())
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) summary() string {
	return fmt.Sprintf("Score: %d/%d right (%.0f%%), %d cards left in the shoe",
		m.snap.NumQuestions-m.snap.NumWrong, m.snap.NumQuestions, m.snap.Accuracy*100, m.snap.ShoeRemaining)
}

// chartView shows the chart that decided the last answer, or the hard
// chart before any answer.
func (m Model) chartView() string {
	tt := strategy.HardTable
	var highlight *strategy.TableIndex
	if m.outcome != nil && m.outcome.TableIndex != nil {
		highlight = m.outcome.TableIndex
		tt = highlight.TableType()
	}
	table, err := strategy.Chart(tt)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return RenderChart(table, highlight)
}

func describeTotal(snap trainer.Snapshot) string {
	if snap.PlayerSoft {
		return fmt.Sprintf("soft %d", snap.PlayerTotal)
	}
	return fmt.Sprintf("hard %d", snap.PlayerTotal)
}

// renderCards colors each card token by suit
func renderCards(hand string) string {
	tokens := strings.Fields(hand)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		card, err := entities.ParseCard(tok)
		if err != nil {
			out = append(out, tok)
			continue
		}
		if card.Suit == entities.Hearts || card.Suit == entities.Diamonds {
			out = append(out, RedCardStyle.Render(tok))
		} else {
			out = append(out, BlackCardStyle.Render(tok))
		}
	}
	return strings.Join(out, " ")
}
