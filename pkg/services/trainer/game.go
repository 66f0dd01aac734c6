package trainer

import (
	"fmt"
	"slices"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// Mode is the state of a drill
type Mode int

const (
	ModePlaying Mode = iota
	ModeDone
)

func (m Mode) String() string {
	if m == ModeDone {
		return "done"
	}
	return "playing"
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes "playing" or "done"
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*m = ModePlaying
	case "done":
		*m = ModeDone
	default:
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown mode %q", text))
	}
	return nil
}

// Game deals questions from one shoe and keeps score. It is not safe for
// concurrent use; Session adds locking.
type Game struct {
	shoe   *entities.Shoe
	player *entities.Hand
	dealer *entities.Hand
	rules  strategy.Ruleset

	numQuestions int
	numWrong     int
}

// NewGame creates a game with a freshly shuffled six deck shoe
func NewGame() *Game {
	shoe := entities.NewShoe(entities.DefaultNumDecks)
	shoe.Shuffle()
	return NewGameWithShoe(shoe, strategy.Ruleset{})
}

// NewGameWithShoe creates a game dealing from shoe as-is. The caller
// decides whether to shuffle it first.
func NewGameWithShoe(shoe *entities.Shoe, rules strategy.Ruleset) *Game {
	return &Game{
		shoe:   shoe,
		player: entities.NewHand(),
		dealer: entities.NewHand(),
		rules:  rules,
	}
}

// DealAHand deals player, dealer, player into fresh hands. It returns
// false and changes nothing when the shoe is done or short of cards.
func (g *Game) DealAHand() bool {
	if g.shoe.IsDone() || g.shoe.Remaining() < 3 {
		return false
	}

	p1, _ := g.shoe.Deal()
	d1, _ := g.shoe.Deal()
	p2, _ := g.shoe.Deal()

	g.player = entities.NewHand(p1, p2)
	g.dealer = entities.NewHand(d1)
	return true
}

// PlayerHand returns the player's current hand. Callers must not modify it.
func (g *Game) PlayerHand() *entities.Hand {
	return g.player
}

// DealerHand returns the dealer's current hand. Callers must not modify it.
func (g *Game) DealerHand() *entities.Hand {
	return g.dealer
}

// ChartAction returns the chart verdict for the current hands
func (g *Game) ChartAction() (strategy.ChartAction, *strategy.TableIndex, error) {
	return strategy.LookupAction(g.player, g.dealer)
}

// CorrectAction returns the verdict resolved under the game's rules
func (g *Game) CorrectAction() (strategy.Action, *strategy.TableIndex, error) {
	return strategy.CorrectAction(g.player, g.dealer, g.rules)
}

// AnsweredRight counts a correct answer
func (g *Game) AnsweredRight() {
	g.numQuestions++
}

// AnsweredWrong counts a wrong answer
func (g *Game) AnsweredWrong() {
	g.numQuestions++
	g.numWrong++
}

// NumQuestions returns how many questions have been answered
func (g *Game) NumQuestions() int {
	return g.numQuestions
}

// NumWrong returns how many answers were wrong
func (g *Game) NumWrong() int {
	return g.numWrong
}

// Accuracy returns the fraction of right answers, 0 before the first one
func (g *Game) Accuracy() float64 {
	if g.numQuestions == 0 {
		return 0
	}
	return float64(g.numQuestions-g.numWrong) / float64(g.numQuestions)
}

// Mode is derived from the shoe
func (g *Game) Mode() Mode {
	if g.shoe.IsDone() {
		return ModeDone
	}
	return ModePlaying
}

// Rules returns the house rules the game is scored under
func (g *Game) Rules() strategy.Ruleset {
	return g.rules
}

// ShoeRemaining returns the cards left before the physical end of the shoe
func (g *Game) ShoeRemaining() int {
	return g.shoe.Remaining()
}

// Verdict is the result of checking one guess
type Verdict struct {
	Guess       strategy.Action
	Expected    strategy.Action
	ChartAction strategy.ChartAction
	TableIndex  *strategy.TableIndex
	Correct     bool
	Message     string
}

// Check scores a guess against the current hands and bumps the counters.
// Lookup errors leave the counters untouched.
func (g *Game) Check(guess strategy.Action) (*Verdict, error) {
	if !slices.Contains(strategy.Actions, guess) {
		return nil, types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("unknown action %d", int(guess)))
	}

	chartAction, ti, err := g.ChartAction()
	if err != nil {
		return nil, err
	}
	expected, ok := chartAction.ApplyRules(g.rules)
	if !ok {
		return nil, types.NewGameError(types.ErrChartInconsistency, fmt.Sprintf("%s has no concrete action", chartAction))
	}

	v := &Verdict{
		Guess:       guess,
		Expected:    expected,
		ChartAction: chartAction,
		TableIndex:  ti,
		Correct:     guess == expected,
	}
	if v.Correct {
		g.AnsweredRight()
		v.Message = fmt.Sprintf("Correct! %s", expected)
	} else {
		g.AnsweredWrong()
		v.Message = fmt.Sprintf("Wrong: %s, not %s", expected, guess)
	}
	return v, nil
}
