package strategy

import (
	"fmt"
	"strings"

	"github.com/fadedpez/basicstrategy/internal/types"
)

// ChartAction is the raw verdict stored in a chart cell, before house
// rules are applied
type ChartAction int

const (
	// NoAction means the chart does not apply and the next one decides
	NoAction ChartAction = iota
	DoubleElseHit
	DoubleElseStand
	ChartHit
	ChartStand
	ChartSplit
	// SplitIfDAS splits only when doubling after a split is allowed
	SplitIfDAS
)

var chartActionNames = map[ChartAction]string{
	NoAction:        "NoAction",
	DoubleElseHit:   "DoubleElseHit",
	DoubleElseStand: "DoubleElseStand",
	ChartHit:        "Hit",
	ChartStand:      "Stand",
	ChartSplit:      "Split",
	SplitIfDAS:      "SplitIfDoubleAfterSplit",
}

var chartActionAbbrevs = map[ChartAction]string{
	NoAction:        "-",
	DoubleElseHit:   "Dh",
	DoubleElseStand: "Ds",
	ChartHit:        "H",
	ChartStand:      "S",
	ChartSplit:      "P",
	SplitIfDAS:      "Pd",
}

func (c ChartAction) String() string {
	if name, ok := chartActionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ChartAction(%d)", int(c))
}

// Abbrev returns the short form used when printing a chart
func (c ChartAction) Abbrev() string {
	if abbrev, ok := chartActionAbbrevs[c]; ok {
		return abbrev
	}
	return "?"
}

// MarshalText encodes the chart action by name
func (c ChartAction) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a chart action name
func (c *ChartAction) UnmarshalText(text []byte) error {
	for a, n := range chartActionNames {
		if n == string(text) {
			*c = a
			return nil
		}
	}
	return types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("unknown chart action %q", text))
}

// ApplyRules resolves the cell verdict to a concrete action. It reports
// false for NoAction.
func (c ChartAction) ApplyRules(rules Ruleset) (Action, bool) {
	return rules.Apply(c)
}

// Action is the decision a trainee makes
type Action int

const (
	Hit Action = iota + 1
	Stand
	Double
	Split
	Surrender
)

// Actions lists every trainee action
var Actions = []Action{Hit, Stand, Double, Split, Surrender}

var actionNames = map[Action]string{
	Hit:       "Hit",
	Stand:     "Stand",
	Double:    "Double",
	Split:     "Split",
	Surrender: "Surrender",
}

var actionKeys = map[rune]Action{
	'h': Hit,
	's': Stand,
	'p': Split,
	'd': Double,
	'r': Surrender,
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// Key returns the keyboard shortcut for the action
func (a Action) Key() rune {
	for k, v := range actionKeys {
		if v == a {
			return k
		}
	}
	return 0
}

// ActionFromKey maps h, s, p, d and r to their actions
func ActionFromKey(key rune) (Action, bool) {
	a, ok := actionKeys[key]
	return a, ok
}

// ParseAction accepts an action name or its single key, case-insensitively
func ParseAction(text string) (Action, error) {
	name := strings.TrimSpace(text)
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	if r := []rune(strings.ToLower(name)); len(r) == 1 {
		if a, ok := ActionFromKey(r[0]); ok {
			return a, nil
		}
	}
	return 0, types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("unknown action %q", text))
}

// MarshalText encodes the action by name
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action name or key
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
