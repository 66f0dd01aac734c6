package strategy

import (
	"fmt"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

// Advice is the chart answer for one player hand against one up-card
type Advice struct {
	Player      string      `json:"player"`
	Dealer      string      `json:"dealer"`
	Total       int         `json:"total"`
	Soft        bool        `json:"soft"`
	ChartAction ChartAction `json:"chart_action"`
	Action      Action      `json:"action"`
	TableIndex  *TableIndex `json:"table_index,omitempty"`
}

// Advise parses both hands from card tokens and resolves the correct play.
// Only the dealer's first card is used.
func Advise(playerText, dealerText string, rules Ruleset) (*Advice, error) {
	player, err := entities.ParseHand(playerText)
	if err != nil {
		return nil, err
	}
	dealer, err := entities.ParseHand(dealerText)
	if err != nil {
		return nil, err
	}

	chartAction, ti, err := LookupAction(player, dealer)
	if err != nil {
		return nil, err
	}
	action, ok := chartAction.ApplyRules(rules)
	if !ok {
		return nil, types.NewGameError(types.ErrChartInconsistency, fmt.Sprintf("%s has no concrete action", chartAction))
	}

	upCard, _ := dealer.FirstCard()
	return &Advice{
		Player:      player.String(),
		Dealer:      upCard.String(),
		Total:       player.Total(),
		Soft:        player.IsSoft(),
		ChartAction: chartAction,
		Action:      action,
		TableIndex:  ti,
	}, nil
}
