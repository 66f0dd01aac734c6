package strategy

import (
	"fmt"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

// LookupAction finds the chart verdict for the player's hand against the
// dealer's up-card. Charts are consulted in order: surrender, split (only
// for a pair), then soft or hard. The first verdict other than NoAction
// wins. The returned index is nil only when no chart was addressed.
func LookupAction(player, dealer *entities.Hand) (ChartAction, *TableIndex, error) {
	if player == nil || dealer == nil {
		return NoAction, nil, types.NewGameError(types.ErrInvalidArgument, "player and dealer hands are required")
	}

	upCard, ok := dealer.FirstCard()
	if !ok {
		return NoAction, nil, types.NewGameError(types.ErrMissingDealerCard, "dealer hand has no cards")
	}
	dealerCard := DealerCardFromCard(upCard)

	action, ti, err := lookupSurrender(player, dealerCard)
	if err != nil || action != NoAction {
		return action, ti, err
	}

	if player.Splittable() {
		action, ti, err = lookupSplit(player, dealerCard)
		if err != nil || action != NoAction {
			return action, ti, err
		}
	}

	if player.IsSoft() {
		action, ti, err = lookupSoft(player, dealerCard)
	} else {
		action, ti, err = lookupHard(player, dealerCard)
	}
	if err != nil {
		return NoAction, ti, err
	}

	if action == NoAction {
		return NoAction, ti, types.NewGameError(types.ErrChartInconsistency,
			fmt.Sprintf("no verdict for %q against %s at %s", player.String(), dealerCard.Label(), ti))
	}

	return action, ti, nil
}

// CorrectAction resolves the chart verdict to the action the trainee
// should pick under the rules
func CorrectAction(player, dealer *entities.Hand, rules Ruleset) (Action, *TableIndex, error) {
	chartAction, ti, err := LookupAction(player, dealer)
	if err != nil {
		return 0, ti, err
	}

	action, ok := chartAction.ApplyRules(rules)
	if !ok {
		return 0, ti, types.NewGameError(types.ErrChartInconsistency, fmt.Sprintf("%s has no concrete action", chartAction))
	}
	return action, ti, nil
}

// Surrender has no data yet. It never addresses a cell.
func lookupSurrender(_ *entities.Hand, _ DealerCard) (ChartAction, *TableIndex, error) {
	return NoAction, nil, nil
}

func lookupSplit(player *entities.Hand, dealer DealerCard) (ChartAction, *TableIndex, error) {
	first, ok := player.FirstCard()
	if !ok {
		return NoAction, nil, nil
	}

	row := first.Value()
	if first.IsAce() {
		row = 1
	}

	return lookupAt(SplitTable, row, dealer)
}

func lookupSoft(player *entities.Hand, dealer DealerCard) (ChartAction, *TableIndex, error) {
	return lookupAt(SoftTable, player.Total(), dealer)
}

func lookupHard(player *entities.Hand, dealer DealerCard) (ChartAction, *TableIndex, error) {
	return lookupAt(HardTable, player.Total(), dealer)
}

func lookupAt(tt TableType, row int, dealer DealerCard) (ChartAction, *TableIndex, error) {
	ti, err := NewTableIndex(tt, row, int(dealer))
	if err != nil {
		return NoAction, nil, err
	}

	action, err := ActionAt(ti)
	if err != nil {
		return NoAction, &ti, err
	}
	return action, &ti, nil
}
