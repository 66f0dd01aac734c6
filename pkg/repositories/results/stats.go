package results

import (
	"sort"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

func validateRecord(record *entities.AnswerRecord) error {
	if record == nil {
		return types.NewGameError(types.ErrInvalidArgument, "answer record is required")
	}
	if record.ID == "" || record.SessionID == "" || record.PlayerID == "" {
		return types.NewGameError(types.ErrInvalidArgument, "answer record needs an id, session and player")
	}
	return nil
}

// aggregateCells folds answers into per-cell counters sorted by index
func aggregateCells(playerID string, records []*entities.AnswerRecord) []*entities.CellStatistics {
	cells := make(map[string]*entities.CellStatistics)
	for _, rec := range records {
		if rec.TableIndex == "" {
			continue
		}
		cell, ok := cells[rec.TableIndex]
		if !ok {
			cell = &entities.CellStatistics{
				PlayerID:   playerID,
				TableIndex: rec.TableIndex,
				TableType:  rec.TableType,
			}
			cells[rec.TableIndex] = cell
		}
		cell.Add(rec.Correct)
	}

	out := make([]*entities.CellStatistics, 0, len(cells))
	for _, cell := range cells {
		out = append(out, cell)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TableIndex < out[j].TableIndex
	})
	return out
}
