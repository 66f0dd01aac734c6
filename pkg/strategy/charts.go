package strategy

import (
	"fmt"
	"strconv"

	"github.com/fadedpez/basicstrategy/internal/types"
)

const numColumns = 10

// Short names keep the tables readable
const (
	dh = DoubleElseHit
	ds = DoubleElseStand
	hh = ChartHit
	ss = ChartStand
	pp = ChartSplit
	pd = SplitIfDAS
	xx = NoAction
)

// Columns are dealer 2, 3, 4, 5, 6, 7, 8, 9, T, A.

// Hard totals. Row 0 covers 8 and below, row 9 covers 17 and above.
var hardChart = [10][numColumns]ChartAction{
	/* <=8 */ {hh, hh, hh, hh, hh, hh, hh, hh, hh, hh},
	/*   9 */ {hh, dh, dh, dh, dh, hh, hh, hh, hh, hh},
	/*  10 */ {dh, dh, dh, dh, dh, dh, dh, dh, hh, hh},
	/*  11 */ {dh, dh, dh, dh, dh, dh, dh, dh, dh, dh},
	/*  12 */ {hh, hh, ss, ss, ss, hh, hh, hh, hh, hh},
	/*  13 */ {ss, ss, ss, ss, ss, hh, hh, hh, hh, hh},
	/*  14 */ {ss, ss, ss, ss, ss, hh, hh, hh, hh, hh},
	/*  15 */ {ss, ss, ss, ss, ss, hh, hh, hh, hh, hh},
	/*  16 */ {ss, ss, ss, ss, ss, hh, hh, hh, hh, hh},
	/* 17+ */ {ss, ss, ss, ss, ss, ss, ss, ss, ss, ss},
}

const (
	hardLowRow  = 8
	hardHighRow = 17
)

// Soft totals 13 (A,2) through 21 (A,T)
var softChart = [9][numColumns]ChartAction{
	/* 13 */ {hh, hh, hh, dh, dh, hh, hh, hh, hh, hh},
	/* 14 */ {hh, hh, hh, dh, dh, hh, hh, hh, hh, hh},
	/* 15 */ {hh, hh, dh, dh, dh, hh, hh, hh, hh, hh},
	/* 16 */ {hh, hh, dh, dh, dh, hh, hh, hh, hh, hh},
	/* 17 */ {hh, dh, dh, dh, dh, hh, hh, hh, hh, hh},
	/* 18 */ {ds, ds, ds, ds, ds, ss, ss, hh, hh, hh},
	/* 19 */ {ss, ss, ss, ss, ds, ss, ss, ss, ss, ss},
	/* 20 */ {ss, ss, ss, ss, ss, ss, ss, ss, ss, ss},
	/* 21 */ {ss, ss, ss, ss, ss, ss, ss, ss, ss, ss},
}

const (
	softMinRow = 13
	softMaxRow = 21
)

// Pair splitting, A,A through T,T
var splitChart = [10][numColumns]ChartAction{
	/* A,A */ {pp, pp, pp, pp, pp, pp, pp, pp, pp, pp},
	/* 2,2 */ {pd, pd, pp, pp, pp, pp, xx, xx, xx, xx},
	/* 3,3 */ {pd, pd, pp, pp, pp, pp, xx, xx, xx, xx},
	/* 4,4 */ {xx, xx, xx, pd, pd, xx, xx, xx, xx, xx},
	/* 5,5 */ {xx, xx, xx, xx, xx, xx, xx, xx, xx, xx},
	/* 6,6 */ {pd, pp, pp, pp, pp, xx, xx, xx, xx, xx},
	/* 7,7 */ {pp, pp, pp, pp, pp, pp, xx, xx, xx, xx},
	/* 8,8 */ {pp, pp, pp, pp, pp, pp, pp, pp, pp, pp},
	/* 9,9 */ {pp, pp, pp, pp, pp, xx, pp, pp, xx, xx},
	/* T,T */ {xx, xx, xx, xx, xx, xx, xx, xx, xx, xx},
}

// ActionAt returns the raw verdict stored at the index. Hard rows below 9
// and above 16 share the edge rows. Soft rows must be 13..21.
func ActionAt(ti TableIndex) (ChartAction, error) {
	// Guard against a zero or hand-built index
	if _, err := NewTableIndex(ti.TableType(), ti.RowIndex(), int(ti.ColIndex())); err != nil {
		return NoAction, err
	}

	col := ti.ColIndex().Column()
	row := ti.RowIndex()

	switch ti.TableType() {
	case HardTable:
		return hardChart[hardRow(row)][col], nil
	case SoftTable:
		if row < softMinRow || row > softMaxRow {
			return NoAction, types.NewRangeError("soft row", row, softMinRow, softMaxRow)
		}
		return softChart[row-softMinRow][col], nil
	case SplitTable:
		return splitChart[row-1][col], nil
	case SurrenderTable:
		// No surrender data; every cell defers to the other charts
		return NoAction, nil
	default:
		return NoAction, types.NewGameError(types.ErrUnknownTableType, fmt.Sprintf("unknown table type %d", int(ti.TableType())))
	}
}

func hardRow(total int) int {
	switch {
	case total <= hardLowRow:
		return 0
	case total >= hardHighRow:
		return len(hardChart) - 1
	default:
		return total - hardLowRow
	}
}

// ChartTable is a printable copy of one chart
type ChartTable struct {
	Type      TableType       `json:"type"`
	RowLabels []string        `json:"rows"`
	ColLabels []string        `json:"cols"`
	Cells     [][]ChartAction `json:"-"`
}

// Abbrevs returns the cells in their short printed form
func (c *ChartTable) Abbrevs() [][]string {
	out := make([][]string, len(c.Cells))
	for i, row := range c.Cells {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.Abbrev()
		}
	}
	return out
}

// ColumnLabels are the dealer up-card headers in chart order
func ColumnLabels() []string {
	return []string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "A"}
}

// Chart returns a copy of the chart for display
func Chart(tt TableType) (*ChartTable, error) {
	table := &ChartTable{Type: tt, ColLabels: ColumnLabels()}

	switch tt {
	case HardTable:
		for i, row := range hardChart {
			label := strconv.Itoa(i + hardLowRow)
			if i == 0 {
				label = "<=8"
			} else if i == len(hardChart)-1 {
				label = "17+"
			}
			table.RowLabels = append(table.RowLabels, label)
			table.Cells = append(table.Cells, append([]ChartAction(nil), row[:]...))
		}
	case SoftTable:
		for i, row := range softChart {
			table.RowLabels = append(table.RowLabels, fmt.Sprintf("A,%s", DealerCard(i+softMinRow-11).Label()))
			table.Cells = append(table.Cells, append([]ChartAction(nil), row[:]...))
		}
	case SplitTable:
		for i, row := range splitChart {
			label := DealerCard(i + 1).Label()
			table.RowLabels = append(table.RowLabels, label+","+label)
			table.Cells = append(table.Cells, append([]ChartAction(nil), row[:]...))
		}
	case SurrenderTable:
	default:
		return nil, types.NewGameError(types.ErrUnknownTableType, fmt.Sprintf("unknown table type %d", int(tt)))
	}

	return table, nil
}
