package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

// DealerCard is the dealer's up-card value, 1..10 with 1 meaning ace
type DealerCard int

const (
	minDealerCard = 1
	maxDealerCard = 10
)

// NewDealerCard validates a dealer card value
func NewDealerCard(v int) (DealerCard, error) {
	if v < minDealerCard || v > maxDealerCard {
		return 0, types.NewRangeError("dealer card", v, minDealerCard, maxDealerCard)
	}
	return DealerCard(v), nil
}

// DealerCardFromCard maps a card to its dealer column value
func DealerCardFromCard(c entities.Card) DealerCard {
	if c.IsAce() {
		return 1
	}
	return DealerCard(c.Value())
}

// Column returns the chart column: 2..9 map to 0..7, ten to 8 and ace to 9
func (d DealerCard) Column() int {
	if d == 1 {
		return 9
	}
	return int(d) - 2
}

// Label returns the chart header for the dealer card
func (d DealerCard) Label() string {
	switch d {
	case 1:
		return "A"
	case 10:
		return "T"
	default:
		return strconv.Itoa(int(d))
	}
}

// Cell is a row and dealer column within one chart
type Cell struct {
	Row int
	Col DealerCard
}

// TableIndex addresses one cell of one chart. The zero value is not a
// valid index; build one with NewTableIndex or ParseTableIndex.
type TableIndex struct {
	tableType TableType
	cell      Cell
}

// NewTableIndex validates the row for the table type and the dealer card
func NewTableIndex(tt TableType, row int, col int) (TableIndex, error) {
	if _, ok := tableTypeNames[tt]; !ok {
		return TableIndex{}, types.NewGameError(types.ErrUnknownTableType, fmt.Sprintf("unknown table type %d", int(tt)))
	}
	if err := tt.CheckRow(row); err != nil {
		return TableIndex{}, err
	}
	dc, err := NewDealerCard(col)
	if err != nil {
		return TableIndex{}, err
	}
	return TableIndex{tableType: tt, cell: Cell{Row: row, Col: dc}}, nil
}

// ParseTableIndex parses "<type>:<row>,<col>". Whitespace around each
// token is ignored.
func ParseTableIndex(text string) (TableIndex, error) {
	typeText, cellText, ok := strings.Cut(text, ":")
	if !ok {
		return TableIndex{}, types.NewGameError(types.ErrBadTableIndex, fmt.Sprintf("table index %q is missing ':'", text))
	}

	tt, err := ParseTableType(typeText)
	if err != nil {
		return TableIndex{}, err
	}

	rowText, colText, ok := strings.Cut(cellText, ",")
	if !ok {
		return TableIndex{}, types.NewGameError(types.ErrBadTableIndex, fmt.Sprintf("table index %q is missing ','", text))
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return TableIndex{}, types.WrapError(types.ErrBadRow, fmt.Sprintf("row %q is not a number", strings.TrimSpace(rowText)), err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return TableIndex{}, types.WrapError(types.ErrBadColumn, fmt.Sprintf("column %q is not a number", strings.TrimSpace(colText)), err)
	}

	return NewTableIndex(tt, row, col)
}

// String formats the index as "type:row,col"
func (ti TableIndex) String() string {
	return fmt.Sprintf("%s:%d,%d", ti.tableType, ti.cell.Row, int(ti.cell.Col))
}

// TableType returns the chart the index points into
func (ti TableIndex) TableType() TableType {
	return ti.tableType
}

// RowIndex returns the row
func (ti TableIndex) RowIndex() int {
	return ti.cell.Row
}

// ColIndex returns the dealer card
func (ti TableIndex) ColIndex() DealerCard {
	return ti.cell.Col
}

// Cell returns the row and column
func (ti TableIndex) Cell() Cell {
	return ti.cell
}

// MarshalText encodes the index in its text form
func (ti TableIndex) MarshalText() ([]byte, error) {
	return []byte(ti.String()), nil
}

// UnmarshalText decodes an index from its text form
func (ti *TableIndex) UnmarshalText(text []byte) error {
	parsed, err := ParseTableIndex(string(text))
	if err != nil {
		return err
	}
	*ti = parsed
	return nil
}

// Describe renders the index for people, e.g. "soft A,7 vs 9" or
// "split 8,8 vs A"
func (ti TableIndex) Describe() string {
	dealer := ti.cell.Col.Label()
	switch ti.tableType {
	case SoftTable:
		return fmt.Sprintf("soft A,%s vs %s", DealerCard(ti.cell.Row-11).Label(), dealer)
	case SplitTable:
		pair := DealerCard(ti.cell.Row).Label()
		return fmt.Sprintf("split %s,%s vs %s", pair, pair, dealer)
	default:
		return fmt.Sprintf("%s %d vs %s", ti.tableType, ti.cell.Row, dealer)
	}
}
