package strategy

import (
	"fmt"
	"strings"

	"github.com/fadedpez/basicstrategy/internal/types"
)

// TableType names one of the four strategy charts
type TableType int

const (
	HardTable TableType = iota
	SoftTable
	SplitTable
	SurrenderTable
)

// TableTypes lists every chart
var TableTypes = []TableType{HardTable, SoftTable, SplitTable, SurrenderTable}

var tableTypeNames = map[TableType]string{
	HardTable:      "hard",
	SoftTable:      "soft",
	SplitTable:     "split",
	SurrenderTable: "surrender",
}

// Valid rows per chart, inclusive. Split rows are the pair's card value
// with aces on row 1.
var rowBounds = map[TableType][2]int{
	HardTable:      {2, 21},
	SoftTable:      {2, 21},
	SplitTable:     {1, 10},
	SurrenderTable: {2, 20},
}

func (t TableType) String() string {
	if name, ok := tableTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TableType(%d)", int(t))
}

// ParseTableType parses "hard", "soft", "split" or "surrender"
func ParseTableType(text string) (TableType, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for t, n := range tableTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, types.NewGameError(types.ErrUnknownTableType, fmt.Sprintf("unknown table type %q", text))
}

// RowBounds returns the inclusive row range valid for the table type
func (t TableType) RowBounds() (int, int) {
	b := rowBounds[t]
	return b[0], b[1]
}

// CheckRow validates a row against the table type's range
func (t TableType) CheckRow(row int) error {
	min, max := t.RowBounds()
	if row < min || row > max {
		return types.NewRangeError(fmt.Sprintf("%s row", t), row, min, max)
	}
	return nil
}

// MarshalText encodes the table type by name
func (t TableType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a table type name
func (t *TableType) UnmarshalText(text []byte) error {
	parsed, err := ParseTableType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
