package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// RenderChart draws a chart as a grid. When highlight points into the
// chart, that cell is shown reversed.
func RenderChart(table *strategy.ChartTable, highlight *strategy.TableIndex) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(strings.ToUpper(table.Type.String())))
	b.WriteString("\n")

	if len(table.Cells) == 0 {
		b.WriteString(InfoStyle.Render("no entries"))
		b.WriteString("\n")
		return b.String()
	}

	hlRow, hlCol := -1, -1
	if highlight != nil && highlight.TableType() == table.Type {
		hlRow, hlCol = chartPosition(table.Type, highlight)
	}

	b.WriteString(fmt.Sprintf("%-5s", ""))
	for _, label := range table.ColLabels {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%3s", label)))
	}
	b.WriteString("\n")

	abbrevs := table.Abbrevs()
	for i, row := range abbrevs {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-5s", table.RowLabels[i])))
		for j, cell := range row {
			text := fmt.Sprintf("%3s", cell)
			style, ok := cellStyles[cell]
			if !ok {
				style = lipgloss.NewStyle()
			}
			if i == hlRow && j == hlCol {
				style = highlightStyle
			}
			b.WriteString(style.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// chartPosition maps an index to its row and column in the printed chart
func chartPosition(tt strategy.TableType, ti *strategy.TableIndex) (int, int) {
	col := ti.ColIndex().Column()
	row := ti.RowIndex()
	switch tt {
	case strategy.HardTable:
		switch {
		case row <= 8:
			return 0, col
		case row >= 17:
			return 9, col
		default:
			return row - 8, col
		}
	case strategy.SoftTable:
		return row - 13, col
	case strategy.SplitTable:
		return row - 1, col
	default:
		return -1, -1
	}
}
