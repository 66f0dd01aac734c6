package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/basicstrategy/internal/types"
)

type ChartTestSuite struct {
	suite.Suite
}

func TestChartSuite(t *testing.T) {
	suite.Run(t, new(ChartTestSuite))
}

func (s *ChartTestSuite) at(text string) ChartAction {
	ti, err := ParseTableIndex(text)
	s.Require().NoError(err)
	action, err := ActionAt(ti)
	s.Require().NoError(err, text)
	return action
}

func (s *ChartTestSuite) TestHardByIndex() {
	testCases := []struct {
		index    string
		expected ChartAction
	}{
		{index: "hard:2,1", expected: ChartHit},
		{index: "hard:5,4", expected: ChartHit},
		{index: "hard:8,10", expected: ChartHit},
		{index: "hard:9,2", expected: ChartHit},
		{index: "hard:9,6", expected: DoubleElseHit},
		{index: "hard:10,1", expected: ChartHit},
		{index: "hard:11,1", expected: DoubleElseHit},
		{index: "hard:12,4", expected: ChartStand},
		{index: "hard:13,1", expected: ChartHit},
		{index: "hard:17,1", expected: ChartStand},
		{index: "hard:21,10", expected: ChartStand},
	}

	for _, tc := range testCases {
		s.Run(tc.index, func() {
			s.Equal(tc.expected, s.at(tc.index))
		})
	}
}

func (s *ChartTestSuite) TestSoftByIndex() {
	s.Equal(DoubleElseHit, s.at("soft:13,5"))
	s.Equal(ChartHit, s.at("soft:13,4"))
	s.Equal(DoubleElseStand, s.at("soft:19,6"))
	s.Equal(ChartStand, s.at("soft:19,5"))
	s.Equal(ChartStand, s.at("soft:21,1"))

	ti, err := ParseTableIndex("soft:12,5")
	s.Require().NoError(err)
	_, err = ActionAt(ti)
	s.True(types.IsGameError(err, types.ErrValueOutOfRange))
}

func (s *ChartTestSuite) TestSplitByIndex() {
	s.Equal(SplitIfDAS, s.at("split:2,3"))
	s.Equal(ChartSplit, s.at("split:2,7"))
	s.Equal(NoAction, s.at("split:2,8"))
	s.Equal(ChartSplit, s.at("split:9,9"))
	s.Equal(NoAction, s.at("split:9,1"))
	s.Equal(ChartSplit, s.at("split:1,1"))
}

func (s *ChartTestSuite) TestSurrenderIsEmpty() {
	for row := 2; row <= 20; row++ {
		for col := 1; col <= 10; col++ {
			ti, err := NewTableIndex(SurrenderTable, row, col)
			s.Require().NoError(err)
			action, err := ActionAt(ti)
			s.Require().NoError(err)
			s.Equal(NoAction, action)
		}
	}
}

func (s *ChartTestSuite) TestZeroIndexIsRejected() {
	_, err := ActionAt(TableIndex{})
	s.Error(err)
}

func (s *ChartTestSuite) TestChartRendering() {
	hard, err := Chart(HardTable)
	s.Require().NoError(err)
	s.Len(hard.RowLabels, 10)
	s.Equal("<=8", hard.RowLabels[0])
	s.Equal("12", hard.RowLabels[4])
	s.Equal("17+", hard.RowLabels[9])
	s.Equal(ColumnLabels(), hard.ColLabels)
	s.Equal("Dh", hard.Abbrevs()[3][0])

	soft, err := Chart(SoftTable)
	s.Require().NoError(err)
	s.Equal("A,2", soft.RowLabels[0])
	s.Equal("A,T", soft.RowLabels[8])
	s.Equal("Ds", soft.Abbrevs()[5][0])

	split, err := Chart(SplitTable)
	s.Require().NoError(err)
	s.Equal("A,A", split.RowLabels[0])
	s.Equal("T,T", split.RowLabels[9])
	s.Equal("Pd", split.Abbrevs()[1][0])
	s.Equal("-", split.Abbrevs()[9][0])

	surrender, err := Chart(SurrenderTable)
	s.Require().NoError(err)
	s.Empty(surrender.Cells)

	// Rendered copies do not alias the charts
	hard.Cells[0][0] = ChartStand
	s.Equal(ChartHit, s.at("hard:5,2"))

	_, err = Chart(TableType(9))
	s.True(types.IsGameError(err, types.ErrUnknownTableType))
}
