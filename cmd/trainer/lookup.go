package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fadedpez/basicstrategy/internal/tui"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type LookupCmd struct {
	Player string `arg:"" help:"Player cards, e.g. \"AS 3S\""`
	Dealer string `arg:"" help:"Dealer up card, e.g. 2S"`
	JSON   bool   `help:"Print the answer as JSON"`
}

func (c *LookupCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	advice, err := strategy.Advise(c.Player, c.Dealer, cfg.Rules)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(advice)
	}

	kind := "hard"
	if advice.Soft {
		kind = "soft"
	}
	fmt.Printf("%s (%s %d) vs %s: %s\n", advice.Player, kind, advice.Total, advice.Dealer, advice.Action)
	if advice.TableIndex != nil {
		fmt.Println(tui.InfoStyle.Render(advice.TableIndex.Describe() + ", chart says " + advice.ChartAction.String()))
	}
	return nil
}

type ChartCmd struct {
	Type string `arg:"" optional:"" help:"Chart to print (hard, soft, split or surrender); all when omitted"`
}

func (c *ChartCmd) Run() error {
	tables := strategy.TableTypes
	if c.Type != "" {
		tt, err := strategy.ParseTableType(c.Type)
		if err != nil {
			return err
		}
		tables = []strategy.TableType{tt}
	}

	for _, tt := range tables {
		table, err := strategy.Chart(tt)
		if err != nil {
			return err
		}
		fmt.Println(tui.RenderChart(table, nil))
	}
	return nil
}
