package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	LogLevel  string `short:"l" help:"Log level (overrides LOG_LEVEL)"`
	RulesFile string `help:"Path to the HCL rules file (overrides RULES_FILE)"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Drill   DrillCmd         `cmd:"" default:"1" help:"Practice in the terminal"`
	Lookup  LookupCmd        `cmd:"" help:"Look up the correct play for a hand"`
	Chart   ChartCmd         `cmd:"" help:"Print the strategy charts"`
	Serve   ServeCmd         `cmd:"" help:"Run the HTTP API"`
	Bot     BotCmd           `cmd:"" help:"Run the Discord bot"`
	Stats   StatsCmd         `cmd:"" help:"Show a player's accuracy and weakest spots"`
	Prune   PruneCmd         `cmd:"" help:"Delete answers older than the retention window"`
	Migrate MigrateCmd       `cmd:"" help:"Apply or create answer history migrations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trainer"),
		kong.Description("Blackjack basic strategy trainer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
