package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play against the dealer on this terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many runs with a bot in the player's seat"`
	Rules    RulesCmd         `cmd:"" help:"Print the effective configuration as HCL"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("buckshot"),
		kong.Description("Turn-based shotgun duel against the dealer"),
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
