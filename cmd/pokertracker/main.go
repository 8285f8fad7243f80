package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to HCL config file" default:"pokertracker.hcl"`
	Debug   bool             `help:"Enable debug logging"`

	Parse     ParseCmd     `cmd:"" help:"Parse hand-history files and report the batch outcome"`
	Stats     StatsCmd     `cmd:"" help:"Parse hand-history files and compute statistics"`
	Platforms PlatformsCmd `cmd:"" help:"List supported platforms"`
}

func main() {
	// A local .env may carry the config path in development; missing is fine.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertracker"),
		kong.Description("Poker hand-history parser and statistics engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
