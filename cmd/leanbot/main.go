package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Serve       ServeCmd         `cmd:"" help:"Serve the lean poker player protocol"`
	Decide      DecideCmd        `cmd:"" help:"Decide a bet for a game state"`
	Rank        RankCmd          `cmd:"" help:"Rank five or more cards"`
	Range       RangeCmd         `cmd:"" help:"Check hole cards against the opening range"`
	VersionInfo VersionCmd       `cmd:"" name:"version" help:"Print the build and bot versions"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("leanbot"),
		kong.Description("Lean poker Texas Hold'em player"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
