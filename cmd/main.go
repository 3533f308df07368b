package main

import (
	"context"
	"flag"
	"os"

	"gpxinterp-tools/gitools/config"
	"gpxinterp-tools/gitools/terminal"

	"github.com/google/subcommands"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		terminal.Error(err, "Failed to load config")
		os.Exit(1)
	}

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&interpCmd{cfg: cfg}, "")
	subcommands.Register(&csvCmd{cfg: cfg}, "")
	subcommands.Register(&infoCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
