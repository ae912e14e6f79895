// Command casnav aggregates mutual-fund CAS transaction exports into the
// JSON documents consumed by the portfolio dashboard. Run without arguments
// it performs a full update.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Jaivikpanchal/portfolio-cas-data/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()

	// the historical surface is a no-argument batch run: default to update.
	if flag.NArg() == 0 {
		os.Args = append(os.Args, "update")
		flag.CommandLine.Parse(os.Args[1:])
	}

	os.Exit(int(commander.Execute(context.Background())))
}
