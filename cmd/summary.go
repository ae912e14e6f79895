package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Jaivikpanchal/portfolio-cas-data/renderer"
	"github.com/google/subcommands"
)

// summaryCmd re-renders the last generated portfolio without refetching.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary from the last update" }
func (*summaryCmd) Usage() string {
	return `casnav summary

  Displays the portfolio summary from the last generated portfolio.json,
  without reading the history or fetching NAVs.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(p))
	return subcommands.ExitSuccess
}
