package cmd

import (
	"bytes"
	"context"
	"flag"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

// fundsCmd lists the configured fund identity table.
type fundsCmd struct{}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the configured fund identity table" }
func (*fundsCmd) Usage() string {
	return `casnav funds

  Lists the fund table used to resolve scheme names to canonical identities.
  Resolution is order-sensitive: the first matching entry wins.
`
}

func (*fundsCmd) SetFlags(f *flag.FlagSet) {}

func (*fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Configured funds")

	rows := make([][]string, 0, len(portfolio.DefaultFunds))
	for _, entry := range portfolio.DefaultFunds {
		rows = append(rows, []string{entry.Match, entry.ISIN, entry.Code, entry.Short, entry.Color, entry.House})
	}
	doc.Table(md.TableSet{
		Header: []string{"Match", "ISIN", "Code", "Short", "Color", "House"},
		Rows:   rows,
	})

	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
