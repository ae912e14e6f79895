package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"time"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	"github.com/Jaivikpanchal/portfolio-cas-data/amfi"
	"github.com/Jaivikpanchal/portfolio-cas-data/mfapi"
	"github.com/Jaivikpanchal/portfolio-cas-data/renderer"
	"github.com/google/subcommands"
)

// updateCmd runs the whole batch job: read history, aggregate, fetch NAVs,
// write the output documents.
type updateCmd struct {
	source string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "read the transaction history and refresh the dashboard JSON" }
func (*updateCmd) Usage() string {
	return `casnav update [-source amfi|mfapi]

  Reads all CAS CSV exports from the history folder, aggregates them into
  holdings, fetches live NAVs and writes nav.json and portfolio.json.
  Running casnav without arguments does the same.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "source", "amfi", "NAV source: 'amfi' (one bulk download) or 'mfapi' (one request per scheme).")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.source != "amfi" && c.source != "mfapi" {
		fmt.Fprintf(os.Stderr, "Error: unknown NAV source %q, want 'amfi' or 'mfapi'\n", c.source)
		return subcommands.ExitUsageError
	}

	txns, err := portfolio.LoadHistory(*historyDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history folder %q: %v\n", *historyDir, err)
		return subcommands.ExitFailure
	}
	if len(txns) == 0 {
		// not an error: nothing to do, leave the previous output untouched.
		fmt.Fprintln(os.Stderr, "No transactions found. Exiting.")
		return subcommands.ExitSuccess
	}

	holdings := portfolio.Aggregate(txns, portfolio.DefaultFunds)
	log.Printf("%d unique funds found", len(holdings))

	isins := portfolio.ExternalCodes(holdings)
	var quotes portfolio.NavQuotes
	switch c.source {
	case "amfi":
		quotes, err = amfi.Fetch(isins)
		if err != nil {
			// bulk fetch is all-or-nothing: value everything at cost.
			log.Printf("warning: %v", err)
			quotes = portfolio.NavQuotes{}
		}
	case "mfapi":
		// mfapi.in is queried by numeric scheme code, not ISIN; the result
		// is rekeyed back to ISINs for ApplyNavs.
		index := portfolio.SchemeCodeIndex(holdings)
		codes := make([]string, 0, len(index))
		for code := range index {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		quotes = mfapi.Fetch(codes).Rekey(index)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output folder %q: %v\n", *outDir, err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	if err := portfolio.WriteFile(NavFile(), func(w io.Writer) error {
		return portfolio.EncodeNavs(w, now, quotes)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing NAV snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("NAV data written to %s", NavFile())

	portfolio.ApplyNavs(holdings, quotes)
	p := portfolio.Summarize(holdings, txns, now)

	if err := portfolio.WriteFile(PortfolioFile(), func(w io.Writer) error {
		return portfolio.EncodePortfolio(w, p)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio summary: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("portfolio data written to %s", PortfolioFile())

	printMarkdown(renderer.NavsMarkdown(quotes, isins))
	printMarkdown(renderer.SummaryMarkdown(p))
	return subcommands.ExitSuccess
}
