// Package cmd implements the casnav CLI that turns CAS transaction exports
// into dashboard JSON documents.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands registered by the main package.
var Commands = []subcommands.Command{
	&updateCmd{},
	&summaryCmd{},
	&fundsCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var historyDir = flag.String("history-dir", filepath.Join("data", "history"), "Folder containing the CAS transaction CSV exports")
var outDir = flag.String("out-dir", "data", "Folder to write nav.json and portfolio.json into")

// NavFile returns the path of the NAV snapshot document.
func NavFile() string { return filepath.Join(*outDir, "nav.json") }

// PortfolioFile returns the path of the portfolio summary document.
func PortfolioFile() string { return filepath.Join(*outDir, "portfolio.json") }

// LoadPortfolio reads the portfolio document written by the last update run.
func LoadPortfolio() (*portfolio.Portfolio, error) {
	f, err := os.Open(PortfolioFile())
	if err != nil {
		return nil, fmt.Errorf("cannot open %q (run 'casnav update' first): %w", PortfolioFile(), err)
	}
	defer f.Close()
	return portfolio.DecodePortfolio(f)
}
