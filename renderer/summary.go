// Package renderer renders portfolio reports as markdown documents for the
// terminal.
package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio document as a markdown report: the
// totals, one table row per holding, and the annualized return when known.
func SummaryMarkdown(p *portfolio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", p.GeneratedAt))

	s := p.Summary
	doc.PlainText(fmt.Sprintf("Invested %s, now worth %s (%s, %s)",
		s.TotalInvested, s.TotalValue, s.TotalGain.SignedString(), s.GainPct.SignedString()))
	if s.XIRR != nil {
		doc.PlainText(fmt.Sprintf("Annualized return: %s p.a.", *s.XIRR))
	}

	doc.H2("Holdings")

	rows := make([][]string, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		rows = append(rows, []string{
			h.Short,
			h.FundName,
			h.Units.String(),
			h.AvgNAV.String(),
			h.Invested.String(),
			h.LiveValue.String(),
			h.Gain.SignedString(),
			h.GainPct.SignedString(),
			h.PortfolioPct.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"", "Fund", "Units", "Avg NAV", "Invested", "Value", "Gain", "Gain%", "Weight"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("%d funds, %d transactions.", s.FundCount, s.TxnCount))

	return doc.String()
}

// NavsMarkdown renders a fetched NAV snapshot as a markdown table.
func NavsMarkdown(quotes portfolio.NavQuotes, keys []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Live NAVs")
	rows := make([][]string, 0, len(quotes))
	for _, key := range keys {
		rec, ok := quotes[key]
		if !ok {
			rows = append(rows, []string{key, "n/a", "-"})
			continue
		}
		rows = append(rows, []string{key, rec.Nav.String(), rec.Date})
	}
	doc.Table(md.TableSet{
		Header: []string{"Scheme", "NAV", "As of"},
		Rows:   rows,
	})
	return doc.String()
}
