// Package amfi fetches the latest mutual-fund NAVs from the AMFI public
// flat file (NAVAll.txt): one download covering every scheme in India, then
// filtered down to the ISINs present in the portfolio.
//
// This is the bulk integration: a single wide request, all-or-nothing. Any
// network or format failure aborts the fetch and the caller falls back to
// valuing holdings at cost.
package amfi

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
)

// URL is the AMFI all-schemes NAV flat file.
const URL = "https://www.amfiindia.com/spages/NAVAll.txt"

const requestTimeout = 30 * time.Second

// Fetch downloads NAVAll.txt and returns the NAVs for the wanted ISINs.
// One round trip; on any failure it returns an empty result and the error.
func Fetch(isins []string) (portfolio.NavQuotes, error) {
	log.Printf("fetching NAV data from AMFI")

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Get(URL)
	if err != nil {
		return portfolio.NavQuotes{}, fmt.Errorf("cannot fetch AMFI data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return portfolio.NavQuotes{}, fmt.Errorf("cannot fetch AMFI data: %v", resp.Status)
	}

	quotes, err := Parse(resp.Body, isins)
	if err != nil {
		return portfolio.NavQuotes{}, fmt.Errorf("cannot parse AMFI data: %w", err)
	}
	log.Printf("found %d / %d ISINs in AMFI data", len(quotes), len(isins))
	return quotes, nil
}

// Parse reads the NAVAll.txt format and keeps the records matching wanted
// ISINs. The file is semicolon-separated:
//
//	SchemeCode;ISIN-Div-Reinvest;ISIN-Div-Payout;SchemeName;NAVDate;NAV
//
// Interleaved section headers and blank lines have fewer fields and are
// skipped, as are schemes whose NAV is not a number ("N.A.").
func Parse(r io.Reader, isins []string) (portfolio.NavQuotes, error) {
	wanted := make(map[string]struct{}, len(isins))
	for _, isin := range isins {
		wanted[isin] = struct{}{}
	}

	quotes := make(portfolio.NavQuotes)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ";")
		if len(parts) < 6 {
			continue
		}
		nav, err := portfolio.ParseMoney(strings.TrimSpace(parts[5]))
		if err != nil {
			continue
		}
		date := strings.TrimSpace(parts[4])
		for _, isin := range []string{strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])} {
			if isin == "" {
				continue
			}
			if _, ok := wanted[isin]; ok {
				quotes[isin] = portfolio.NavRecord{Nav: nav, Date: date}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return portfolio.NavQuotes{}, err
	}
	return quotes, nil
}
