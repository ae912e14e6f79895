// Package mfapi fetches the latest mutual-fund NAVs from the mfapi.in REST
// API, one request per scheme.
//
// This is the narrow integration: requests are independent, so a failure on
// one scheme is logged and the remaining schemes are still fetched. Partial
// results are acceptable.
package mfapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	"github.com/PaesslerAG/jsonpath"
)

// baseURL is the mfapi.in latest-NAV endpoint, keyed by AMFI scheme code.
// A variable so tests can point it at a local server.
var baseURL = "https://api.mfapi.in/mf/%s/latest"

const requestTimeout = 15 * time.Second

// Fetch retrieves the latest NAV for each distinct code. The result is keyed
// by the same codes, possibly missing the ones that failed.
func Fetch(codes []string) portfolio.NavQuotes {
	client := &http.Client{Timeout: requestTimeout}

	quotes := make(portfolio.NavQuotes)
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		rec, err := fetchLatest(client, code)
		if err != nil {
			log.Printf("warning: cannot fetch NAV for %s: %v", code, err)
			continue
		}
		quotes[code] = rec
	}
	log.Printf("fetched %d / %d schemes from mfapi.in", len(quotes), len(seen))
	return quotes
}

// fetchLatest queries one scheme and extracts the latest NAV record.
//
// The payload nests the record in a one-element history array, and the nav
// comes as a string:
//
//	{"meta": {...}, "data": [{"date": "29-08-2026", "nav": "12.3456"}], "status": "SUCCESS"}
func fetchLatest(client *http.Client, code string) (portfolio.NavRecord, error) {
	addr := fmt.Sprintf(baseURL, code)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return portfolio.NavRecord{}, err
	}

	navStr, err := stringAt(jobj, "$.data[0].nav")
	if err != nil {
		return portfolio.NavRecord{}, err
	}
	nav, err := portfolio.ParseMoney(navStr)
	if err != nil {
		return portfolio.NavRecord{}, fmt.Errorf("invalid nav %q: %w", navStr, err)
	}
	date, err := stringAt(jobj, "$.data[0].date")
	if err != nil {
		return portfolio.NavRecord{}, err
	}
	return portfolio.NavRecord{Nav: nav, Date: date}, nil
}

// stringAt extracts a string value from a parsed JSON document.
func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string: %v", path, jval)
	}
	return s, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
