package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// This file contains the encoding of the two output documents consumed by the
// dashboard: nav.json (the raw NAV snapshot) and portfolio.json (the full
// summary). Both are indented UTF-8 JSON, overwritten wholesale on every run.
// The job is idempotent, so a truncated file from a crashed run is simply
// rewritten on the next one.

// EncodeNavs writes the NAV snapshot document to w:
//
//	{"fetchedAt": <RFC3339>, "navs": {<key>: {"nav": n, "date": d}, ...}}
func EncodeNavs(w io.Writer, fetchedAt time.Time, quotes NavQuotes) error {
	var doc jsonObjectWriter
	doc.Append("fetchedAt", fetchedAt.Format(DatetimeFormat))
	doc.Append("navs", quotes)
	return writeIndented(w, &doc)
}

// EncodePortfolio writes the full portfolio document to w.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	var doc jsonObjectWriter
	doc.Append("generatedAt", p.GeneratedAt)
	doc.Append("summary", p.Summary)
	doc.Append("holdings", p.Holdings)
	doc.Append("transactions", p.Transactions)
	return writeIndented(w, &doc)
}

// DecodePortfolio reads a portfolio document previously written by
// EncodePortfolio. The summary and transactions commands re-render the last
// run without refetching anything.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio document: %w", err)
	}
	return &p, nil
}

// writeIndented marshals the ordered object and re-indents it for humans.
func writeIndented(w io.Writer, doc *jsonObjectWriter) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// WriteFile encodes with the given encoder into path, overwriting any
// previous file.
func WriteFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
