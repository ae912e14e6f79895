package portfolio

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// This file handles the transaction history import format.
//
// The history folder contains CAS CSV exports, one file per statement. Each
// file has a header row and 8 positional columns:
//
//	date, folio, fundHouse, fundName, invested, units, historicalNAV, historicalValue
//
// Rows are independent: a malformed row is logged and skipped, the rest of
// the file is still imported.

// historyGlob matches the transaction export files in the history folder.
const historyGlob = "*.csv"

// ImportTransactions parses one CSV stream in the transaction export format.
// The header row is skipped. Rows with fewer than 8 fields, all-blank rows,
// and rows with non-numeric amounts are logged and skipped, never fatal.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are not strict about trailing columns

	txns := make([]Transaction, 0)

	// Discard the header row up front: a malformed header must not make the
	// first data row pass for it.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return txns, nil
		}
		log.Printf("skipping bad header: %v", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("skipping bad row: %v", err)
			continue
		}
		txn, err := parseRow(row)
		if err != nil {
			log.Printf("skipping bad row %q: %v", strings.Join(row, ","), err)
			continue
		}
		if txn != nil {
			txns = append(txns, *txn)
		}
	}
	return txns, nil
}

// parseRow converts one data row into a Transaction.
// A nil transaction with a nil error means the row was blank.
func parseRow(row []string) (*Transaction, error) {
	blank := true
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, nil
	}
	if len(row) < 8 {
		return nil, errors.New("want 8 fields")
	}

	date, err := ParseDate(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, err
	}
	invested, err := ParseMoney(strings.TrimSpace(row[4]))
	if err != nil {
		return nil, err
	}
	units, err := ParseQuantity(strings.TrimSpace(row[5]))
	if err != nil {
		return nil, err
	}
	historicalNAV, err := ParseMoney(strings.TrimSpace(row[6]))
	if err != nil {
		return nil, err
	}
	historicalValue, err := ParseMoney(strings.TrimSpace(row[7]))
	if err != nil {
		return nil, err
	}

	return &Transaction{
		Date:      date,
		Folio:     strings.TrimSpace(row[1]),
		FundHouse: strings.TrimSpace(row[2]),
		// some registrars leave stray quotes inside the scheme name
		FundName:        strings.ReplaceAll(strings.TrimSpace(row[3]), `"`, ""),
		Invested:        invested,
		Units:           units,
		HistoricalNAV:   historicalNAV,
		HistoricalValue: historicalValue,
	}, nil
}

// LoadHistory reads all transaction export files from the history folder,
// newest first by filename, and returns the concatenation of all valid rows.
// A file that cannot be opened is logged and skipped. An empty result is not
// an error: the caller treats it as a clean early exit.
func LoadHistory(dir string) ([]Transaction, error) {
	files, err := filepath.Glob(filepath.Join(dir, historyGlob))
	if err != nil {
		return nil, err
	}
	// newest statements carry corrections, read them first
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	if len(files) == 0 {
		log.Printf("warning: no CSV files found in %q", dir)
	}

	txns := make([]Transaction, 0)
	for _, file := range files {
		log.Printf("reading %s", filepath.Base(file))
		f, err := os.Open(file)
		if err != nil {
			log.Printf("error reading %s: %v", filepath.Base(file), err)
			continue
		}
		fileTxns, err := ImportTransactions(f)
		f.Close()
		if err != nil {
			log.Printf("error reading %s: %v", filepath.Base(file), err)
			continue
		}
		txns = append(txns, fileTxns...)
	}
	log.Printf("total transactions loaded: %d", len(txns))
	return txns, nil
}
