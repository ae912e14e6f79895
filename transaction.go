package portfolio

import "slices"

// Transaction is a single data row from a CAS transaction export.
// It is immutable once parsed; invalid rows never become transactions.
type Transaction struct {
	Date            Date     `json:"date"`            // Date is the transaction date.
	Folio           string   `json:"folio"`           // Folio is the folio number at the fund house.
	FundHouse       string   `json:"fundHouse"`       // FundHouse is the asset management company name.
	FundName        string   `json:"fundName"`        // FundName is the full scheme name as exported.
	Invested        Money    `json:"invested"`        // Invested is the amount paid for this transaction.
	Units           Quantity `json:"units"`           // Units is the number of units allotted.
	HistoricalNAV   Money    `json:"historicalNAV"`   // HistoricalNAV is the NAV at transaction time.
	HistoricalValue Money    `json:"historicalValue"` // HistoricalValue is the value at transaction time.
}

// SortTransactionsDesc sorts transactions by date, newest first. The dashboard
// shows the most recent activity on top.
func SortTransactionsDesc(txns []Transaction) {
	slices.SortStableFunc(txns, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
}

// EarliestDate returns the earliest transaction date across all transactions,
// and false when the list is empty.
func EarliestDate(txns []Transaction) (Date, bool) {
	if len(txns) == 0 {
		return Date{}, false
	}
	earliest := txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
	}
	return earliest, true
}
