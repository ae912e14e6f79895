package portfolio

import (
	"encoding/json"
	"slices"
)

// Holding is the aggregate position in a single fund: the sum of all
// transactions sharing the exact same fund name. Keying is by exact name,
// so two spellings of the same scheme yield two holdings.
type Holding struct {
	FundName  string
	FundHouse string
	Folio     string

	// Identity resolved once at creation. ISIN keys the NAV lookups;
	// SchemeCode is only used to query mfapi.in and never serialized.
	ISIN       string
	SchemeCode string
	Short      string
	Color      string

	Units    Quantity
	Invested Money

	// Filled by ApplyNavs.
	LiveNAV   *Money
	LiveValue Money
	NavDate   string

	// Derived by Summarize.
	Gain         Money
	GainPct      Percent
	PortfolioPct Percent
	AvgNAV       Money
}

// Aggregate groups transactions into holdings keyed by exact fund name.
// The identity is resolved once, when the holding is first created; units and
// invested amounts are plain sums, so ordering does not matter.
// The returned slice preserves first-appearance order.
func Aggregate(txns []Transaction, funds FundTable) []*Holding {
	byName := make(map[string]*Holding)
	holdings := make([]*Holding, 0)

	for _, txn := range txns {
		h, ok := byName[txn.FundName]
		if !ok {
			identity, found := funds.Resolve(txn.FundName)
			if !found {
				identity = Fallback(txn.FundName)
			}
			h = &Holding{
				FundName:   txn.FundName,
				FundHouse:  txn.FundHouse,
				Folio:      txn.Folio,
				ISIN:       identity.ISIN,
				SchemeCode: identity.Code,
				Short:      identity.Short,
				Color:      identity.Color,
			}
			byName[txn.FundName] = h
			holdings = append(holdings, h)
		}
		h.Units = h.Units.Add(txn.Units)
		h.Invested = h.Invested.Add(txn.Invested)
	}
	return holdings
}

// ExternalCodes returns the sorted distinct external codes (ISINs) of the
// holdings that have one. These are the keys to fetch NAVs for.
func ExternalCodes(holdings []*Holding) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if h.ISIN == "" {
			continue
		}
		if _, ok := seen[h.ISIN]; ok {
			continue
		}
		seen[h.ISIN] = struct{}{}
		codes = append(codes, h.ISIN)
	}
	slices.Sort(codes)
	return codes
}

// SchemeCodeIndex maps the distinct AMFI scheme codes of the holdings to the
// ISIN their quotes are keyed by. mfapi.in is queried by scheme code while
// ApplyNavs looks quotes up by ISIN, so fetch results keyed by code must be
// rekeyed through this index.
func SchemeCodeIndex(holdings []*Holding) map[string]string {
	index := make(map[string]string)
	for _, h := range holdings {
		if h.SchemeCode == "" || h.ISIN == "" {
			continue
		}
		index[h.SchemeCode] = h.ISIN
	}
	return index
}

// MarshalJSON implements the json.Marshaler interface for Holding, keeping
// the historical field order and emitting explicit nulls for the fields the
// dashboard treats as nullable (isin, liveNAV, navDate).
func (h *Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("fundName", h.FundName)
	w.Append("fundHouse", h.FundHouse)
	w.Append("folio", h.Folio)
	w.Append("isin", nullable(h.ISIN))
	w.Append("short", h.Short)
	w.Append("color", h.Color)
	w.Append("units", h.Units)
	w.Append("invested", h.Invested)
	w.Append("liveNAV", h.LiveNAV)
	w.Append("liveValue", h.LiveValue)
	w.Append("navDate", nullable(h.NavDate))
	w.Append("portfolioPct", h.PortfolioPct)
	w.Append("gain", h.Gain)
	w.Append("gainPct", h.GainPct)
	w.Append("avgNAV", h.AvgNAV)
	return w.MarshalJSON()
}

// nullable maps the empty string to a JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// jholding mirrors the Holding JSON document for decoding.
type jholding struct {
	FundName     string   `json:"fundName"`
	FundHouse    string   `json:"fundHouse"`
	Folio        string   `json:"folio"`
	ISIN         *string  `json:"isin"`
	Short        string   `json:"short"`
	Color        string   `json:"color"`
	Units        Quantity `json:"units"`
	Invested     Money    `json:"invested"`
	LiveNAV      *Money   `json:"liveNAV"`
	LiveValue    Money    `json:"liveValue"`
	NavDate      *string  `json:"navDate"`
	PortfolioPct Percent  `json:"portfolioPct"`
	Gain         Money    `json:"gain"`
	GainPct      Percent  `json:"gainPct"`
	AvgNAV       Money    `json:"avgNAV"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Holding.
func (h *Holding) UnmarshalJSON(b []byte) error {
	var j jholding
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*h = Holding{
		FundName:     j.FundName,
		FundHouse:    j.FundHouse,
		Folio:        j.Folio,
		Short:        j.Short,
		Color:        j.Color,
		Units:        j.Units,
		Invested:     j.Invested,
		LiveNAV:      j.LiveNAV,
		LiveValue:    j.LiveValue,
		PortfolioPct: j.PortfolioPct,
		Gain:         j.Gain,
		GainPct:      j.GainPct,
		AvgNAV:       j.AvgNAV,
	}
	if j.ISIN != nil {
		h.ISIN = *j.ISIN
	}
	if j.NavDate != nil {
		h.NavDate = *j.NavDate
	}
	return nil
}
