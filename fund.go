package portfolio

import "strings"

// FundIdentity maps a scheme name fragment to the canonical identity used by
// the dashboard: the ISIN to look up NAVs with, a two-letter label, a badge
// color and the fund house name.
type FundIdentity struct {
	Match string `json:"match"` // Match is the lowercase substring identifying the fund in a scheme name.
	ISIN  string `json:"isin"`  // ISIN identifies the scheme in the AMFI flat file. Empty for unrecognized funds.
	Code  string `json:"code"`  // Code is the numeric AMFI scheme code, the key mfapi.in is queried by.
	Short string `json:"short"` // Short is a two-character display label.
	Color string `json:"color"` // Color is a hex color for the dashboard badge.
	House string `json:"house"` // House is the fund house display name.
}

// FundTable is an ordered list of fund identities. Resolution is
// order-sensitive: with overlapping match fragments, the first entry wins.
type FundTable []FundIdentity

// fallbackColor is the badge color for funds missing from the table.
const fallbackColor = "#6b7385"

// DefaultFunds is the fund table for the schemes present in the exports.
var DefaultFunds = FundTable{
	{Match: "kotak arbitrage", ISIN: "INF174K01LC6", Code: "119771", Short: "KA", Color: "#3d8bff", House: "Kotak"},
	{Match: "icici prudential multi", ISIN: "INF109K015K4", Code: "120323", Short: "MA", Color: "#fbbf24", House: "ICICI"},
	{Match: "icici prudential equity savings", ISIN: "INF109KA11J9", Code: "133028", Short: "ES", Color: "#34d399", House: "ICICI"},
}

// Resolve returns the identity of the first entry whose match fragment is
// contained in the fund name, case-insensitively. It is pure and performs no
// I/O; callers supply the fallback identity when no entry matches.
func (t FundTable) Resolve(fundName string) (FundIdentity, bool) {
	name := strings.ToLower(fundName)
	for _, entry := range t {
		if strings.Contains(name, entry.Match) {
			return entry, true
		}
	}
	return FundIdentity{}, false
}

// Fallback builds a synthetic identity for a fund missing from the table:
// the label is the first two characters of the name uppercased, and there is
// no ISIN, so the fund will be valued at cost.
func Fallback(fundName string) FundIdentity {
	runes := []rune(fundName)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return FundIdentity{
		Short: strings.ToUpper(string(runes)),
		Color: fallbackColor,
		House: "Unknown",
	}
}
