package portfolio

// NavRecord is the latest published NAV for a scheme, with the publication
// date as reported by the upstream source (format varies by source).
type NavRecord struct {
	Nav  Money  `json:"nav"`
	Date string `json:"date"`
}

// NavQuotes maps a scheme key (ISIN or scheme code) to its latest NAV.
// An empty map is a valid result: every holding then falls back to cost.
type NavQuotes map[string]NavRecord

// Rekey returns the quotes with every key translated through the index.
// Quotes whose key is missing from the index are dropped.
func (q NavQuotes) Rekey(index map[string]string) NavQuotes {
	out := make(NavQuotes, len(q))
	for key, rec := range q {
		if translated, ok := index[key]; ok {
			out[translated] = rec
		}
	}
	return out
}
