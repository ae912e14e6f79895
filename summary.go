package portfolio

import (
	"math"
	"time"
)

// Summary holds the portfolio-level totals.
type Summary struct {
	TotalInvested Money    `json:"totalInvested"`
	TotalValue    Money    `json:"totalValue"`
	TotalGain     Money    `json:"totalGain"`
	GainPct       Percent  `json:"gainPct"`
	XIRR          *Percent `json:"xirr"` // nil when the history is too short to annualize.
	FundCount     int      `json:"fundCount"`
	TxnCount      int      `json:"txnCount"`
}

// Portfolio is the full document written to portfolio.json: totals, the
// holdings list and the transaction history, newest first. It is recomputed
// from scratch on every run; there is no cross-run state.
type Portfolio struct {
	GeneratedAt  string        `json:"generatedAt"`
	Summary      Summary       `json:"summary"`
	Holdings     []*Holding    `json:"holdings"`
	Transactions []Transaction `json:"transactions"`
}

// ApplyNavs merges fetched NAVs into the holdings. A holding whose ISIN has a
// quote gets its live value computed from it; a holding without one is valued
// at cost, so it shows a zero gain rather than a misleading -100%.
func ApplyNavs(holdings []*Holding, quotes NavQuotes) {
	for _, h := range holdings {
		if rec, ok := quotes[h.ISIN]; h.ISIN != "" && ok {
			nav := rec.Nav
			h.LiveNAV = &nav
			h.NavDate = rec.Date
			h.LiveValue = rec.Nav.Mul(h.Units).Round(2)
		} else {
			h.LiveValue = h.Invested
		}
	}
}

// Summarize computes the portfolio totals, the per-holding derived figures and
// the simple annualized return, then assembles the output document.
// ApplyNavs must have run first. All divisions are guarded so that an empty or
// zero-cost portfolio reports zero percentages instead of failing.
func Summarize(holdings []*Holding, txns []Transaction, now time.Time) *Portfolio {
	var investedSum, valueSum Money
	for _, h := range holdings {
		investedSum = investedSum.Add(h.Invested)
		valueSum = valueSum.Add(h.LiveValue)
	}

	totalInvested := investedSum.Round(2)
	totalValue := valueSum.Round(2)
	totalGain := totalValue.Sub(totalInvested).Round(2)

	var gainPct Percent
	if !totalInvested.IsZero() {
		gainPct = Percent(totalGain.DivMoney(totalInvested) * 100).Round(2)
	}

	for _, h := range holdings {
		if !totalInvested.IsZero() {
			h.PortfolioPct = Percent(h.Invested.DivMoney(totalInvested) * 100).Round(1)
		}
		h.Gain = h.LiveValue.Sub(h.Invested).Round(2)
		if !h.Invested.IsZero() {
			h.GainPct = Percent(h.Gain.DivMoney(h.Invested) * 100).Round(2)
		}
		if !h.Units.IsZero() {
			h.AvgNAV = h.Invested.Div(h.Units).Round(4)
		}
	}

	sorted := make([]Transaction, len(txns))
	copy(sorted, txns)
	SortTransactionsDesc(sorted)

	return &Portfolio{
		GeneratedAt: now.Format(DatetimeFormat),
		Summary: Summary{
			TotalInvested: totalInvested,
			TotalValue:    totalValue,
			TotalGain:     totalGain,
			GainPct:       gainPct,
			XIRR:          annualizedReturn(txns, totalInvested, totalValue, NewDate(now.Date())),
			FundCount:     len(holdings),
			TxnCount:      len(txns),
		},
		Holdings:     holdings,
		Transactions: sorted,
	}
}

// annualizedReturn computes a coarse annualized return from the earliest
// transaction date to now. It deliberately ignores intermediate cash-flow
// timing and is NOT a true XIRR solve; upgrading it would change the
// observable output consumed by the dashboard.
func annualizedReturn(txns []Transaction, totalInvested, totalValue Money, now Date) *Percent {
	earliest, ok := EarliestDate(txns)
	if !ok || totalInvested.IsZero() || totalInvested.IsNegative() {
		return nil
	}
	years := float64(earliest.DaysUntil(now)) / 365.25
	if years <= 0.01 {
		return nil
	}
	ratio := totalValue.DivMoney(totalInvested)
	xirr := Percent((math.Pow(ratio, 1/years) - 1) * 100).Round(2)
	return &xirr
}
