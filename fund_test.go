package portfolio

import "testing"

func TestFundTable_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		fundName  string
		wantISIN  string
		wantFound bool
	}{
		{"exact fragment", "Kotak Arbitrage Fund - Direct Growth", "INF174K01LC6", true},
		{"case insensitive", "KOTAK ARBITRAGE FUND", "INF174K01LC6", true},
		{"multi asset", "ICICI Prudential Multi-Asset Fund - Direct", "INF109K015K4", true},
		{"equity savings", "ICICI Prudential Equity Savings Fund", "INF109KA11J9", true},
		{"unknown fund", "Random Fund XYZ", "", false},
		{"empty name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, found := DefaultFunds.Resolve(tt.fundName)
			if found != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.fundName, found, tt.wantFound)
			}
			if identity.ISIN != tt.wantISIN {
				t.Errorf("Resolve(%q) ISIN = %q, want %q", tt.fundName, identity.ISIN, tt.wantISIN)
			}
		})
	}
}

// Every configured fund needs both lookup keys: the ISIN for the AMFI flat
// file and the scheme code for mfapi.in. An entry missing either one is
// silently valued at cost in that mode.
func TestDefaultFunds_LookupKeys(t *testing.T) {
	for _, entry := range DefaultFunds {
		if entry.ISIN == "" {
			t.Errorf("%q: missing ISIN", entry.Match)
		}
		if entry.Code == "" {
			t.Errorf("%q: missing scheme code", entry.Match)
		}
	}
}

func TestFundTable_ResolveFirstMatchWins(t *testing.T) {
	// with overlapping fragments, declaration order decides.
	table := FundTable{
		{Match: "icici", ISIN: "FIRST", Short: "F1"},
		{Match: "icici prudential multi", ISIN: "SECOND", Short: "F2"},
	}
	identity, found := table.Resolve("ICICI Prudential Multi-Asset Fund")
	if !found {
		t.Fatal("expected a match")
	}
	if identity.ISIN != "FIRST" {
		t.Errorf("first configured entry should win, got %q", identity.ISIN)
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		fundName  string
		wantShort string
	}{
		{"Random Fund XYZ", "RA"},
		{"quant Small Cap", "QU"},
		{"X", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.fundName, func(t *testing.T) {
			identity := Fallback(tt.fundName)
			if identity.Short != tt.wantShort {
				t.Errorf("Fallback(%q).Short = %q, want %q", tt.fundName, identity.Short, tt.wantShort)
			}
			if identity.ISIN != "" {
				t.Errorf("Fallback(%q) must not carry an ISIN", tt.fundName)
			}
			if identity.Color != fallbackColor {
				t.Errorf("Fallback(%q).Color = %q, want %q", tt.fundName, identity.Color, fallbackColor)
			}
		})
	}
}
