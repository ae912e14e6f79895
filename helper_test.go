package portfolio

// INR is a helper for tests to create money from const.
func INR(v float64) Money { return M(v) }

// tx is a helper for tests to create a minimal transaction.
func tx(date, fundName string, invested, units float64) Transaction {
	return Transaction{
		Date:     MustParseDate(date),
		Folio:    "123456/78",
		FundName: fundName,
		Invested: M(invested),
		Units:    Q(units),
	}
}
