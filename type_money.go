package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard consumes plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value in the portfolio currency (INR).
type Money struct {
	value decimal.Decimal // as major unit value
}

const currencyCode = money.INR

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a Money from its decimal string representation.
func ParseMoney(str string) (Money, error) {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, currencyCode).Currency()
}

// String returns the money value formatted with the currency symbol (e.g. "₹1,234.50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money     { return Money{value: m.value.Div(q.value)} }
func (m Money) DivMoney(n Money) float64 { return m.value.Div(n.value).InexactFloat64() }

// Round returns the money value rounded half away from zero to the given number
// of decimal places. Every figure persisted in the output documents goes
// through this, so the rounding mode is uniform across the whole report.
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places)} }

// AsFloat returns the value as a float64, for ratio computations only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with an
// explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON implements the json.Marshaler interface for Money.
// It emits the bare amount, the way the dashboard expects it.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
