package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value (e.g. 12.5 for 12.5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Round returns the percentage rounded half away from zero to the given number
// of decimal places.
func (p Percent) Round(places int32) Percent {
	return Percent(decimal.NewFromFloat(float64(p)).Round(places).InexactFloat64())
}

// MarshalJSON implements the json.Marshaler interface for Percent.
func (p Percent) MarshalJSON() ([]byte, error) {
	return decimal.NewFromFloat(float64(p)).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Percent.
func (p *Percent) UnmarshalJSON(b []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	*p = Percent(v.InexactFloat64())
	return nil
}
