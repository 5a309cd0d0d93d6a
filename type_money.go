package allocation

import (
	"fmt"
	"strings"

	"github.com/etnz/allocation/currency"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display and input.
//
// The engine computes in float64, Money rounds to the currency fraction only
// when an amount leaves or enters the program.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	}
	return decimal.Zero
}

// fraction returns the number of decimal digits of the money's currency.
func (m Money) fraction() int32 {
	return int32(currency.Fraction(m.cur))
}

// String returns the money formatted with a '.' decimal separator.
func (m Money) String() string { return m.Format(".") }

// Format returns the money formatted with the given decimal separator, for
// instance €1.234,56 for ",".
func (m Money) Format(sep string) string {
	return currency.Format(m.value.InexactFloat64(), m.cur, sep)
}

// SignedString returns the string representation of the money value with a
// sign. A value that rounds to 0 is represented as "-".
func (m Money) SignedString(sep string) string {
	rounded := m.value.Round(m.fraction())
	if rounded.IsZero() {
		return "-"
	}
	if rounded.IsPositive() {
		return "+" + m.Format(sep)
	}
	return m.Format(sep)
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }

// Round returns the money rounded to its currency fraction.
func (m Money) Round() Money { return Money{value: m.value.Round(m.fraction()), cur: m.cur} }

// Float returns the value as a float64 for the engine.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// ParseAmount parses a user amount in 'cur'.
//
// 'sep' is the decimal separator, the other one of '.' and ',' is accepted as
// a thousands separator. A currency symbol or code around the number is
// ignored: "€1.234,56" with sep "," is 1234.56.
func ParseAmount(s, cur, sep string) (Money, error) {
	thousand := ","
	if sep == "," {
		thousand = "."
	}
	txt := strings.TrimSpace(s)
	neg := strings.HasPrefix(txt, "-")
	txt = strings.TrimPrefix(txt, "-")
	txt = strings.TrimSpace(strings.TrimPrefix(txt, currency.Symbol(cur)))
	txt = strings.TrimSpace(strings.TrimSuffix(txt, cur))
	txt = strings.ReplaceAll(txt, thousand, "")
	txt = strings.ReplaceAll(txt, " ", "")
	if sep != "." {
		txt = strings.ReplaceAll(txt, sep, ".")
	}
	d, err := decimal.NewFromString(txt)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if neg {
		d = d.Neg()
	}
	return Money{value: d, cur: cur}, nil
}
