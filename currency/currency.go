// Package currency converts monetary amounts between the currencies of a
// portfolio using a table of fallback rates.
//
// A rate table maps each currency code to its value in the pivot currency:
// {"USD": 0.85} reads "1 USD = 0.85 EUR" when EUR is the pivot. Any pair of
// currencies is converted through the pivot, so a table rebased on another
// pivot keeps converting correctly.
package currency

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// EUR is the pivot of the default rate table.
const EUR = "EUR"

// ErrUnknownCurrency is returned when a currency is missing from a rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// Rates maps a currency code to its rate to the pivot currency.
type Rates map[string]float64

// DefaultRates returns a fresh copy of the built-in fallback rates to EUR.
func DefaultRates() Rates {
	return Rates{
		"EUR": 1,
		"USD": 0.85,   // 1 USD = 0.85 EUR
		"GBP": 1.15,   // 1 GBP = 1.15 EUR
		"CHF": 1.08,   // 1 CHF = 1.08 EUR
		"JPY": 0.0054, // 1 JPY = 0.0054 EUR
		"AUD": 0.57,   // 1 AUD = 0.57 EUR
		"CAD": 0.62,   // 1 CAD = 0.62 EUR
	}
}

// Clone returns an independent copy of r.
func (r Rates) Clone() Rates {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Codes returns the currency codes of the table in alphabetical order.
func (r Rates) Codes() []string {
	return slices.Sorted(maps.Keys(r))
}

// Validate checks that every rate is a positive finite number.
func (r Rates) Validate() error {
	var errs []error
	for _, code := range r.Codes() {
		rate := r[code]
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			errs = append(errs, fmt.Errorf("invalid rate for %s: must be a positive number", code))
		}
	}
	return errors.Join(errs...)
}

// rate returns the rate of 'code' or an ErrUnknownCurrency.
func (r Rates) rate(code string) (float64, error) {
	rate, ok := r[code]
	if !ok {
		return 0, fmt.Errorf("%q is not in the rate table: %w", code, ErrUnknownCurrency)
	}
	return rate, nil
}

// Convert converts amount from one currency to another through the pivot of
// the rate table.
//
// Converting a currency to itself returns amount unchanged, even when that
// currency is not in the table.
func Convert(amount float64, from, to string, rates Rates) (float64, error) {
	if from == to {
		return amount, nil
	}
	rf, err := rates.rate(from)
	if err != nil {
		return 0, fmt.Errorf("cannot convert from %s: %w", from, err)
	}
	rt, err := rates.rate(to)
	if err != nil {
		return 0, fmt.Errorf("cannot convert to %s: %w", to, err)
	}
	pivot := amount * rf
	return pivot / rt, nil
}

// ToEUR converts amount in 'code' into EUR using an EUR pivoted table.
func ToEUR(amount float64, code string, rates Rates) (float64, error) {
	return Convert(amount, code, EUR, rates)
}

// FromEUR converts an amount in EUR into 'code' using an EUR pivoted table.
func FromEUR(amount float64, code string, rates Rates) (float64, error) {
	return Convert(amount, EUR, code, rates)
}

// Rebase returns a new table where newBase is the pivot (rate exactly 1).
//
// Relative rates between all other currencies are preserved. The old base,
// when absent from the table, is added with a rate of 1/rates[newBase].
func Rebase(rates Rates, oldBase, newBase string) (Rates, error) {
	if oldBase == newBase {
		return rates.Clone(), nil
	}
	pivot, err := rates.rate(newBase)
	if err != nil {
		return nil, fmt.Errorf("cannot rebase on %s: %w", newBase, err)
	}
	if pivot == 0 {
		return nil, fmt.Errorf("cannot rebase on %s: rate is zero", newBase)
	}

	rebased := make(Rates, len(rates)+1)
	for code, rate := range rates {
		rebased[code] = rate / pivot
	}
	if _, ok := rates[oldBase]; !ok {
		rebased[oldBase] = 1 / pivot
	}
	rebased[newBase] = 1
	return rebased, nil
}
