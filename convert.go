package allocation

import (
	"fmt"

	"github.com/etnz/allocation/currency"
)

// ConvertAssets returns a copy of 'assets' converted from the currency 'from'
// to 'to'. Value, PricePerShare and Fixed targets are converted, percentages
// never are. Original currency and value are kept as entered.
//
// The rate table must be valid, and every converted asset must still be.
func ConvertAssets(assets []Asset, from, to string, rates currency.Rates) ([]Asset, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	res := make([]Asset, 0, len(assets))
	for _, a := range assets {
		var err error
		if a.Value, err = currency.Convert(a.Value, from, to, rates); err != nil {
			return nil, fmt.Errorf("asset %q: %w", a.ID, err)
		}
		if a.PricePerShare, err = currency.Convert(a.PricePerShare, from, to, rates); err != nil {
			return nil, fmt.Errorf("asset %q: %w", a.ID, err)
		}
		if f, ok := a.Target.(Fixed); ok {
			v, err := currency.Convert(f.Value, from, to, rates)
			if err != nil {
				return nil, fmt.Errorf("asset %q: %w", a.ID, err)
			}
			a.Target = Fixed{v}
		}
		if a.OriginalCurrency == "" {
			a.OriginalCurrency = from
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("converting to %s: %w", to, err)
		}
		res = append(res, a)
	}
	return res, nil
}
