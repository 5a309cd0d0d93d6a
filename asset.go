package allocation

import (
	"fmt"
	"math"
	"slices"
)

// Asset is a single holding of the portfolio.
type Asset struct {
	ID      string
	Name    string
	Ticker  string
	Class   Class
	SubType SubType

	// Value is the current value in the portfolio currency.
	Value float64
	// Shares and PricePerShare are optional. When set, Value is their product.
	Shares        float64
	PricePerShare float64

	Target Target

	// OriginalCurrency and OriginalValue keep the value as it was entered,
	// before any conversion to the portfolio currency.
	OriginalCurrency string
	OriginalValue    float64
}

// NewAssetFromShares returns an asset whose value is shares × price.
func NewAssetFromShares(id, name string, class Class, shares, price float64, target Target) Asset {
	return Asset{
		ID:            id,
		Name:          name,
		Class:         class,
		Value:         shares * price,
		Shares:        shares,
		PricePerShare: price,
		Target:        target,
	}
}

// target returns the asset target. An asset without target is a PERCENTAGE
// member at 0%, the same as a freshly added or decoded asset.
func (a Asset) target() Target {
	if a.Target == nil {
		return Percentage{0}
	}
	return a.Target
}

// Mode returns the target mode of the asset.
func (a Asset) Mode() Mode { return a.target().Mode() }

// Percent returns the target percent of the asset in its class, and whether
// the asset is in PERCENTAGE mode.
func (a Asset) Percent() (float64, bool) { return percentOf(a.target()) }

// isPercentMember reports whether the asset is a PERCENTAGE member of 'class'.
func (a Asset) isPercentMember(class Class) bool {
	_, ok := a.Percent()
	return ok && a.Class == class
}

// Validate checks the asset for invalid input.
func (a Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("asset %q has no id", a.Name)
	}
	if !a.Class.Valid() {
		return fmt.Errorf("asset %q: class %q: %w", a.ID, a.Class, ErrUnknownClass)
	}
	if err := checkAmount("value", a.Value); err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	if err := checkAmount("shares", a.Shares); err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	if err := checkAmount("price", a.PricePerShare); err != nil {
		return fmt.Errorf("asset %q: %w", a.ID, err)
	}
	switch t := a.target().(type) {
	case Percentage:
		if err := checkPercent(t.Percent); err != nil {
			return fmt.Errorf("asset %q: %w", a.ID, err)
		}
	case Fixed:
		if err := checkAmount("target value", t.Value); err != nil {
			return fmt.Errorf("asset %q: %w", a.ID, err)
		}
	}
	return nil
}

// checkAmount returns ErrNegativeValue when v is negative, NaN or infinite.
func checkAmount(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrNegativeValue)
	}
	return nil
}

// checkPercent returns ErrPercentRange when p is not in [0,100].
func checkPercent(p float64) error {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return fmt.Errorf("%v: %w", p, ErrPercentRange)
	}
	return nil
}

// indexOf returns the index of the asset 'id' or an ErrUnknownAsset.
func indexOf(assets []Asset, id string) (int, error) {
	i := slices.IndexFunc(assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("asset %q: %w", id, ErrUnknownAsset)
	}
	return i, nil
}

// ClassAssets returns the assets of a class, in order.
func ClassAssets(assets []Asset, class Class) []Asset {
	var res []Asset
	for _, a := range assets {
		if a.Class == class {
			res = append(res, a)
		}
	}
	return res
}
