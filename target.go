package allocation

import (
	"fmt"
	"maps"
	"strings"
)

// Mode is the way a target is expressed.
type Mode string

// Target modes.
const (
	PercentageMode Mode = "PERCENTAGE" // share based
	SetMode        Mode = "SET"        // fixed absolute amount
	OffMode        Mode = "OFF"        // excluded from rebalancing
)

// ParseMode parses a target mode, case insensitive. "%" is accepted for PERCENTAGE.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToUpper(strings.TrimSpace(s))); m {
	case PercentageMode, SetMode, OffMode:
		return m, nil
	case "%":
		return PercentageMode, nil
	}
	return "", fmt.Errorf("unknown target mode %q", s)
}

// Target is the rebalancing target of an asset.
//
// It is implemented by Percentage, Fixed and Excluded only.
type Target interface {
	Mode() Mode
	assetTarget()
}

// ClassTarget is the rebalancing target of an asset class.
//
// It is implemented by Percentage, FixedSum and Excluded only.
type ClassTarget interface {
	Mode() Mode
	classTarget()
}

// Percentage is a share based target.
//
// For an asset class it is a share of the whole portfolio, for an asset a
// share of its asset class.
type Percentage struct {
	Percent float64
}

// Fixed is an absolute target amount for an asset, in the portfolio currency.
type Fixed struct {
	Value float64
}

// FixedSum is the SET mode of an asset class: its target is the sum of the
// Fixed targets of its assets, not a number of its own.
type FixedSum struct{}

// Excluded takes an asset or a class out of the rebalancing. It still counts
// as held value.
type Excluded struct{}

func (Percentage) Mode() Mode { return PercentageMode }
func (Fixed) Mode() Mode      { return SetMode }
func (FixedSum) Mode() Mode   { return SetMode }
func (Excluded) Mode() Mode   { return OffMode }

func (Percentage) assetTarget() {}
func (Fixed) assetTarget()      {}
func (Excluded) assetTarget()   {}

func (Percentage) classTarget() {}
func (FixedSum) classTarget()   {}
func (Excluded) classTarget()   {}

func (p Percentage) String() string { return fmt.Sprintf("%.2f%%", p.Percent) }
func (f Fixed) String() string      { return fmt.Sprintf("SET %.2f", f.Value) }
func (FixedSum) String() string     { return "SET" }
func (Excluded) String() string     { return "OFF" }

// percentOf returns the percent of a Percentage target, and whether it is one.
func percentOf(t interface{ Mode() Mode }) (float64, bool) {
	p, ok := t.(Percentage)
	return p.Percent, ok
}

// ClassTargets holds the target of every asset class.
type ClassTargets map[Class]ClassTarget

// DefaultClassTargets returns an even split between stocks and bonds, every
// other class at 0%.
func DefaultClassTargets() ClassTargets {
	return ClassTargets{
		Stocks:     Percentage{50},
		Bonds:      Percentage{50},
		Cash:       Percentage{0},
		Crypto:     Percentage{0},
		RealEstate: Percentage{0},
	}
}

// Clone returns an independent copy of c.
func (c ClassTargets) Clone() ClassTargets {
	return maps.Clone(c)
}

// Get returns the target of a class. A class missing from the map is Excluded.
func (c ClassTargets) Get(class Class) ClassTarget {
	if t, ok := c[class]; ok && t != nil {
		return t
	}
	return Excluded{}
}

// Complete returns a copy where every known class has an entry.
func (c ClassTargets) Complete() ClassTargets {
	res := make(ClassTargets, len(Classes))
	for _, class := range Classes {
		res[class] = c.Get(class)
	}
	return res
}
