package allocation

import (
	"fmt"
	"strings"
)

// Class is the asset class an asset is grouped under.
type Class string

// The fixed set of asset classes.
const (
	Stocks     Class = "STOCKS"
	Bonds      Class = "BONDS"
	Cash       Class = "CASH"
	Crypto     Class = "CRYPTO"
	RealEstate Class = "REAL_ESTATE"
)

// Classes lists every asset class in canonical order. Derived sequences
// (class summaries, reports) always follow this order.
var Classes = []Class{Stocks, Bonds, Cash, Crypto, RealEstate}

// ParseClass parses an asset class name. It is case insensitive and accepts
// "real estate" or "real-estate" for REAL_ESTATE.
func ParseClass(s string) (Class, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	c := Class(norm)
	if !c.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownClass)
	}
	return c, nil
}

// Valid reports whether c is one of the known asset classes.
func (c Class) Valid() bool {
	switch c {
	case Stocks, Bonds, Cash, Crypto, RealEstate:
		return true
	}
	return false
}

// Title returns a human friendly name: "Real estate" for REAL_ESTATE.
func (c Class) Title() string {
	s := strings.ReplaceAll(strings.ToLower(string(c)), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SubType is an optional, finer grained kind of asset.
type SubType string

// Known sub types. Any other value is accepted and kept as is.
const (
	ETF             SubType = "ETF"
	Stock           SubType = "STOCK"
	SingleBond      SubType = "SINGLE_BOND"
	SavingsAccount  SubType = "SAVINGS_ACCOUNT"
	CheckingAccount SubType = "CHECKING_ACCOUNT"
	Coin            SubType = "CRYPTO"
	Property        SubType = "PROPERTY"
	Other           SubType = "OTHER"
)

// ParseSubType normalizes a sub type: upper case, spaces and dashes as
// underscores. Unknown sub types are kept.
func ParseSubType(s string) SubType {
	norm := strings.ToUpper(strings.TrimSpace(s))
	return SubType(strings.NewReplacer(" ", "_", "-", "_").Replace(norm))
}
