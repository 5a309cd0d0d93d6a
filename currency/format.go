package currency

import (
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Info describes a currency supported by the application.
type Info struct {
	Code   string
	Name   string
	Symbol string
}

// Supported lists the currencies that can be picked as display currency.
var Supported = []Info{
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
}

// IsSupported reports whether code is one of the Supported currencies.
// The check is case sensitive.
func IsSupported(code string) bool {
	return slices.ContainsFunc(Supported, func(i Info) bool { return i.Code == code })
}

// Symbol returns the display symbol of a currency.
//
// Unsupported but known ISO currencies use the go-money grapheme, anything
// else is displayed with its code.
func Symbol(code string) string {
	for _, i := range Supported {
		if i.Code == code {
			return i.Symbol
		}
	}
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code
}

// IsISO reports whether code is a known ISO 4217 currency.
func IsISO(code string) bool {
	return money.GetCurrency(code) != nil
}

// Fraction returns the number of decimal digits of a currency: the ISO 4217
// value when known, 2 otherwise.
func Fraction(code string) int {
	if c := money.GetCurrency(code); c != nil {
		return c.Fraction
	}
	return 2
}

// Format formats amount in 'code' with its symbol, thousands grouping and the
// given decimal separator ("." or ","). The amount is rounded to the number of
// fraction digits of the currency.
//
//	Format(1234.56, "EUR", ".") == "€1,234.56"
//	Format(1234.56, "EUR", ",") == "€1.234,56"
func Format(amount float64, code, decimalSeparator string) string {
	fraction := Fraction(code)
	thousand := ","
	if decimalSeparator == "," {
		thousand = "."
	} else {
		decimalSeparator = "."
	}

	minor := decimal.NewFromFloat(amount).Shift(int32(fraction)).Round(0).IntPart()
	f := money.NewFormatter(fraction, decimalSeparator, thousand, Symbol(code), "$1")
	return f.Format(minor)
}
