package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addCmd struct {
	id      string
	name    string
	ticker  string
	class   string
	subType string
	value   string
	shares  float64
	price   string
	percent string
	fixed   string
	off     bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to the allocation" }
func (*addCmd) Usage() string {
	return `add -class <CLASS> -name <name> [-id <id>] [-ticker <ticker>] [-type <sub-type>]
    [-value <amount> | -shares <n> -price <amount>] [-percent <percent> | -fixed <amount> | -off]

  Adds an asset. Its value is either given directly or computed from a number
  of shares and a price per share. Without an explicit id a random one is
  generated.

  The asset targets 0% of its class by default. A positive target percent is
  taken from the other PERCENTAGE assets of the class, proportionally to their
  own target.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "asset id, random by default")
	f.StringVar(&c.name, "name", "", "asset name")
	f.StringVar(&c.ticker, "ticker", "", "optional ticker")
	f.StringVar(&c.class, "class", "", "asset class (STOCKS, BONDS, CASH, CRYPTO, REAL_ESTATE)")
	f.StringVar(&c.subType, "type", "", "optional sub type (ETF, STOCK, SINGLE_BOND, ...)")
	f.StringVar(&c.value, "value", "", "current value")
	f.Float64Var(&c.shares, "shares", 0, "number of shares")
	f.StringVar(&c.price, "price", "", "price per share")
	f.StringVar(&c.percent, "percent", "", "target percent of the class")
	f.StringVar(&c.fixed, "fixed", "", "fixed target amount")
	f.BoolVar(&c.off, "off", false, "exclude the asset from the rebalancing")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.class == "" || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -class and -name flags are required.")
		return subcommands.ExitUsageError
	}
	id := c.id
	if id == "" {
		id = uuid.NewString()
	}
	return apply(func(settings allocation.Settings, s allocation.State) (allocation.Edit, error) {
		a, err := c.asset(id, settings, s)
		if err != nil {
			return nil, err
		}
		return allocation.AddAsset{Asset: a}, nil
	}, func(s allocation.State) {
		if a, ok := s.Asset(id); ok {
			printAssetTargets(a.Class)(s)
		}
	})
}

// asset builds the asset described by the flags.
func (c *addCmd) asset(id string, settings allocation.Settings, s allocation.State) (allocation.Asset, error) {
	class, err := allocation.ParseClass(c.class)
	if err != nil {
		return allocation.Asset{}, err
	}
	target, err := targetFlags(c.percent, c.fixed, c.off, settings, s)
	if err != nil {
		return allocation.Asset{}, err
	}

	var a allocation.Asset
	switch {
	case c.value != "" && (c.shares != 0 || c.price != ""):
		return a, fmt.Errorf("-value and -shares/-price are mutually exclusive")
	case c.shares != 0 || c.price != "":
		price, err := parseAmount(c.price, settings, s)
		if err != nil {
			return a, err
		}
		a = allocation.NewAssetFromShares(id, c.name, class, c.shares, price, target)
	default:
		var value float64
		if c.value != "" {
			if value, err = parseAmount(c.value, settings, s); err != nil {
				return a, err
			}
		}
		a = allocation.Asset{ID: id, Name: c.name, Class: class, Value: value, Target: target}
	}
	a.Ticker = c.ticker
	if c.subType != "" {
		a.SubType = allocation.ParseSubType(c.subType)
	}
	return a, nil
}
