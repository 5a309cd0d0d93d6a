package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type setCmd struct {
	value   string
	fixed   string
	percent string
	off     bool
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update the value or the target of an asset" }
func (*setCmd) Usage() string {
	return `set [-value <amount>] [-fixed <amount> | -percent <percent> | -off] <asset-id>

  Updates the current value and or the target of an asset. Nothing is
  redistributed: the targets of the other assets are left untouched.

  Amounts are in the allocation currency, using the decimal separator of the
  settings.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "new current value")
	f.StringVar(&c.fixed, "fixed", "", "switch to a fixed target amount")
	f.StringVar(&c.percent, "percent", "", "switch to a target percent of the class")
	f.BoolVar(&c.off, "off", false, "exclude the asset from the rebalancing")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting an asset id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	return apply(func(settings allocation.Settings, s allocation.State) (allocation.Edit, error) {
		e := allocation.UpdateAsset{ID: id}
		if c.value != "" {
			v, err := parseAmount(c.value, settings, s)
			if err != nil {
				return nil, err
			}
			e.Value = &v
		}
		t, err := targetFlags(c.percent, c.fixed, c.off, settings, s)
		if err != nil {
			return nil, err
		}
		e.Target = t
		if e.Value == nil && e.Target == nil {
			return nil, fmt.Errorf("nothing to update on %q", id)
		}
		return e, nil
	}, func(s allocation.State) {
		if a, ok := s.Asset(id); ok {
			fmt.Printf("%s: %v\n", a.ID, a.Target)
		}
	})
}

// targetFlags returns the asset target selected by the exclusive target flags,
// nil if none is set.
func targetFlags(percent, fixed string, off bool, settings allocation.Settings, s allocation.State) (allocation.Target, error) {
	n := 0
	for _, set := range []bool{percent != "", fixed != "", off} {
		if set {
			n++
		}
	}
	if n > 1 {
		return nil, fmt.Errorf("-percent, -fixed and -off are mutually exclusive")
	}
	switch {
	case percent != "":
		p, err := parsePercent(percent)
		if err != nil {
			return nil, err
		}
		return allocation.Percentage{Percent: p}, nil
	case fixed != "":
		v, err := parseAmount(fixed, settings, s)
		if err != nil {
			return nil, err
		}
		return allocation.Fixed{Value: v}, nil
	case off:
		return allocation.Excluded{}, nil
	}
	return nil, nil
}
