package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type classCmd struct {
	mode string
}

func (*classCmd) Name() string     { return "class" }
func (*classCmd) Synopsis() string { return "set the target of an asset class" }
func (*classCmd) Usage() string {
	return `class [-mode PERCENTAGE|SET|OFF] <CLASS> [<percent>]

  Sets the target percent of a PERCENTAGE asset class. The other PERCENTAGE
  classes share the remaining percent, proportionally to their own target.

  With -mode, switches the class to another target mode:
    - PERCENTAGE takes a percent, as above,
    - SET targets the sum of the fixed targets of its assets,
    - OFF excludes the class from the rebalancing.

  A class leaving PERCENTAGE mode gives its percent to the other PERCENTAGE
  classes.
`
}

func (c *classCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "", "switch the class target mode (PERCENTAGE, SET or OFF)")
}

func (c *classCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Error: expecting a class and an optional percent.")
		return subcommands.ExitUsageError
	}
	class, err := allocation.ParseClass(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var percent *float64
	if f.NArg() == 2 {
		p, err := parsePercent(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		percent = &p
	}
	e, err := classEdit(class, c.mode, percent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return apply(edit(e), printClassTargets)
}

// classEdit returns the edit of the class command.
func classEdit(class allocation.Class, mode string, percent *float64) (allocation.Edit, error) {
	if mode == "" {
		if percent == nil {
			return nil, fmt.Errorf("missing percent for class %s", class)
		}
		return allocation.EditClassPercent{Class: class, Percent: *percent}, nil
	}
	m, err := allocation.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	var target allocation.ClassTarget
	switch m {
	case allocation.PercentageMode:
		if percent == nil {
			return nil, fmt.Errorf("missing percent for class %s", class)
		}
		target = allocation.Percentage{Percent: *percent}
	case allocation.SetMode:
		target = allocation.FixedSum{}
	default:
		target = allocation.Excluded{}
	}
	if m != allocation.PercentageMode && percent != nil {
		return nil, fmt.Errorf("a %s class takes no percent", m)
	}
	return allocation.SetClassTarget{Class: class, Target: target}, nil
}
