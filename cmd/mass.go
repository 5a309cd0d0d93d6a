package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type massCmd struct {
	class string
}

func (*massCmd) Name() string     { return "mass" }
func (*massCmd) Synopsis() string { return "set several target percents at once" }
func (*massCmd) Usage() string {
	return `mass [-class <CLASS>] <key>=<percent>...

  Sets several target percents at once, without any redistribution. Keys are
  class names, or with -class, asset ids of that class.

  The PERCENTAGE targets of the group must then sum to 100%, otherwise nothing
  is changed.
`
}

func (c *massCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "", "set the asset percents of this class instead of the class percents")
}

func (c *massCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	percents, err := parseAssignments(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := allocation.MassSetPercentages{Scope: allocation.ClassScope, Percents: percents}
	out := printClassTargets
	if c.class != "" {
		class, err := allocation.ParseClass(c.class)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		e.Scope, e.Class = allocation.AssetScope, class
		out = printAssetTargets(class)
	}
	return apply(edit(e), out)
}

// parseAssignments parses "key=percent" arguments.
func parseAssignments(args []string) (map[string]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expecting at least one key=percent")
	}
	res := make(map[string]float64, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid assignment %q, expecting key=percent", arg)
		}
		p, err := parsePercent(value)
		if err != nil {
			return nil, err
		}
		res[strings.TrimSpace(key)] = p
	}
	return res, nil
}
