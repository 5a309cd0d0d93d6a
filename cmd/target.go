package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type targetCmd struct{}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set the target percent of an asset" }
func (*targetCmd) Usage() string {
	return `target <asset-id> <percent>

  Sets the target percent of a PERCENTAGE asset within its class. The other
  PERCENTAGE assets of the class share the remaining percent, proportionally to
  their current value.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expecting an asset id and a percent.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	p, err := parsePercent(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return apply(edit(allocation.EditAssetPercent{ID: id, Percent: p}), func(s allocation.State) {
		if a, ok := s.Asset(id); ok {
			printAssetTargets(a.Class)(s)
		}
	})
}
