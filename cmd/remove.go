package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an asset from the allocation" }
func (*removeCmd) Usage() string {
	return `remove <asset-id>

  Removes an asset. Its target percent goes to the other PERCENTAGE assets of
  its class, proportionally to their own target.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting an asset id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	var class allocation.Class
	return apply(func(_ allocation.Settings, s allocation.State) (allocation.Edit, error) {
		if a, ok := s.Asset(id); ok {
			class = a.Class
		}
		return allocation.DeleteAsset{ID: id}, nil
	}, func(s allocation.State) {
		printAssetTargets(class)(s)
	})
}
