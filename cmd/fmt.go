package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the allocation file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Validates the allocation file and writes it back in a canonical form: every
  asset class is listed, in order.

  Invalid input (unknown class, negative value, duplicate id) is an error and
  the file is left untouched. Target sums that are off are reported as
  warnings only.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	s, err := allocation.LoadState(*portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Classes = s.Classes.Complete()
	if err := allocation.SaveState(*portfolioFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	warnInvalid(log, allocation.Compute(s))
	fmt.Printf("Formatted %s: %d assets\n", *portfolioFile, len(s.Assets))
	return subcommands.ExitSuccess
}
