package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	json    bool
	classes string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the allocation and the rebalancing moves" }
func (*showCmd) Usage() string {
	return `show [-json] [-class <CLASS,...>]

  Computes the allocation: the target, delta and action of every asset class
  and asset, and the moves to rebalance the portfolio.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the computed allocation as JSON")
	f.StringVar(&c.classes, "class", "", "comma separated classes to detail, all by default")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := LoadState(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	classes, err := parseClasses(c.classes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a := allocation.Compute(s)
	if c.json {
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding allocation: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AllocationMarkdown(a, renderer.Options{
		AccountName:      settings.AccountName,
		DecimalSeparator: settings.DecimalSeparator,
		Classes:          classes,
	}))
	return subcommands.ExitSuccess
}
