package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type demoCmd struct {
	force bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "write a demo allocation" }
func (*demoCmd) Usage() string {
	return `demo [-force]

  Writes a demo allocation with stocks, bonds and cash into the allocation file,
  converted to the default currency of the settings.

  An existing allocation file is kept unless -force is set.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "overwrite an existing allocation file")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
	if _, err := os.Stat(*portfolioFile); !c.force && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %s already exists, use -force to overwrite it\n", *portfolioFile)
		return subcommands.ExitFailure
	}
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	s := allocation.DemoState()
	if settings.Currency.Default != s.Currency {
		s, _, err = allocation.Reduce(s, allocation.ChangeDisplayCurrency{
			Currency: settings.Currency.Default,
			Rates:    settings.Currency.FallbackRates,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting the demo: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := allocation.SaveState(*portfolioFile, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", *portfolioFile).Int("assets", len(s.Assets)).Msg("demo written")
	fmt.Printf("Demo allocation written to %s\n", *portfolioFile)
	return subcommands.ExitSuccess
}
