package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or update the fallback currency rates" }
func (*ratesCmd) Usage() string {
	return `rates [<CODE>=<rate>...]

  Shows the fallback rates used to convert currencies, as the value of one unit
  of each currency in the default currency.

  With arguments, sets the rate of each currency first.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() > 0 {
		for _, arg := range f.Args() {
			code, value, ok := strings.Cut(arg, "=")
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: invalid rate %q, expecting CODE=rate\n", arg)
				return subcommands.ExitUsageError
			}
			rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid rate %q: %v\n", arg, err)
				return subcommands.ExitUsageError
			}
			settings = settings.WithFallbackRate(strings.ToUpper(strings.TrimSpace(code)), rate)
		}
		if err := SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	rates := settings.Currency.FallbackRates
	for _, code := range rates.Codes() {
		fmt.Printf("%s: %s\n", code, strconv.FormatFloat(rates[code], 'g', -1, 64))
	}
	return subcommands.ExitSuccess
}
