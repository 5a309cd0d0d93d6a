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

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "change the currency of the allocation" }
func (*currencyCmd) Usage() string {
	return `currency <CODE>

  Converts every asset value and fixed target to another currency, using the
  fallback rates of the settings, and makes it the default currency.

  Converting back and forth is exact to the cent as long as the rates are not
  changed in between.
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting a currency code.")
		return subcommands.ExitUsageError
	}
	code := strings.ToUpper(strings.TrimSpace(f.Arg(0)))

	var settings allocation.Settings
	status := apply(func(s allocation.Settings, _ allocation.State) (allocation.Edit, error) {
		settings = s
		return allocation.ChangeDisplayCurrency{Currency: code, Rates: s.Currency.FallbackRates}, nil
	}, func(s allocation.State) {
		fmt.Printf("Allocation converted to %s, total value %s\n", s.Currency,
			allocation.M(allocation.Aggregate(s.Assets).Total, s.Currency).Format(settings.DecimalSeparator))
	})
	if status != subcommands.ExitSuccess || settings.Currency.Default == code {
		return status
	}

	settings, err := settings.WithCurrency(code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveSettings(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
