package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/allocation"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the computed allocation" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Evaluates a JSONPath expression on the computed allocation, as printed by
  'show -json', and prints the result as JSON.

  Example:
    query '$.classes[?(@.class=="STOCKS")].delta'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting a JSONPath expression.")
		return subcommands.ExitUsageError
	}
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

	res, err := query(allocation.Compute(s), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(res)
	return subcommands.ExitSuccess
}

// query evaluates the JSONPath 'expr' on the JSON form of 'a'.
func query(a allocation.Allocation, expr string) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return "", err
	}
	res, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", fmt.Errorf("invalid query %q: %w", expr, err)
	}
	out, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
