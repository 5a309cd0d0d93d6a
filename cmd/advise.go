package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/allocation/agent"
	"github.com/etnz/allocation/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "chat with an AI advisor about the allocation" }
func (*adviseCmd) Usage() string {
	return `advise [<question>]

  Starts an interactive session with an AI advisor that knows the allocation
  and can simulate target changes. The allocation file is never modified.

  The Gemini client is configured by the environment, e.g. GOOGLE_API_KEY.
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger()
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	allocator := agent.NewAllocator(s, renderer.Options{
		AccountName:      settings.AccountName,
		DecimalSeparator: settings.DecimalSeparator,
	})
	analyst := agent.NewAnalyst()
	a := agent.New(os.Stdout, os.Stdin, allocator, analyst)
	for _, e := range append(a.Experts, a.Facilitator) {
		e.Log = log
	}
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120)); err == nil {
		a.Print = func(md string) string {
			out, err := r.Render(md)
			if err != nil {
				return md
			}
			return out
		}
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
