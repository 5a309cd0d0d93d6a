package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/allocation/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation" }
func (*topicCmd) Usage() string {
	return `topic [-l] [<topic>|all...]

  Prints the documentation topics, the readme when none is given. 'all' prints
  every topic of the readme index.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topics with their description")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		for _, t := range docs.Index() {
			fmt.Printf("%-16s %s\n", t.Name, t.Description)
		}
		return subcommands.ExitSuccess
	}

	var names []string
	for _, arg := range f.Args() {
		if arg == "all" {
			names = append(names, docs.Names()...)
			continue
		}
		names = append(names, arg)
	}
	if len(names) == 0 {
		names = []string{docs.Readme}
	}

	doc, err := docs.Join(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
