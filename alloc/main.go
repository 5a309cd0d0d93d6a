// Command alloc manages a portfolio target allocation and the moves to reach it.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/allocation/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell completion
	cmd.Completion().Complete(name)

	flag.Parse()
	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) {
		switch sub {
		case "help", "flags", "commands":
		default:
			if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
				os.Exit(code)
			}
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
