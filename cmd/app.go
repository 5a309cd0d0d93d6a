// Package cmd implements the CLI application to manage a target allocation.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/allocation"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	all := groups()
	for _, group := range slices.Sorted(maps.Keys(all)) {
		for _, cmd := range all[group] {
			c.Register(cmd, group)
		}
	}
}

// groups returns every subcommand by group.
func groups() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"allocation": {&demoCmd{}, &showCmd{}, &queryCmd{}, &fmtCmd{}, &adviseCmd{}},
		"targets":    {&classCmd{}, &targetCmd{}, &massCmd{}},
		"assets":     {&addCmd{}, &setCmd{}, &removeCmd{}},
		"currency":   {&currencyCmd{}, &ratesCmd{}},
		"help":       {&topicCmd{}},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", envOr(EnvPortfolioFile, "allocation.json"), "Path to the allocation file (JSON format). Env ALLOC_PORTFOLIO_FILE.")
	settingsFile  = flag.String("settings-file", envOr(EnvSettingsFile, "settings.yaml"), "Path to the user settings file (YAML format). Env ALLOC_SETTINGS_FILE.")
	verbose       = flag.Bool("v", os.Getenv(EnvVerbose) == "true", "Verbose logging on stderr. Env ALLOC_VERBOSE.")
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// logger returns the application logger. It must be called after the flags are parsed.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:          os.Stderr,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(w).Level(level).With().Logger()
}

// LoadSettings loads and validates the user settings file.
func LoadSettings() (allocation.Settings, error) {
	s, err := allocation.LoadSettings(*settingsFile)
	if err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", *settingsFile, err)
	}
	return s, nil
}

// SaveSettings writes the user settings file.
func SaveSettings(s allocation.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.Save(*settingsFile)
}

// LoadState loads the allocation file. A missing file is an empty allocation
// in the settings currency.
func LoadState(settings allocation.Settings) (allocation.State, error) {
	s, err := allocation.LoadState(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log := logger()
		log.Warn().Str("file", *portfolioFile).Msg("allocation file does not exist, starting with an empty allocation")
		return allocation.NewState(settings.Currency.Default), nil
	}
	return s, err
}

// editor builds the edit of a command from the user settings and the current
// state.
type editor func(allocation.Settings, allocation.State) (allocation.Edit, error)

// edit returns an editor of a prebuilt edit.
func edit(e allocation.Edit) editor {
	return func(allocation.Settings, allocation.State) (allocation.Edit, error) { return e, nil }
}

// apply loads the allocation, applies the edit built by 'build', and saves it.
//
// On success the new state is printed by 'print'.
func apply(build editor, print func(allocation.State)) subcommands.ExitStatus {
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
	e, err := build(settings, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	next, alloc, err := allocation.Reduce(s, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("edit", string(e.What())).Msg("edit applied")

	if err := allocation.SaveState(*portfolioFile, next); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Str("file", *portfolioFile).Msg("allocation saved")
	warnInvalid(log, alloc)

	if print != nil {
		print(next)
	}
	return subcommands.ExitSuccess
}

// warnInvalid logs the validation errors of an allocation.
func warnInvalid(log zerolog.Logger, a allocation.Allocation) {
	for _, e := range a.Errors {
		log.Warn().Msg(e)
	}
}

// printClassTargets prints the target of every class, one per line.
func printClassTargets(s allocation.State) {
	for _, c := range allocation.Classes {
		fmt.Printf("%s: %v\n", c, s.Classes.Get(c))
	}
}

// printAssetTargets returns a printer of the targets of the assets of 'class'.
func printAssetTargets(class allocation.Class) func(allocation.State) {
	return func(s allocation.State) {
		for _, a := range allocation.ClassAssets(s.Assets, class) {
			fmt.Printf("%s: %v\n", a.ID, a.Target)
		}
	}
}

// printMarkdown renders markdown on the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log := logger()
	log.Debug().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Print(md)
}

// parsePercent parses a percent like "12.5" or "12.5%".
func parsePercent(s string) (float64, error) {
	var p float64
	txt := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if _, err := fmt.Sscan(txt, &p); err != nil {
		return 0, fmt.Errorf("invalid percent %q", s)
	}
	return p, nil
}

// parseClasses parses a comma separated list of classes. An empty list is nil.
func parseClasses(list string) ([]allocation.Class, error) {
	var res []allocation.Class
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := allocation.ParseClass(name)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

// parseAmount parses a user amount in the allocation currency.
func parseAmount(s string, settings allocation.Settings, state allocation.State) (float64, error) {
	m, err := allocation.ParseAmount(s, state.Currency, settings.DecimalSeparator)
	if err != nil {
		return 0, err
	}
	return m.Float(), nil
}
