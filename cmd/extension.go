package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to the extensions, also read as flag defaults.
const (
	EnvPortfolioFile = "ALLOC_PORTFOLIO_FILE"
	EnvSettingsFile  = "ALLOC_SETTINGS_FILE"
	EnvVerbose       = "ALLOC_VERBOSE"
)

// IsCommand reports whether 'name' is a built-in subcommand.
func IsCommand(name string) bool {
	for _, cmds := range groups() {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}

// RunExtension attempts to find and execute an external alloc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	log := logger()
	externalCmdName := "alloc-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvPortfolioFile+"="+*portfolioFile,
		EnvSettingsFile+"="+*settingsFile,
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // an attempt was made, but it failed
	}
	return true, 0
}
