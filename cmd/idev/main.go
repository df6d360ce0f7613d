// Idev is a command-line utility for detecting connected iOS devices.
//
// It wraps the ios-deploy tool, turning its JSON event stream into a
// deduplicated, deterministically ordered device listing suitable for
// humans and scripts alike.
//
// Usage:
//
//	idev [command] [flags]
//
// Running without arguments lists connected devices.
// See 'idev --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harwell/idev/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Commands render their own errors; just set the exit code.
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "idev",
	Short: "iOS Device Detection Utility",
	Long: `A standalone utility for detecting iOS devices connected over USB.

Runs ios-deploy in single-shot detection mode with a reproducible
environment, validates every announced architecture against the
supported target table, and prints the resulting device set.

If no command is specified, connected devices are listed.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: list devices when no subcommand provided
		return runDevices(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("idev %s (commit: %s)\n", version.Version, version.Commit)
	},
}
