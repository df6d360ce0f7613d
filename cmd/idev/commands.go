package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harwell/idev/internal/config"
	"github.com/harwell/idev/internal/env"
	"github.com/harwell/idev/internal/iosdeploy"
	"github.com/harwell/idev/internal/logging"
	"github.com/harwell/idev/internal/picker"
	"github.com/harwell/idev/internal/target"
	"github.com/harwell/idev/internal/ui"
)

// Command flags
var outputFormat string

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(targetsCmd)
}

// fail prints an error to stderr and returns it so cobra sets a
// non-zero exit code without printing it a second time.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}

// detect loads configuration, initializes logging, and runs device
// detection once. Shared by the listing and picking commands.
// Detection failures are rendered to stderr before being returned.
func detect(cmd *cobra.Command) (*config.Config, *iosdeploy.DeviceSet, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fail(cmd, err)
	}
	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return nil, nil, fail(cmd, err)
	}

	devices, err := iosdeploy.List(cmd.Context(), env.NewWithExtras(cfg.ExtraEnv))
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.RenderError(err))
		return nil, nil, err
	}
	return cfg, devices, nil
}

// devicesCmd lists connected devices
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected iOS devices",
	Long: `List iOS devices connected over USB.

This command runs ios-deploy once in detection mode and displays every
connected device with its name, UDID, model, and target architecture.
Duplicate announcements collapse to a single entry and the listing
order is stable across runs.`,
	Example: `  # Human-readable listing
  idev devices

  # One tab-separated line per device, for shell pipelines
  idev devices --format compact

  # JSON output for scripting
  idev devices --format json`,
	RunE: runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	cfg, devices, err := detect(cmd)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.DefaultFormat
	}

	if devices.Len() == 0 && format == ui.FormatDetailed {
		fmt.Fprintln(cmd.OutOrStdout(), "No connected iOS devices found.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nTroubleshooting:")
		fmt.Fprintln(cmd.OutOrStdout(), "  - Ensure the device is plugged in over USB and unlocked")
		fmt.Fprintln(cmd.OutOrStdout(), "  - Accept the \"Trust This Computer\" prompt on the device")
		fmt.Fprintln(cmd.OutOrStdout(), "  - Check that ios-deploy is installed (brew install ios-deploy)")
		return nil
	}

	out, err := ui.RenderDevices(devices.Devices(), format)
	if err != nil {
		return fail(cmd, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// pickCmd interactively selects one device
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a connected device",
	Long: `Pick one connected iOS device from an interactive list.

The selected device's UDID is printed to stdout, so the command
composes with other tooling:

  ios-deploy --id "$(idev pick)" --bundle MyApp.app`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	_, devices, err := detect(cmd)
	if err != nil {
		return err
	}
	if devices.Len() == 0 {
		return fail(cmd, fmt.Errorf("no connected iOS devices found"))
	}

	selected, err := picker.Pick(devices.Devices())
	if err != nil {
		return fail(cmd, err)
	}
	if selected == nil {
		// User quit without selecting; not an error.
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), selected.Identifier)
	return nil
}

// targetsCmd lists supported target architectures
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List supported target architectures",
	Long: `List every architecture this tool accepts from ios-deploy output,
with the LLVM triple each one maps to. A device announcing any other
architecture fails detection outright.`,
	RunE: runTargets,
}

func runTargets(cmd *cobra.Command, args []string) error {
	for _, tgt := range target.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", tgt.Arch, tgt.Triple)
	}
	return nil
}
