package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/scaledstyle/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "scaledstyle",
	Short: "Resolve responsive style definitions for a target screen",
	Long: `Scale style definitions authored against a baseline frame to a target
screen. Pairs like [compact, large] pick a value per device class, numeric
keys scale by the horizontal or vertical screen ratio, and landscape
overrides are applied when the window is wider than tall.`,
	// Default behavior: run resolve when no subcommand is given.
	// We must call loadConfig here because PreRunE of resolveCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runResolve(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigPath, "Config file path")

	// Engine settings shared by resolve, simulate and watch
	pf.String("screen-size", "", "Target screen as WIDTHxHEIGHT (default: baseline)")
	pf.String("baseline-size", "", "Baseline frame as WIDTHxHEIGHT (default: 375x667)")
	pf.String("device", "large", "Device class: large|compact")
	pf.StringSlice("vertical", nil, "Additional keys scaled by the vertical ratio")
	pf.StringSlice("horizontal", nil, "Additional keys scaled by the horizontal ratio")
	pf.StringSlice("ignore", nil, "Additional keys passed through unchanged")
	pf.String("default-axis", "", "Axis for unclassified keys: none|horizontal|vertical")

	// Output settings shared by resolve and watch
	pf.String("output-format", "", "Output format: "+strings.Join(report.Formats, "|"))
	pf.StringSlice("include", nil, "Glob patterns for definition files")
	pf.Bool("strict", false, "Exit 1 on rule conflicts or any issue (CI mode)")

	_ = rootCmd.RegisterFlagCompletionFunc("output-format", cobra.FixedCompletions(
		report.Formats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("device", cobra.FixedCompletions(
		[]string{"large", "compact"}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("default-axis", cobra.FixedCompletions(
		[]string{"none", "horizontal", "vertical"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
