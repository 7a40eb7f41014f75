package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arrayfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "arrayfmt",
	Short: "Reformat multi-line array literals",
	Long: `arrayfmt lays out JavaScript and TypeScript array literals with a
configurable number of elements per line. Per-array directive comments
override the configuration:

  // arrayfmt-elements-per-line: 2 1 3
  // arrayfmt-wrap-threshold: 4`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	rootCmd.Version = version.Number

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	pf.String("config", "", "path to "+configFileName+" (default: search upwards from the working directory)")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 disables)")
}

// main executes the root command. If command execution returns an error,
// the process exits with status code 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	return applyColorMode(mode, isTerminal(os.Stdout))
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
