package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"safenum/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "safenum",
	Short: "Checked fixed-width integer arithmetic toolkit",
	Long: `safenum evaluates integer expressions with overflow-aware arithmetic:
every operation either yields the exact representable result or a classified
failure (range, overflow, underflow or domain error) instead of silently
wrapping.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode resolves the persistent --color flag against the config
// value and terminal detection.
func applyColorMode(cmd *cobra.Command, cfgMode string) {
	mode, _ := cmd.Flags().GetString("color")
	if mode == "auto" && cfgMode != "" {
		mode = cfgMode
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
