package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nativelint/internal/driver"
	"nativelint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nativelint",
	Short: "Static analysis for TypeScript and React Native sources",
	Long:  `nativelint checks TypeScript/TSX sources against a set of React Native focused lint rules and can apply the suggested fixes`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", driver.DefaultMaxDiagnostics, "maximum number of diagnostics per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
