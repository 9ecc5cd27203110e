package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"routelint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "routelint [target-dir]",
	Short: "Detect React Router remount pitfalls in route modules",
	Long: `routelint scans a directory tree for React routing modules and flags
textual patterns associated with unwanted component remounts: inline route
generation, ad hoc QueryClients, context providers above the router root,
and friends. Reports go to the console, JSON, SARIF, or a self-contained
HTML document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(fixesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information on stderr")
	rootCmd.PersistentFlags().Int("max-issues", 0, "maximum number of issues to collect (0 = unlimited)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
