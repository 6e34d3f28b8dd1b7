// Package cli implements the planner command-line interface using Cobra.
// Commands operate on package-level service variables that are wired during
// app initialization.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "TruthOps content planner - parse weekly planning docs into structured plans",
	Long: `TruthOps content planner (planner) turns loosely formatted weekly
planning documents into a structured week plan: scheduled tweets,
engagement blocks, and Zora visual content.

Paste in the raw planning text, then track item status, reschedule
entries, browse the week timeline, and exchange plans as JSON.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("planner %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
