// Package cli wires the repovault command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repovault",
		Short: "Repovault keeps local git repositories synchronized and backed up",
		Long: `Repovault keeps local git repositories synchronized and backed up.

It updates every repository under a projects root to its remote default
branch (or clones the missing ones from GitHub), then publishes a backup
artifact from the repositories that synced successfully.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Show debug output")

	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
