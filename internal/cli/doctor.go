package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repovault.dev/repovault/internal/config"
	"repovault.dev/repovault/internal/git"
	"repovault.dev/repovault/internal/github"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var projects string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment repovault depends on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := false

			if err := git.EnsureInstalled(); err != nil {
				fmt.Fprintln(out, "✗ git binary not found on PATH")
				failed = true
			} else {
				fmt.Fprintln(out, "✓ git binary found")
			}

			if info, err := os.Stat(projects); err != nil {
				fmt.Fprintf(out, "✗ projects root %s does not exist\n", projects)
				failed = true
			} else if !info.IsDir() {
				fmt.Fprintf(out, "✗ projects root %s is not a directory\n", projects)
				failed = true
			} else {
				fmt.Fprintf(out, "✓ projects root %s\n", projects)
			}

			if token := github.Token(cmd.Context()); token != "" {
				fmt.Fprintln(out, "✓ GitHub token available")
			} else {
				fmt.Fprintln(out, "- no GitHub token (clone works for public repositories only)")
			}

			if failed {
				return fmt.Errorf("environment checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projects, "projects", "p", config.DefaultProjectsDir(), "Projects root to check")

	return cmd
}
