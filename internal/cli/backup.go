package cli

import (
	"github.com/spf13/cobra"

	"repovault.dev/repovault/internal/config"
	"repovault.dev/repovault/internal/engine"
	"repovault.dev/repovault/internal/git"
	"repovault.dev/repovault/internal/publish"
	"repovault.dev/repovault/internal/resolve"
)

// newBackupCmd creates the backup command
func newBackupCmd() *cobra.Command {
	var (
		projects     string
		dest         string
		archive      bool
		timestampDir bool
		branches     []string
		remote       string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Sync local repositories and publish a backup",
		Long: `Sync every git repository under the projects root with its remote default
branch, then publish the successfully synced repositories as a backup: a
mirrored directory tree, or with --archive a single timestamped zip file.

A repository that fails to sync is reported and excluded from the backup;
it never aborts the rest of the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := git.EnsureInstalled(); err != nil {
				return err
			}

			cfg, err := config.Load(projects)
			if err != nil {
				return err
			}
			if len(branches) > 0 {
				cfg.BackupBranchPriority = branches
			}
			if remote != "" {
				cfg.Remote = remote
			}

			log, file := newSplog(cmd, cfg.LogDir)
			defer file.Close()

			runner := git.NewRunner()
			resolver := resolve.NewResolver(runner, cfg.Remote, cfg.BackupBranchPriority, false)

			sources, err := discoverLocalSources(runner, cfg.ProjectsDir)
			if err != nil {
				log.Error("failed to list %s: %v", cfg.ProjectsDir, err)
				return err
			}
			if len(sources) == 0 {
				log.Info("no git repositories found under %s", cfg.ProjectsDir)
				return nil
			}

			eng := engine.New(runner, resolver, cfg.Remote, log)
			summary := eng.SyncAll(cmd.Context(), sources, cfg.ProjectsDir)

			mode := publish.ModeMirror
			if archive {
				mode = publish.ModeArchive
			}
			artifact, err := publish.New().Publish(summary.Successes(), publish.Options{
				Mode:         mode,
				Destination:  dest,
				ProjectsDir:  cfg.ProjectsDir,
				TimestampDir: timestampDir,
			})
			if err != nil {
				log.Error("%v", err)
				return err
			}

			printSummary(log, summary)
			log.Info("backup written to %s (%d repositories)", artifact.Path, len(artifact.Repos))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projects, "projects", "p", config.DefaultProjectsDir(), "Projects root to back up")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "Backup destination directory")
	cmd.Flags().BoolVar(&archive, "archive", false, "Write a zip archive instead of a directory mirror")
	cmd.Flags().BoolVar(&timestampDir, "timestamp-dir", false, "Suffix the mirror directory with the run timestamp instead of clearing it")
	cmd.Flags().StringSliceVar(&branches, "branches", nil, "Override the fallback branch priority list")
	cmd.Flags().StringVar(&remote, "remote", "", "Override the remote name")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}
