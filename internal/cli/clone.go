package cli

import (
	"os"

	"github.com/spf13/cobra"

	"repovault.dev/repovault/internal/config"
	"repovault.dev/repovault/internal/engine"
	"repovault.dev/repovault/internal/git"
	"repovault.dev/repovault/internal/github"
	"repovault.dev/repovault/internal/publish"
	"repovault.dev/repovault/internal/resolve"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var (
		projects   string
		user       string
		pageSize   int
		archiveDir string
		branches   []string
	)

	cmd := &cobra.Command{
		Use:   "clone",
		Short: "Clone or update all of a GitHub user's repositories",
		Long: `Discover all repositories of a GitHub user (most recently updated first),
clone the ones missing from the projects root and update the ones already
present. With --archive-dir the synced repositories are additionally
published as a timestamped zip archive.

The username is taken from --user, the github.user git config value, the
authenticated token, or an interactive prompt, in that order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := git.EnsureInstalled(); err != nil {
				return err
			}

			if err := os.MkdirAll(projects, 0o755); err != nil {
				return err
			}

			cfg, err := config.Load(projects)
			if err != nil {
				return err
			}
			if len(branches) > 0 {
				cfg.CloneBranchPriority = branches
			}
			if pageSize > 0 {
				cfg.PageSize = pageSize
			}

			log, file := newSplog(cmd, cfg.LogDir)
			defer file.Close()

			runner := git.NewRunner()
			provider := github.NewClient(ctx, github.Token(ctx))

			if user == "" {
				user = runner.ConfigValue(ctx, cfg.ProjectsDir, "github.user")
			}
			user, err = github.ResolveUsername(ctx, user, provider, github.SurveyPrompt)
			if err != nil {
				return err
			}

			repos, err := github.ListAll(ctx, provider, user, cfg.PageSize)
			if err != nil {
				log.Error("%v", err)
				return err
			}
			log.Info("discovered %d repositories for %s", len(repos), user)

			sources := make([]engine.Source, 0, len(repos))
			for _, r := range repos {
				sources = append(sources, engine.RemoteSource(r.Name, r.CloneURL))
			}

			resolver := resolve.NewResolver(runner, cfg.Remote, cfg.CloneBranchPriority, true)
			eng := engine.New(runner, resolver, cfg.Remote, log)
			summary := eng.SyncAll(ctx, sources, cfg.ProjectsDir)

			if archiveDir != "" {
				artifact, err := publish.New().Publish(summary.Successes(), publish.Options{
					Mode:        publish.ModeArchive,
					Destination: archiveDir,
					ProjectsDir: cfg.ProjectsDir,
				})
				if err != nil {
					log.Error("%v", err)
					return err
				}
				log.Info("backup written to %s (%d repositories)", artifact.Path, len(artifact.Repos))
			}

			printSummary(log, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projects, "projects", "p", config.DefaultProjectsDir(), "Projects root to clone into")
	cmd.Flags().StringVarP(&user, "user", "u", "", "GitHub username to discover repositories for")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Repository listing page size")
	cmd.Flags().StringVar(&archiveDir, "archive-dir", "", "Also publish a zip archive into this directory")
	cmd.Flags().StringSliceVar(&branches, "branches", nil, "Override the fallback branch priority list")

	return cmd
}
