package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"repovault.dev/repovault/internal/engine"
	"repovault.dev/repovault/internal/git"
	"repovault.dev/repovault/internal/output"
)

// newSplog builds the run logger: terminal output plus the append-only file
// logs under logDir. The caller closes the returned FileLog.
func newSplog(cmd *cobra.Command, logDir string) (*output.Splog, *output.FileLog) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	file := output.NewFileLog(logDir)
	return output.NewSplog(output.WithVerbose(verbose), output.WithFileLog(file)), file
}

// discoverLocalSources lists the git working copies directly under
// projectsDir, in filesystem listing order
func discoverLocalSources(runner git.Runner, projectsDir string) ([]engine.Source, error) {
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		return nil, err
	}

	var sources []engine.Source
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(projectsDir, entry.Name())
		if runner.IsRepo(path) {
			sources = append(sources, engine.LocalSource(path))
		}
	}
	return sources, nil
}

// printSummary emits the run counts. A non-zero failed count is a warning,
// not a fatal condition.
func printSummary(log *output.Splog, summary *engine.Summary) {
	log.Newline()
	if summary.Failed > 0 {
		log.Warn("%d of %d repositories failed", summary.Failed, summary.Total)
	}
	log.Success("%d repositories processed: %d succeeded, %d failed, %d skipped",
		summary.Total, summary.Succeeded, summary.Failed, summary.Skipped)
}
