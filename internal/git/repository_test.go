package git

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	repovaulterrors "repovault.dev/repovault/internal/errors"
	"repovault.dev/repovault/testhelpers"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestOpenRepositoryNotARepo(t *testing.T) {
	_, err := OpenRepository(t.TempDir())
	require.ErrorIs(t, err, repovaulterrors.ErrNotARepository)
}

func TestRepositoryQueries(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	fixture, err := testhelpers.NewGitRepo(dir)
	require.NoError(t, err)
	require.NoError(t, fixture.CreateChangeAndCommit("hello", "initial"))
	require.NoError(t, fixture.CreateBranch("develop"))

	repo, err := OpenRepository(dir)
	require.NoError(t, err)

	current, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)

	require.True(t, repo.BranchExists("main"))
	require.True(t, repo.BranchExists("develop"))
	require.False(t, repo.BranchExists("release"))
}

func TestRunnerAgainstRealRepo(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	fixture, err := testhelpers.NewGitRepo(dir)
	require.NoError(t, err)
	require.NoError(t, fixture.CreateChangeAndCommit("hello", "initial"))

	runner := NewRunner()
	require.True(t, runner.IsRepo(dir))
	require.False(t, runner.IsRepo(t.TempDir()))

	current, err := runner.CurrentBranch(dir)
	require.NoError(t, err)
	require.Equal(t, "main", current)

	exists, err := runner.LocalBranchExists(dir, "main")
	require.NoError(t, err)
	require.True(t, exists)
}
