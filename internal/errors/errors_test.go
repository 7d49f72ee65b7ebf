package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGitCommandError(t *testing.T) {
	cause := errors.New("exit status 128")
	err := NewGitCommandError("git", []string{"pull", "--ff-only", "origin", "main"}, "", "fatal: not possible to fast-forward", cause)

	require.Contains(t, err.Error(), "git command failed")
	require.Contains(t, err.Error(), "fatal: not possible to fast-forward")
	require.ErrorIs(t, err, cause)
}

func TestDiscoveryError(t *testing.T) {
	cause := errors.New("401 bad credentials")
	err := NewDiscoveryError("octocat", 2, cause)

	require.Contains(t, err.Error(), "octocat")
	require.Contains(t, err.Error(), "page 2")
	require.ErrorIs(t, err, cause)
}

func TestPublishError(t *testing.T) {
	cause := errors.New("no space left on device")
	err := NewPublishError("/backups/Projects.zip", cause)

	require.Contains(t, err.Error(), "/backups/Projects.zip")
	require.ErrorIs(t, err, cause)
}
