package git

import (
	"context"
	"strings"
)

// Runner defines the git operations used by the sync engine and branch resolver.
// This allows the engine to be used with both real git and mock implementations.
// Every operation takes the repository path explicitly; nothing mutates the
// process working directory.
type Runner interface {
	// IsRepo reports whether path is a git working copy
	IsRepo(path string) bool

	// CurrentBranch returns the branch HEAD points at
	CurrentBranch(path string) (string, error)

	// LocalBranchExists reports whether a local branch with the given name exists
	LocalBranchExists(path, name string) (bool, error)

	// RemoteTrackingBranches lists remote-tracking references as short names
	// (e.g. "origin/main"), excluding the symbolic HEAD pointer
	RemoteTrackingBranches(path string) ([]string, error)

	// RemoteHeadBranch returns the branch the remote advertises as HEAD
	RemoteHeadBranch(ctx context.Context, path, remote string) (string, error)

	// Fetch updates remote-tracking refs from the given remote
	Fetch(ctx context.Context, path, remote string) error

	// Checkout switches the working copy to the given branch
	Checkout(ctx context.Context, path, branch string) error

	// Pull fast-forwards the current branch from the remote
	Pull(ctx context.Context, path, remote, branch string) error

	// Clone clones url into dest
	Clone(ctx context.Context, url, dest string) error

	// ConfigValue reads a git config value, or "" if unset
	ConfigValue(ctx context.Context, path, key string) string
}

// NewRunner returns the standard Runner backed by the git binary and go-git.
func NewRunner() Runner {
	return &realRunner{}
}

// realRunner implements Runner. Mutating operations shell out to git; read-only
// local queries go through go-git so they work without spawning a process.
type realRunner struct{}

func (r *realRunner) IsRepo(path string) bool {
	_, err := OpenRepository(path)
	return err == nil
}

func (r *realRunner) CurrentBranch(path string) (string, error) {
	repo, err := OpenRepository(path)
	if err != nil {
		return "", err
	}
	return repo.CurrentBranch()
}

func (r *realRunner) LocalBranchExists(path, name string) (bool, error) {
	repo, err := OpenRepository(path)
	if err != nil {
		return false, err
	}
	return repo.BranchExists(name), nil
}

func (r *realRunner) RemoteTrackingBranches(path string) ([]string, error) {
	repo, err := OpenRepository(path)
	if err != nil {
		return nil, err
	}
	return repo.RemoteTrackingBranches()
}

func (r *realRunner) RemoteHeadBranch(ctx context.Context, path, remote string) (string, error) {
	output, err := NewCommandRunner(path).RunRaw(ctx, "ls-remote", "--symref", remote, "HEAD")
	if err != nil {
		return "", err
	}
	return ParseSymrefHead(output), nil
}

func (r *realRunner) Fetch(ctx context.Context, path, remote string) error {
	_, err := NewCommandRunner(path).Run(ctx, "fetch", remote)
	return err
}

func (r *realRunner) Checkout(ctx context.Context, path, branch string) error {
	_, err := NewCommandRunner(path).Run(ctx, "checkout", branch)
	return err
}

func (r *realRunner) Pull(ctx context.Context, path, remote, branch string) error {
	_, err := NewCommandRunner(path).Run(ctx, "pull", "--ff-only", remote, branch)
	return err
}

func (r *realRunner) Clone(ctx context.Context, url, dest string) error {
	_, err := NewCommandRunner("").Run(ctx, "clone", url, dest)
	return err
}

func (r *realRunner) ConfigValue(ctx context.Context, path, key string) string {
	value, err := NewCommandRunner(path).Run(ctx, "config", "--get", key)
	if err != nil {
		return ""
	}
	return value
}

// ParseSymrefHead extracts the branch name from `git ls-remote --symref <remote> HEAD`
// output. The first line looks like "ref: refs/heads/main\tHEAD". Returns "" when
// the remote does not advertise a symbolic HEAD.
func ParseSymrefHead(output string) string {
	for _, line := range strings.Split(output, "\n") {
		rest, ok := strings.CutPrefix(line, "ref: refs/heads/")
		if !ok {
			continue
		}
		if name, _, found := strings.Cut(rest, "\t"); found {
			return strings.TrimSpace(name)
		}
		return strings.TrimSpace(rest)
	}
	return ""
}
