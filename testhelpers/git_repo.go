// Package testhelpers provides real-git fixtures for repovault tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a git repository created for a test
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in the specified directory
// with a deterministic config (main default branch, fixed identity).
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
// GIT_CONFIG_GLOBAL=/dev/null keeps the host's config out of tests.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommandOutput executes a git command and returns its trimmed output
func (r *GitRepo) RunGitCommandOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes content to the test file and commits it
func (r *GitRepo) CreateChangeAndCommit(content, message string) error {
	if err := os.WriteFile(filepath.Join(r.Dir, textFileName), []byte(content), 0o644); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CreateBranch creates a branch at the current HEAD without switching to it
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGitCommand("branch", name)
}

// CheckoutBranch switches to a branch
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.RunGitCommand("checkout", name)
}

// CurrentBranchName returns the branch HEAD points at
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// AddRemote registers a remote pointing at another local repository
func (r *GitRepo) AddRemote(name, url string) error {
	return r.RunGitCommand("remote", "add", name, url)
}
