package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	repovaulterrors "repovault.dev/repovault/internal/errors"
)

// Repository wraps a go-git repository for read-only queries
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens a git repository at the given path.
// Returns ErrNotARepository when the path is not a working copy.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", absPath, repovaulterrors.ErrNotARepository)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// Path returns the working copy root
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the branch HEAD points at
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// BranchExists reports whether a local branch with the given name exists
func (r *Repository) BranchExists(name string) bool {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	return err == nil
}

// RemoteTrackingBranches returns the short names of all remote-tracking
// references (e.g. "origin/main"), skipping each remote's symbolic HEAD.
func (r *Repository) RemoteTrackingBranches() ([]string, error) {
	refs, err := r.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() {
			return nil
		}
		short := ref.Name().Short()
		if strings.HasSuffix(short, "/HEAD") {
			return nil
		}
		names = append(names, short)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	return names, nil
}
