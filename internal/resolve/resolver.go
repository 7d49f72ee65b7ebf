// Package resolve determines which branch of a repository should be treated
// as its default branch for synchronization.
package resolve

import (
	"context"
	"fmt"
	"strings"

	repovaulterrors "repovault.dev/repovault/internal/errors"
)

// Inspector is the read-only view of a repository the resolver needs.
// git.Runner satisfies it; tests substitute fakes.
type Inspector interface {
	RemoteHeadBranch(ctx context.Context, path, remote string) (string, error)
	LocalBranchExists(path, name string) (bool, error)
	RemoteTrackingBranches(path string) ([]string, error)
}

// Resolver resolves a repository's default branch. Resolution runs in strict
// priority order and stops at the first hit:
//
//  1. the branch the remote advertises as HEAD
//  2. the first entry of Fallbacks that exists as a local branch
//  3. if ScanRemoteTracking is set, the first remote-tracking branch
//
// Fallbacks is deliberately configuration, not a constant: the backup and
// clone call sites use different lists (main/master/release vs
// main/master/develop) and neither should silently win.
type Resolver struct {
	Inspector Inspector

	// Remote is the remote to query, usually "origin"
	Remote string

	// Fallbacks is the ordered list of branch names to try locally
	Fallbacks []string

	// ScanRemoteTracking enables the last-resort scan of remote-tracking branches
	ScanRemoteTracking bool
}

// NewResolver creates a Resolver over the given inspector
func NewResolver(inspector Inspector, remote string, fallbacks []string, scanRemoteTracking bool) *Resolver {
	return &Resolver{
		Inspector:          inspector,
		Remote:             remote,
		Fallbacks:          fallbacks,
		ScanRemoteTracking: scanRemoteTracking,
	}
}

// Resolve returns the default branch name for the repository at repoPath.
// When nothing resolves it returns an error wrapping errors.ErrNoBranch;
// callers treat that as "skip this repository", never as a run-aborting failure.
func (r *Resolver) Resolve(ctx context.Context, repoPath string) (string, error) {
	// Remote-advertised HEAD always wins, even when a fallback like "main"
	// also exists locally.
	if name, err := r.Inspector.RemoteHeadBranch(ctx, repoPath, r.Remote); err == nil && name != "" {
		return name, nil
	}

	for _, name := range r.Fallbacks {
		exists, err := r.Inspector.LocalBranchExists(repoPath, name)
		if err != nil {
			continue
		}
		if exists {
			return name, nil
		}
	}

	if r.ScanRemoteTracking {
		tracking, err := r.Inspector.RemoteTrackingBranches(repoPath)
		if err == nil && len(tracking) > 0 {
			return stripRemotePrefix(tracking[0], r.Remote), nil
		}
	}

	return "", fmt.Errorf("%s: %w", repoPath, repovaulterrors.ErrNoBranch)
}

// stripRemotePrefix turns "origin/main" into "main". Branch names may themselves
// contain slashes, so only the leading remote component is removed.
func stripRemotePrefix(name, remote string) string {
	if rest, ok := strings.CutPrefix(name, remote+"/"); ok {
		return rest
	}
	if _, rest, found := strings.Cut(name, "/"); found {
		return rest
	}
	return name
}
