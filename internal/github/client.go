// Package github provides the repository-hosting provider client used for
// clone-all discovery: paginated repository listing and authenticated-user lookup.
package github

import (
	"context"

	repovaulterrors "repovault.dev/repovault/internal/errors"
)

// Repo is one discoverable repository
type Repo struct {
	Name     string
	CloneURL string
}

// Provider is an interface for repository-hosting API interactions
type Provider interface {
	// ListRepositories returns one page of the user's repositories,
	// most recently updated first
	ListRepositories(ctx context.Context, user string, page, pageSize int) ([]Repo, error)

	// AuthenticatedUser returns the login of the token's user
	AuthenticatedUser(ctx context.Context) (string, error)
}

// ListAll pages through the user's repositories. Iteration stops when a page
// comes back with fewer entries than pageSize. Any API error aborts discovery
// entirely: unlike per-repository sync failures, a broken listing leaves the
// run with nothing trustworthy to process.
func ListAll(ctx context.Context, p Provider, user string, pageSize int) ([]Repo, error) {
	var all []Repo
	for page := 1; ; page++ {
		repos, err := p.ListRepositories(ctx, user, page, pageSize)
		if err != nil {
			return nil, repovaulterrors.NewDiscoveryError(user, page, err)
		}
		all = append(all, repos...)
		if len(repos) < pageSize {
			break
		}
	}
	return all, nil
}
