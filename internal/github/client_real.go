package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client implements Provider using the real GitHub API
type Client struct {
	gh *github.Client
}

// NewClient creates a Client. With an empty token the client is unauthenticated,
// which is sufficient for listing public repositories.
func NewClient(ctx context.Context, token string) *Client {
	if token == "" {
		return &Client{gh: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &Client{gh: github.NewClient(tc)}
}

// NewClientFrom wraps an existing go-github client (tests point it at a mock server)
func NewClientFrom(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// ListRepositories returns one page of the user's repositories sorted by last update
func (c *Client) ListRepositories(ctx context.Context, user string, page, pageSize int) ([]Repo, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: pageSize,
		},
	}

	repos, _, err := c.gh.Repositories.ListByUser(ctx, user, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repo{
			Name:     r.GetName(),
			CloneURL: r.GetCloneURL(),
		})
	}
	return out, nil
}

// AuthenticatedUser returns the login of the authenticated user
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}
