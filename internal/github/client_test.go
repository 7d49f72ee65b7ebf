package github

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	repovaulterrors "repovault.dev/repovault/internal/errors"
)

// fakeProvider serves scripted pages
type fakeProvider struct {
	pages   [][]Repo
	errPage int // 1-based page that errors; 0 for none
	user    string
	userErr error
	served  []int
}

func (f *fakeProvider) ListRepositories(_ context.Context, _ string, page, _ int) ([]Repo, error) {
	f.served = append(f.served, page)
	if f.errPage != 0 && page == f.errPage {
		return nil, errors.New("api error payload")
	}
	if page > len(f.pages) {
		return nil, nil
	}
	return f.pages[page-1], nil
}

func (f *fakeProvider) AuthenticatedUser(context.Context) (string, error) {
	return f.user, f.userErr
}

func page(n int, offset int) []Repo {
	repos := make([]Repo, n)
	for i := range repos {
		repos[i] = Repo{
			Name:     fmt.Sprintf("repo-%d", offset+i),
			CloneURL: fmt.Sprintf("https://github.com/user/repo-%d.git", offset+i),
		}
	}
	return repos
}

func TestListAllStopsAtShortPage(t *testing.T) {
	provider := &fakeProvider{
		pages: [][]Repo{page(100, 0), page(100, 100), page(37, 200)},
	}

	repos, err := ListAll(context.Background(), provider, "user", 100)
	require.NoError(t, err)
	require.Len(t, repos, 237)
	require.Equal(t, []int{1, 2, 3}, provider.served)
	require.Equal(t, "repo-0", repos[0].Name)
	require.Equal(t, "repo-236", repos[236].Name)
}

func TestListAllStopsAtEmptyPage(t *testing.T) {
	provider := &fakeProvider{
		pages: [][]Repo{page(5, 0)},
	}

	repos, err := ListAll(context.Background(), provider, "user", 5)
	require.NoError(t, err)
	require.Len(t, repos, 5)
	require.Equal(t, []int{1, 2}, provider.served)
}

func TestListAllAbortsOnAPIError(t *testing.T) {
	provider := &fakeProvider{
		pages:   [][]Repo{page(100, 0), page(100, 100)},
		errPage: 2,
	}

	repos, err := ListAll(context.Background(), provider, "user", 100)
	require.Error(t, err)
	require.Nil(t, repos)

	var discoveryErr *repovaulterrors.DiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	require.Equal(t, 2, discoveryErr.Page)
	require.Equal(t, "user", discoveryErr.User)
}

func TestListAllSinglePartialPage(t *testing.T) {
	provider := &fakeProvider{
		pages: [][]Repo{page(3, 0)},
	}

	repos, err := ListAll(context.Background(), provider, "user", 100)
	require.NoError(t, err)
	require.Len(t, repos, 3)
	require.Equal(t, []int{1}, provider.served)
}
