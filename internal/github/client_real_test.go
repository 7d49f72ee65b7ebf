package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	gogithub "github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/require"
)

// newMockListingServer serves /users/{user}/repos with scripted pages
func newMockListingServer(t *testing.T, user string, pages map[int][]map[string]string, failPage int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/"+user+"/repos", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "updated", r.URL.Query().Get("sort"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		if failPage != 0 && page == failPage {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"message": "upstream error"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		repos := pages[page]
		if repos == nil {
			repos = []map[string]string{}
		}
		_ = json.NewEncoder(w).Encode(repos)
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"login": user})
	})

	return httptest.NewServer(mux)
}

func newMockClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	gh := gogithub.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = baseURL
	return NewClientFrom(gh)
}

func TestClientListRepositories(t *testing.T) {
	server := newMockListingServer(t, "octocat", map[int][]map[string]string{
		1: {
			{"name": "newest", "clone_url": "https://github.com/octocat/newest.git"},
			{"name": "older", "clone_url": "https://github.com/octocat/older.git"},
		},
	}, 0)
	defer server.Close()

	client := newMockClient(t, server)
	repos, err := client.ListRepositories(context.Background(), "octocat", 1, 100)
	require.NoError(t, err)
	require.Equal(t, []Repo{
		{Name: "newest", CloneURL: "https://github.com/octocat/newest.git"},
		{Name: "older", CloneURL: "https://github.com/octocat/older.git"},
	}, repos)
}

func TestClientListRepositoriesError(t *testing.T) {
	server := newMockListingServer(t, "octocat", nil, 1)
	defer server.Close()

	client := newMockClient(t, server)
	_, err := client.ListRepositories(context.Background(), "octocat", 1, 100)
	require.Error(t, err)
}

func TestClientAuthenticatedUser(t *testing.T) {
	server := newMockListingServer(t, "octocat", nil, 0)
	defer server.Close()

	client := newMockClient(t, server)
	login, err := client.AuthenticatedUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "octocat", login)
}

func TestListAllAgainstMockServer(t *testing.T) {
	pageOf := func(names ...string) []map[string]string {
		out := make([]map[string]string, len(names))
		for i, n := range names {
			out[i] = map[string]string{"name": n, "clone_url": "https://github.com/octocat/" + n + ".git"}
		}
		return out
	}

	server := newMockListingServer(t, "octocat", map[int][]map[string]string{
		1: pageOf("a", "b"),
		2: pageOf("c"),
	}, 0)
	defer server.Close()

	client := newMockClient(t, server)
	repos, err := ListAll(context.Background(), client, "octocat", 2)
	require.NoError(t, err)
	require.Len(t, repos, 3)
	require.Equal(t, "c", repos[2].Name)
}
