package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnector/config"
	"devconnector/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, timeout time.Duration) service.RepositoryLister {
	return NewClient(ClientParams{
		Config: &config.Config{GitHub: &config.GitHubConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			BaseURL:      baseURL,
			Timeout:      timeout,
		}},
		Logger: slog.New(slog.DiscardHandler),
	})
}

func TestClient_ListRepositories(t *testing.T) {
	var gotPath, gotAgent string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "alpha", "html_url": "https://github.com/octocat/alpha", "stargazers_count": 3, "watchers_count": 3, "forks_count": 1},
			{"id": 2, "name": "beta", "description": "second", "html_url": "https://github.com/octocat/beta"}
		]`))
	}))
	defer server.Close()

	repos, err := newTestClient(server.URL, time.Second).ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "alpha", repos[0].Name)
	assert.Equal(t, 3, repos[0].StargazersCount)
	assert.Equal(t, "second", repos[1].Description)

	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, []string{"5"}, gotQuery["per_page"])
	assert.Equal(t, []string{"created:asc"}, gotQuery["sort"])
	assert.Equal(t, []string{"id"}, gotQuery["client_id"])
	assert.Equal(t, []string{"secret"}, gotQuery["client_secret"])
	assert.Equal(t, "node.js", gotAgent)
}

func TestClient_ListRepositories_NotFound(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}))

		_, err := newTestClient(server.URL, time.Second).ListRepositories(context.Background(), "ghost")
		assert.ErrorIs(t, err, service.ErrRepositoryOwnerNotFound, "status %d", status)

		server.Close()
	}
}

func TestClient_ListRepositories_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(server.URL, 50*time.Millisecond).ListRepositories(context.Background(), "slow")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRepositoryOwnerNotFound)
}

func TestClient_ListRepositories_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).ListRepositories(context.Background(), "octocat")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	lister := NewClient(ClientParams{
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})

	c, ok := lister.(*client)
	require.True(t, ok)
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, defaultUserAgent, c.userAgent)
	assert.Equal(t, defaultPerPage, c.perPage)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, "https://api.github.com/users/a%20b/repos?per_page=5&sort=created%3Aasc", c.reposURL("a b"))
}
