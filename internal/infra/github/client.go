// Package github lists public repositories through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"devconnector/config"
	"devconnector/internal/domain/entity"
	"devconnector/internal/domain/service"
	"devconnector/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "node.js"
	defaultPerPage   = 5
	defaultTimeout   = 5 * time.Second
)

type client struct {
	baseURL      string
	clientID     string
	clientSecret string
	userAgent    string
	perPage      int
	httpClient   *http.Client
	logger       *slog.Logger
}

// ClientParams holds dependencies for the repository lister, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a RepositoryLister for the configured GitHub API
func NewClient(params ClientParams) service.RepositoryLister {
	cfg := params.Config.GitHub
	if cfg == nil {
		cfg = &config.GitHubConfig{}
	}

	c := &client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		userAgent:    cfg.UserAgent,
		perPage:      cfg.PerPage,
		logger:       params.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.perPage <= 0 {
		c.perPage = defaultPerPage
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c.httpClient = &http.Client{Timeout: timeout}

	return c
}

// ListRepositories returns the oldest-created public repositories of username,
// capped at the configured page size. Any non-200 answer is ErrRepositoryOwnerNotFound.
func (c *client) ListRepositories(ctx context.Context, username string) ([]entity.GitHubRepo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reposURL(username), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request github repositories")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("GitHub repositories lookup failed",
			slog.String("username", username),
			slog.Int("status", resp.StatusCode),
		)

		return nil, service.ErrRepositoryOwnerNotFound
	}

	var repos []entity.GitHubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.Wrap(err, "decode github repositories")
	}

	return repos, nil
}

func (c *client) reposURL(username string) string {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.perPage))
	query.Set("sort", "created:asc")
	if c.clientID != "" {
		query.Set("client_id", c.clientID)
	}
	if c.clientSecret != "" {
		query.Set("client_secret", c.clientSecret)
	}

	return c.baseURL + "/users/" + url.PathEscape(username) + "/repos?" + query.Encode()
}
