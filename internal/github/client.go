// Package github is a minimal read-only client for the public GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"pjadhav.dev/internal/models"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL   = "https://api.github.com"
	defaultRepoCount = 6
	defaultTimeout   = 10 * time.Second
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github api: status %d: %s", e.StatusCode, e.Message)
}

// Client fetches public profile data. Requests are unauthenticated unless a
// token is configured.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	repoCount  int
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API root (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken authenticates requests with a personal access token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithRepoCount sets how many recently updated repositories are listed.
func WithRepoCount(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.repoCount = n
		}
	}
}

// NewClient creates a new Client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		repoCount:  defaultRepoCount,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, c.httpClient)
		authed := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token}))
		authed.Timeout = c.httpClient.Timeout
		c.httpClient = authed
	}
	return c
}

// User handles GET /users/{username}
func (c *Client) User(ctx context.Context, username string) (*models.GitHubUser, error) {
	var user models.GitHubUser
	if err := c.get(ctx, "/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Repos handles GET /users/{username}/repos, most recently updated first.
func (c *Client) Repos(ctx context.Context, username string) ([]models.GitHubRepo, error) {
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", strconv.Itoa(c.repoCount))

	var repos []models.GitHubRepo
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/repos", query, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
