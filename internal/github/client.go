package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v45/github"
	"github.com/gregjones/httpcache"
	"github.com/pkg/errors"

	"repo-directory/internal/config"
)

// Client handles GitHub API interactions
type Client struct {
	gh *gh.Client
}

// Repository represents a GitHub repository from the API
type Repository = gh.Repository

// NewClient creates a new GitHub API client. Requests are unauthenticated.
func NewClient(cfg *config.GitHubConfig) (*Client, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPCache {
		// conditional requests with ETag, answered from memory on 304
		httpClient.Transport = httpcache.NewMemoryCacheTransport()
	}

	baseURL, err := url.Parse(cfg.APIBaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse GitHub API URL")
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL
	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}

	return &Client{gh: client}, nil
}

// ListOrgRepositories fetches the repositories of an organization as a single
// request, in the order returned.
func (c *Client) ListOrgRepositories(ctx context.Context, org string) ([]*Repository, error) {
	repos, _, err := c.gh.Repositories.ListByOrg(ctx, org, nil)
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepository fetches a single repository. It returns nil without error
// when the response body is JSON null or empty.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	u := fmt.Sprintf("repos/%v/%v", url.PathEscape(owner), url.PathEscape(name))
	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	var repository *Repository
	if _, err := c.gh.Do(ctx, req, &repository); err != nil {
		return nil, err
	}
	return repository, nil
}

// GetLanguages fetches a languages mapping from an absolute URL taken from a
// repository record and returns its keys in document order.
func (c *Client) GetLanguages(ctx context.Context, languagesURL string) ([]string, error) {
	req, err := c.gh.NewRequest(http.MethodGet, languagesURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	var raw json.RawMessage
	if _, err := c.gh.Do(ctx, req, &raw); err != nil {
		return nil, err
	}

	languages, err := orderedKeys(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode languages")
	}
	return languages, nil
}

// IsStatusError reports whether err carries a non-success HTTP response
// rather than a failure to reach the API.
func IsStatusError(err error) bool {
	var errResp *gh.ErrorResponse
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	var acceptedErr *gh.AcceptedError
	return errors.As(err, &errResp) ||
		errors.As(err, &rateErr) ||
		errors.As(err, &abuseErr) ||
		errors.As(err, &acceptedErr)
}

// StatusCode returns the HTTP status attached to err, or 0
func StatusCode(err error) int {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	var acceptedErr *gh.AcceptedError
	if errors.As(err, &acceptedErr) {
		return http.StatusAccepted
	}
	return 0
}

// orderedKeys returns the member names of a JSON object in document order.
// A null or empty document yields no keys.
func orderedKeys(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []string{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	keys := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
