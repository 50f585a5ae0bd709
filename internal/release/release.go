// Package release resolves the latest published version tag of the
// panel and agent projects from the GitHub releases API.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.github.com"

// Client queries a release-metadata endpoint. The zero value is not
// usable; construct with NewClient.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	// Limiter keeps the bootstrapper inside the unauthenticated
	// API quota when several version lookups run back to back.
	Limiter *rate.Limiter
}

// NewClient returns a Client for the public GitHub API with a 10s
// request timeout.
func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: defaultBaseURL,
		Limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Latest returns the tag name of the most recent release of the
// given "owner/name" repository. A network failure, a non-200
// response, or a missing tag is an error; an empty tag is never
// returned silently.
func (c *Client) Latest(ctx context.Context, repo string) (string, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.BaseURL, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch latest release of %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch latest release of %s: unexpected status %s",
			repo, resp.Status)
	}

	var body struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode release metadata of %s: %w", repo, err)
	}
	if body.TagName == "" {
		return "", fmt.Errorf("%s has no published releases", repo)
	}
	return body.TagName, nil
}
