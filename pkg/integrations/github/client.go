package github

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/integrations"
)

var repoURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/?#]+?)(?:\.git)?(?:[/?#].*)?$`)

// Client provides access to the GitHub API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client caching responses in c for ttl.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
func NewClient(token string, c cache.Cache, ttl time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(c, ttl, "github", headers),
		baseURL: "https://api.github.com",
	}
}

// Repository is the subset of repository data the portfolio uses.
type Repository struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Archived    bool   `json:"archived"`
}

// Repo fetches repository metadata. If refresh is true, cached data is bypassed.
func (c *Client) Repo(ctx context.Context, owner, repo string, refresh bool) (*Repository, error) {
	key := "github:repo:" + owner + "/" + repo

	var r Repository
	err := c.Cached(ctx, key, refresh, &r, func() error {
		url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
		if err := c.Get(ctx, url, &r); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Stars returns the repository's stargazer count.
func (c *Client) Stars(ctx context.Context, owner, repo string, refresh bool) (int, error) {
	r, err := c.Repo(ctx, owner, repo, refresh)
	if err != nil {
		return 0, err
	}
	return r.Stars, nil
}

// ExtractURL parses a GitHub repository URL into owner and repo. SSH and
// git:// forms are accepted.
func ExtractURL(rawURL string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(integrations.NormalizeRepoURL(rawURL))
	if len(m) < 3 {
		return "", "", false
	}
	return m[1], m[2], true
}
