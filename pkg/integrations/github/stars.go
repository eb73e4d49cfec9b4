package github

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel repository lookups.
const DefaultConcurrency = 4

// StarsForProjects fetches star counts for every GitHub URL in urls, at most
// concurrency at a time. The result maps each resolved URL to its count.
// URLs that are not GitHub repositories are skipped silently; lookups that
// fail are omitted from the map and reported in the returned errors.
func (c *Client) StarsForProjects(ctx context.Context, urls []string, concurrency int, refresh bool) (map[string]int, []error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		mu    sync.Mutex
		stars = make(map[string]int, len(urls))
		errs  []error
		g     errgroup.Group
	)
	g.SetLimit(concurrency)

	seen := map[string]bool{}
	for _, u := range urls {
		owner, repo, ok := ExtractURL(u)
		if !ok || seen[u] {
			continue
		}
		seen[u] = true
		g.Go(func() error {
			n, err := c.Stars(ctx, owner, repo, refresh)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s/%s: %w", owner, repo, err))
				return nil
			}
			stars[u] = n
			return nil
		})
	}
	_ = g.Wait()
	return stars, errs
}
