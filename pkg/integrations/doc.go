// Package integrations provides HTTP clients for the remote APIs a portfolio
// draws on.
//
// # Overview
//
// The [Client] type carries the shared plumbing: default headers, a request
// timeout, retries with backoff for transient failures, status mapping
// ([ErrNotFound], [ErrNetwork], rate limits) and response caching through
// any [cache.Cache] backend. Service clients live in subpackages:
//
//   - [github]: repository star counts for the projects section
//
// # Client Pattern
//
//	c, err := cache.Open(ctx, "folio", cache.Config{})
//	gh := github.NewClient(token, c, 24*time.Hour)
//	stars, err := gh.Stars(ctx, "owner", "repo", false) // false = use cache
//
// Every request is reported to the [observability.HTTPHooks] registry.
//
// [github]: github.com/matzehuels/folio/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/folio/pkg/cache.Cache
// [observability.HTTPHooks]: github.com/matzehuels/folio/pkg/observability.HTTPHooks
package integrations
