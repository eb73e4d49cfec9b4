// Package httputil provides retry helpers for folio's HTTP integrations.
//
// [Retry] re-runs an operation with exponential backoff when it fails with
// a [RetryableError]. Clients wrap transient failures (network errors, 5xx
// responses, rate limiting) with [Retryable] and return everything else
// unwrapped so it fails fast:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// Response caching lives in package cache.
package httputil
