// Package cache provides byte-oriented key/value caches with expiry.
//
// Every backend implements [Cache]. Callers pick one with [Open] from a
// [Config]:
//
//   - "file": [FileCache], sharded JSON files under the XDG cache directory
//   - "redis": [RedisCache], a shared Redis server
//   - "mongo": [MongoCache], a MongoDB collection with a TTL index
//   - "memory": [MemoryCache], process-local, used by the HTTP site and tests
//   - "none": [NullCache], caching disabled
//
// Keys are plain strings. Use [Namespace] to give each consumer its own key
// space, and [GetJSON]/[SetJSON] for structured values.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/matzehuels/folio/pkg/observability"
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache closed")

// Cache stores opaque byte values under string keys.
//
// Get reports a miss with (nil, false, nil); expired entries are misses.
// A ttl of zero or less passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and decodes it into v. A corrupt entry is reported as a
// miss so callers refetch.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// Namespace returns a view of c that prefixes every key with prefix.
// Closing the view does not close c.
func Namespace(c Cache, prefix string) Cache {
	if ns, ok := c.(*namespaced); ok {
		return &namespaced{inner: ns.inner, prefix: ns.prefix + prefix}
	}
	return &namespaced{inner: c, prefix: prefix}
}

type namespaced struct {
	inner  Cache
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, data, ttl)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Close() error { return nil }

// Instrument wraps c so every operation reports to the registered
// observability cache hooks under backend.
func Instrument(c Cache, backend string) Cache {
	return &instrumented{inner: c, backend: backend}
}

type instrumented struct {
	inner   Cache
	backend string
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := i.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, i.backend)
		} else {
			observability.Cache().OnCacheMiss(ctx, i.backend)
		}
	}
	return data, ok, err
}

func (i *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := i.inner.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, i.backend, len(data))
	}
	return err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	return i.inner.Delete(ctx, key)
}

func (i *instrumented) Close() error { return i.inner.Close() }
