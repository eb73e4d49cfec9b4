package session

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/folio/pkg/cache"
)

// CacheStore keeps sessions in a [cache.Cache] under the "session:" prefix.
// Entry TTLs follow the session expiry, so Cleanup has nothing to do.
type CacheStore struct {
	c cache.Cache
}

// NewCacheStore wraps c.
func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{c: cache.Namespace(c, "session:")}
}

func (s *CacheStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	ok, err := cache.GetJSON(ctx, s.c, id, &sess)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok || sess.IsExpired() {
		return nil, nil
	}
	return &sess, nil
}

func (s *CacheStore) Set(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}
	if err := cache.SetJSON(ctx, s.c, sess.ID, sess, ttl); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *CacheStore) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, id)
}

func (s *CacheStore) Cleanup(context.Context) error { return nil }

var _ Store = (*CacheStore)(nil)
