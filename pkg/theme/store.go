package theme

import (
	"context"
	"sync"

	"github.com/matzehuels/folio/pkg/cache"
)

// StoreKey is the key under which [CacheStore] keeps the selected theme.
const StoreKey = "theme:selected"

// Store persists the selected theme ID. Load returns "" when nothing has
// been saved.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, id string) error
}

// CacheStore keeps the selection in a cache backend without expiry.
type CacheStore struct {
	c cache.Cache
}

// NewCacheStore creates a store on top of c.
func NewCacheStore(c cache.Cache) *CacheStore { return &CacheStore{c: c} }

// Load reads the saved ID.
func (s *CacheStore) Load(ctx context.Context) (string, error) {
	data, ok, err := s.c.Get(ctx, StoreKey)
	if err != nil || !ok {
		return "", err
	}
	return string(data), nil
}

// Save writes id.
func (s *CacheStore) Save(ctx context.Context, id string) error {
	return s.c.Set(ctx, StoreKey, []byte(id), 0)
}

// MemoryStore keeps the selection in memory.
type MemoryStore struct {
	mu sync.Mutex
	id string
}

// Load returns the saved ID.
func (s *MemoryStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, nil
}

// Save records id.
func (s *MemoryStore) Save(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

var (
	_ Store = (*CacheStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
