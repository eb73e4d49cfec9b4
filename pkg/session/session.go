// Package session tracks per-visitor navigation state for the HTTP site.
//
// A [Session] records which section a visitor is looking at and which theme
// they picked. Sessions expire after a TTL and live in a [Store]:
//   - [MemoryStore]: in-process map for a single server instance
//   - [CacheStore]: any [cache.Cache] backend, so redis or mongo can share
//     sessions across instances
//
// # Usage
//
//	store := session.NewMemoryStore()
//	sess := session.New(session.DefaultTTL)
//	sess.Index = 2
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if sess == nil {
//	    // Unknown or expired
//	}
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "folio_session"

// DefaultTTL is the default session duration.
const DefaultTTL = 24 * time.Hour

// Session stores one visitor's navigation state.
type Session struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"`
	Theme     string    `json:"theme,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a session positioned on the first section.
func New(ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch extends the session to ttl from now.
func (s *Session) Touch(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.ExpiresAt = time.Now().Add(ttl)
}

// ValidID reports whether id has the shape of a session ID. Cookies that
// fail this check are ignored rather than looked up.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions (may be a no-op when the backend
	// expires entries itself).
	Cleanup(ctx context.Context) error
}
