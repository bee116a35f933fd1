package session

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps short-lived conversation state per chat. Entries expire
// after the configured TTL and the store is bounded, so an abandoned
// conversation costs nothing after a few minutes.
type Store interface {
	Get(chatID string) (State, bool)
	Put(chatID string, state State)
	RememberLocation(chatID, location string)
	RememberToken(chatID, token string)
	Len() int
}

type implStore struct {
	cache *lru.LRU[string, State]
}

// Ensure implStore implements Store interface
var _ Store = (*implStore)(nil)

// New creates a bounded session store. Entries older than ttl are
// treated as absent even before eviction runs.
func New(capacity int, ttl time.Duration) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implStore{
		cache: lru.NewLRU[string, State](capacity, nil, ttl),
	}
}
