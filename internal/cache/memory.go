package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps encoded entity states in process memory. A state that
// is not republished within its TTL is forgotten, so the next publish of
// that entity counts as a change.
type MemoryCache struct {
	states *gocache.Cache
}

// NewMemoryCache creates a state store whose entries live for stateTTL
// unless Set overrides it. Expired states are swept every sweepInterval;
// zero disables sweeping and expiry is checked on Get only.
func NewMemoryCache(stateTTL, sweepInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		states: gocache.New(stateTTL, sweepInterval),
	}
}

// Get returns the encoded state stored under key
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	v, found := c.states.Get(key)
	if !found {
		return nil, false
	}
	encoded, ok := v.([]byte)
	return encoded, ok
}

// Set stores an encoded state. A zero ttl keeps the store's state TTL.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.states.Set(key, value, ttl)
	return nil
}

// Delete forgets one entity's state
func (c *MemoryCache) Delete(key string) error {
	c.states.Delete(key)
	return nil
}
