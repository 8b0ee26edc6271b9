// Package cache stores the last published entity states.
package cache

import "time"

// Cache defines the interface for state caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// StateKey builds the cache key for one entity of one host entry
func StateKey(entryID, uniqueID string) string {
	return "calsigns:v1:" + entryID + ":" + uniqueID
}
