package host

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/calsigns/internal/cache"
)

// Publisher remembers the last published state of each entity and reports
// whether a new state differs from it.
type Publisher struct {
	cache   cache.Cache
	entryID string
	ttl     time.Duration
}

// NewPublisher creates a publisher backed by c. Zero ttl uses the cache default.
func NewPublisher(c cache.Cache, entryID string, ttl time.Duration) *Publisher {
	return &Publisher{cache: c, entryID: entryID, ttl: ttl}
}

// Publish stores st and returns true when its value or attributes changed.
// The first publish of an entity always counts as a change.
func (p *Publisher) Publish(st State) (bool, error) {
	prev, found := p.Last(st.UniqueID)

	data, err := json.Marshal(st)
	if err != nil {
		return false, fmt.Errorf("marshal state: %w", err)
	}
	if err := p.cache.Set(cache.StateKey(p.entryID, st.UniqueID), data, p.ttl); err != nil {
		return false, fmt.Errorf("store state: %w", err)
	}

	return !found || !prev.SameAs(st), nil
}

// Last returns the most recently published state of an entity
func (p *Publisher) Last(uniqueID string) (State, bool) {
	data, ok := p.cache.Get(cache.StateKey(p.entryID, uniqueID))
	if !ok {
		return State{}, false
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, false
	}
	return st, true
}

// Forget drops the remembered state of an entity
func (p *Publisher) Forget(uniqueID string) error {
	return p.cache.Delete(cache.StateKey(p.entryID, uniqueID))
}
