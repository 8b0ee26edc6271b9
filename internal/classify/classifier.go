package classify

import (
	"sync"
	"time"

	"github.com/ppiankov/calsigns/internal/model"
	"github.com/ppiankov/calsigns/internal/signs"
)

// Classifier binds one sign table to a host entity and holds the most
// recent classification.
type Classifier struct {
	table        *model.SignTable
	hostEntityID string

	mu      sync.RWMutex
	current model.Result
	set     bool
}

// NewClassifier creates a classifier for table, attached to the host entity
// identified by hostEntityID. The table is copied; a nil table behaves as
// one with no entries, as in Match.
func NewClassifier(table *model.SignTable, hostEntityID string) *Classifier {
	if table == nil {
		table = &model.SignTable{}
	}
	return &Classifier{
		table:        signs.Clone(table),
		hostEntityID: hostEntityID,
	}
}

// NewAll creates classifiers for every built-in system in registration order
func NewAll(hostEntityID string) []*Classifier {
	return NewFromTables(signs.All(), hostEntityID)
}

// NewFromTables creates one classifier per table, preserving order
func NewFromTables(tables []*model.SignTable, hostEntityID string) []*Classifier {
	out := make([]*Classifier, len(tables))
	for i, t := range tables {
		out[i] = NewClassifier(t, hostEntityID)
	}
	return out
}

// Refresh classifies today's date. A match replaces the held value; a miss
// leaves the previous value in place. It returns the held value and whether
// one has ever been set.
func (c *Classifier) Refresh(today time.Time) (model.Result, bool) {
	return c.RefreshDay(model.DayMonthOf(today))
}

// RefreshDay is Refresh for a bare day and month
func (c *Classifier) RefreshDay(today model.DayMonth) (model.Result, bool) {
	res, ok := Match(c.table, today)

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.current = res
		c.set = true
	}
	if !c.set {
		return model.Result{Attributes: map[string]string{}}, false
	}
	return c.current.Clone(), true
}

// CurrentSign returns the held sign, or false if no refresh has matched yet
func (c *Classifier) CurrentSign() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Sign, c.set
}

// CurrentAttributes returns a copy of the held attributes; never nil
func (c *Classifier) CurrentAttributes() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Clone().Attributes
}

// Current returns a copy of the held result and whether it is set, read
// under one lock
func (c *Classifier) Current() (model.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return model.Result{Attributes: map[string]string{}}, false
	}
	return c.current.Clone(), true
}

func (c *Classifier) Name() string         { return c.table.Name }
func (c *Classifier) UniqueID() string     { return c.table.ID }
func (c *Classifier) HostEntityID() string { return c.hostEntityID }

// Options returns the closed set of signs this classifier can report
func (c *Classifier) Options() []string {
	return append([]string(nil), c.table.Options...)
}
