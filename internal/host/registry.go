package host

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/calsigns/internal/classify"
	"github.com/ppiankov/calsigns/internal/model"
	"go.uber.org/zap"
)

// Registry holds the entities of one host entry in registration order
type Registry struct {
	entryID  string
	device   DeviceInfo
	entities []*Entity
	byID     map[string]*Entity
	logger   *zap.Logger
}

// NewRegistry creates one entity per table. An empty entryID is replaced by
// a generated one. A nil logger disables logging.
func NewRegistry(entryID, deviceName string, tables []*model.SignTable, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if entryID == "" {
		entryID = uuid.NewString()
	}

	r := &Registry{
		entryID: entryID,
		device:  NewDeviceInfo(deviceName, entryID),
		byID:    make(map[string]*Entity, len(tables)),
		logger:  logger,
	}

	for _, c := range classify.NewFromTables(tables, entryID) {
		if _, dup := r.byID[c.UniqueID()]; dup {
			return nil, fmt.Errorf("duplicate entity id %s", c.UniqueID())
		}
		e := NewEntity(c, r.device)
		r.entities = append(r.entities, e)
		r.byID[c.UniqueID()] = e
		logger.Debug("Registered entity",
			zap.String("unique_id", c.UniqueID()),
			zap.Int("options", len(c.Options())))
	}

	return r, nil
}

func (r *Registry) EntryID() string    { return r.entryID }
func (r *Registry) Device() DeviceInfo { return r.device }

// Entities returns the registered entities in registration order
func (r *Registry) Entities() []*Entity {
	return append([]*Entity(nil), r.entities...)
}

// Get looks up an entity by unique ID
func (r *Registry) Get(uniqueID string) (*Entity, bool) {
	e, ok := r.byID[uniqueID]
	return e, ok
}

// UpdateAll refreshes every entity for now and returns their states
func (r *Registry) UpdateAll(now time.Time) []State {
	states := make([]State, len(r.entities))
	for i, e := range r.entities {
		states[i] = e.Update(now)
		if states[i].Value == nil {
			r.logger.Debug("Entity has no sign yet",
				zap.String("unique_id", e.UniqueID()),
				zap.String("date", model.DayMonthOf(now).String()))
		}
	}
	return states
}
