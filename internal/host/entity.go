// Package host exposes sign classifiers as observable entities: it owns
// device metadata, state snapshots, change detection and periodic refresh.
package host

import (
	"time"

	"github.com/ppiankov/calsigns/internal/classify"
)

// Domain is the integration domain used in device identifiers
const Domain = "calendar_signs"

// Entity metadata shared by every sign entity
const (
	DeviceClassEnum   = "enum"
	TranslationKey    = "sign"
	EntryTypeService  = "service"
	DefaultDeviceName = "Calendar Signs"
)

// DeviceInfo describes the device all entities of one host entry attach to
type DeviceInfo struct {
	Name        string      `json:"name" yaml:"name"`
	Identifiers [][2]string `json:"identifiers" yaml:"identifiers"`
	EntryType   string      `json:"entry_type" yaml:"entry_type"`
}

// NewDeviceInfo builds the service device for a host entry
func NewDeviceInfo(name, entryID string) DeviceInfo {
	if name == "" {
		name = DefaultDeviceName
	}
	return DeviceInfo{
		Name:        name,
		Identifiers: [][2]string{{Domain, entryID}},
		EntryType:   EntryTypeService,
	}
}

// State is a point-in-time snapshot of one entity.
// Value is nil until the classifier has matched at least once.
type State struct {
	UniqueID       string            `json:"unique_id" yaml:"unique_id"`
	Name           string            `json:"name" yaml:"name"`
	DeviceClass    string            `json:"device_class" yaml:"device_class"`
	TranslationKey string            `json:"translation_key" yaml:"translation_key"`
	Value          *string           `json:"state" yaml:"state"`
	Attributes     map[string]string `json:"attributes" yaml:"attributes"`
	Options        []string          `json:"options" yaml:"options"`
	UpdatedAt      time.Time         `json:"updated_at" yaml:"updated_at"`
}

// ValueOr returns the state value or fallback when unset
func (s State) ValueOr(fallback string) string {
	if s.Value == nil {
		return fallback
	}
	return *s.Value
}

// SameAs reports whether two states carry the same value and attributes
func (s State) SameAs(o State) bool {
	if (s.Value == nil) != (o.Value == nil) {
		return false
	}
	if s.Value != nil && *s.Value != *o.Value {
		return false
	}
	if len(s.Attributes) != len(o.Attributes) {
		return false
	}
	for k, v := range s.Attributes {
		if ov, ok := o.Attributes[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Entity is a classifier surfaced to the host as an enum sensor
type Entity struct {
	classifier *classify.Classifier
	device     DeviceInfo
}

// NewEntity wraps a classifier
func NewEntity(c *classify.Classifier, device DeviceInfo) *Entity {
	return &Entity{classifier: c, device: device}
}

func (e *Entity) UniqueID() string       { return e.classifier.UniqueID() }
func (e *Entity) Name() string           { return e.classifier.Name() }
func (e *Entity) Options() []string      { return e.classifier.Options() }
func (e *Entity) Device() DeviceInfo     { return e.device }
func (e *Entity) DeviceClass() string    { return DeviceClassEnum }
func (e *Entity) TranslationKey() string { return TranslationKey }
func (e *Entity) HasEntityName() bool    { return true }

// Update refreshes the classifier for now and returns the resulting state
func (e *Entity) Update(now time.Time) State {
	e.classifier.Refresh(now)
	return e.State(now)
}

// State snapshots the held value without refreshing
func (e *Entity) State(at time.Time) State {
	res, ok := e.classifier.Current()
	st := State{
		UniqueID:       e.UniqueID(),
		Name:           e.Name(),
		DeviceClass:    e.DeviceClass(),
		TranslationKey: e.TranslationKey(),
		Attributes:     res.Attributes,
		Options:        e.Options(),
		UpdatedAt:      at,
	}
	if ok {
		st.Value = &res.Sign
	}
	return st
}
