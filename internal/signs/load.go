package signs

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/calsigns/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidEntry marks a table file entry that fails validation
	ErrInvalidEntry = errors.New("invalid sign entry")
	// ErrUnknownSystem is returned when an enabled system has no table
	ErrUnknownSystem = errors.New("unknown sign system")
)

// tablesFile is the on-disk layout of a table override file
type tablesFile struct {
	Tables map[string]model.SignTable `yaml:"tables"`
}

// LoadTables reads table overrides from a YAML file, keyed by system ID
func LoadTables(path string) (map[string]*model.SignTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}

	tables, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tables, nil
}

// ParseTables decodes and validates table overrides.
// Options default to the distinct signs of the entries when omitted.
func ParseTables(data []byte) (map[string]*model.SignTable, error) {
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	out := make(map[string]*model.SignTable, len(f.Tables))
	for id, t := range f.Tables {
		t.ID = id
		if t.Name == "" {
			t.Name = id
		}
		if len(t.Options) == 0 {
			t.Options = t.DistinctSigns()
		}
		if err := validate(&t); err != nil {
			return nil, fmt.Errorf("table %s: %w", id, err)
		}
		tc := t
		out[id] = &tc
	}
	return out, nil
}

func validate(t *model.SignTable) error {
	if len(t.Entries) == 0 {
		return fmt.Errorf("%w: table has no entries", ErrInvalidEntry)
	}
	for i, e := range t.Entries {
		if e.Sign == "" {
			return fmt.Errorf("%w: entry %d has no sign", ErrInvalidEntry, i)
		}
		if !validDayMonth(e.Start) {
			return fmt.Errorf("%w: entry %d start %d/%d out of range", ErrInvalidEntry, i, e.Start.Day, e.Start.Month)
		}
		if !validDayMonth(e.End) {
			return fmt.Errorf("%w: entry %d end %d/%d out of range", ErrInvalidEntry, i, e.End.Day, e.End.Month)
		}
		if !t.HasOption(e.Sign) {
			return fmt.Errorf("%w: entry %d sign %q not in options", ErrInvalidEntry, i, e.Sign)
		}
	}
	return nil
}

func validDayMonth(d model.DayMonth) bool {
	return d.Day >= 1 && d.Day <= 31 && d.Month >= 1 && d.Month <= 12
}

// Resolve returns the tables for the given system IDs, in order.
// An override replaces the built-in table with the same ID.
func Resolve(ids []string, overrides map[string]*model.SignTable) ([]*model.SignTable, error) {
	out := make([]*model.SignTable, 0, len(ids))
	for _, id := range ids {
		if t, ok := overrides[id]; ok {
			out = append(out, Clone(t))
			continue
		}
		t, ok := Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, id)
		}
		out = append(out, t)
	}
	return out, nil
}
