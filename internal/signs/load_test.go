package signs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/calsigns/internal/model"
)

const overrideYAML = `
tables:
  celtic_signs:
    name: Celtic Trees
    entries:
      - start: {day: 1, month: 1}
        end: {day: 31, month: 1}
        sign: rowan
      - start: {day: 1, month: 2}
        end: {day: 28, month: 2}
        sign: ash
  seasons:
    options: [winter, summer]
    entries:
      - start: {day: 1, month: 12}
        end: {day: 28, month: 2}
        sign: winter
        attributes:
          mood: cold
`

func TestParseTables(t *testing.T) {
	tables, err := ParseTables([]byte(overrideYAML))
	if err != nil {
		t.Fatalf("ParseTables failed: %v", err)
	}

	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	celtic := tables[IDCeltic]
	if celtic.ID != IDCeltic {
		t.Errorf("expected id %s, got %s", IDCeltic, celtic.ID)
	}
	if celtic.Name != "Celtic Trees" {
		t.Errorf("expected name from file, got %s", celtic.Name)
	}
	if len(celtic.Options) != 2 || celtic.Options[0] != "rowan" || celtic.Options[1] != "ash" {
		t.Errorf("expected options derived from entries, got %v", celtic.Options)
	}

	seasons := tables["seasons"]
	if seasons.Name != "seasons" {
		t.Errorf("expected name to default to id, got %s", seasons.Name)
	}
	if seasons.Entries[0].Attributes["mood"] != "cold" {
		t.Errorf("expected attributes to load, got %v", seasons.Entries[0].Attributes)
	}
}

func TestParseTables_Invalid(t *testing.T) {
	tests := []struct {
		desc string
		yaml string
	}{
		{
			desc: "month out of range",
			yaml: "tables:\n  x:\n    entries:\n      - {start: {day: 1, month: 13}, end: {day: 2, month: 1}, sign: a}\n",
		},
		{
			desc: "day out of range",
			yaml: "tables:\n  x:\n    entries:\n      - {start: {day: 1, month: 1}, end: {day: 32, month: 1}, sign: a}\n",
		},
		{
			desc: "missing sign",
			yaml: "tables:\n  x:\n    entries:\n      - {start: {day: 1, month: 1}, end: {day: 2, month: 1}}\n",
		},
		{
			desc: "sign not in options",
			yaml: "tables:\n  x:\n    options: [b]\n    entries:\n      - {start: {day: 1, month: 1}, end: {day: 2, month: 1}, sign: a}\n",
		},
		{
			desc: "no entries",
			yaml: "tables:\n  x:\n    name: empty\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestParseTables_BadYAML(t *testing.T) {
	_, err := ParseTables([]byte("tables: [unterminated"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrInvalidEntry) {
		t.Errorf("decode error should not be ErrInvalidEntry: %v", err)
	}
}

func TestLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(overrideYAML), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables failed: %v", err)
	}
	if _, ok := tables["seasons"]; !ok {
		t.Error("expected seasons table")
	}
}

func TestLoadTables_NonExistent(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	overrides := map[string]*model.SignTable{
		IDCeltic: {
			ID:      IDCeltic,
			Name:    "Override",
			Options: []string{"x"},
			Entries: []model.SignEntry{{Start: model.DayMonth{Day: 1, Month: 1}, End: model.DayMonth{Day: 2, Month: 1}, Sign: "x"}},
		},
	}

	tables, err := Resolve([]string{IDTraditional, IDCeltic}, overrides)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].ID != IDTraditional || len(tables[0].Entries) != 12 {
		t.Errorf("expected built-in traditional table, got %s with %d entries", tables[0].ID, len(tables[0].Entries))
	}
	if tables[1].Name != "Override" {
		t.Errorf("expected override to replace built-in, got %s", tables[1].Name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve([]string{"persian_signs"}, nil)
	if !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("expected ErrUnknownSystem, got %v", err)
	}
}
