package model

import (
	"runtime"
	"time"
)

// Config is the complete calsigns configuration
type Config struct {
	Host        HostConfig        `yaml:"host"`
	Systems     []string          `yaml:"systems"`               // Enabled system IDs, in display order
	TablesFile  string            `yaml:"tables_file,omitempty"` // Optional YAML file overriding built-in tables
	Poll        PollConfig        `yaml:"poll"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// HostConfig identifies the host entry all entities are attached to
type HostConfig struct {
	EntryID    string `yaml:"entry_id"`    // Empty means generate one at startup
	DeviceName string `yaml:"device_name"` // Shared device display name
}

// PollConfig controls the periodic refresh used by watch
type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
	Burst    int           `yaml:"burst"`
}

// CacheConfig controls how long published states are remembered
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format"` // text, json, yaml
	Verbose bool   `yaml:"verbose"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// DefaultSystems lists every built-in system ID in registration order
var DefaultSystems = []string{
	"traditional_astrological_zodiac",
	"japan_zen_signs",
	"native_american_signs",
	"egyptian_signs",
	"celtic_signs",
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	systems := make([]string, len(DefaultSystems))
	copy(systems, DefaultSystems)

	return &Config{
		Host: HostConfig{
			DeviceName: "Calendar Signs",
		},
		Systems: systems,
		Poll: PollConfig{
			Interval: time.Minute,
			Burst:    1,
		},
		Cache: CacheConfig{
			TTL: 24 * time.Hour,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
	}
}
