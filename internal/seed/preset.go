package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named seeding profile loaded from a YAML file, e.g.:
//
//	users: 25
//	entries_per_kind: 40
//	max_days: 90
//	clean: true
type Preset struct {
	Users          int   `yaml:"users"`
	EntriesPerKind int   `yaml:"entries_per_kind"`
	MaxDays        int   `yaml:"max_days"`
	Clean          bool  `yaml:"clean"`
	RandomSeed     int64 `yaml:"random_seed"`
}

// LoadPreset reads a seeding profile from the given YAML file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if p.Users <= 0 {
		return nil, fmt.Errorf("preset %s: users must be positive", path)
	}
	if p.EntriesPerKind < 0 {
		return nil, fmt.Errorf("preset %s: entries_per_kind must not be negative", path)
	}
	return &p, nil
}

// Options converts the preset into seeder options.
func (p *Preset) Options() Options {
	return Options{
		NumUsers:       p.Users,
		EntriesPerKind: p.EntriesPerKind,
		MaxDays:        p.MaxDays,
		ShouldClean:    p.Clean,
		RandomSeed:     p.RandomSeed,
	}
}
