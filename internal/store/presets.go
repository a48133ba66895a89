package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Preset is a checklist shipped with a deployment, for example:
//
//	[[preset]]
//	name = "Rechnung"
//	items = ["Rechnungsnummer vorhanden", "Datum angegeben"]
type Preset struct {
	Name  string   `toml:"name"`
	Items []string `toml:"items"`
}

type presetFile struct {
	Presets []Preset `toml:"preset"`
}

// ParsePresets decodes a TOML preset document.
func ParsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	return f.Presets, nil
}

// LoadPresets reads presets from a TOML file. An empty path yields none.
func LoadPresets(path string) ([]Preset, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets: %w", err)
	}
	return ParsePresets(data)
}

// SeedPresets saves the presets when no checklist has been saved yet and
// returns how many were added. Presets without a name or without any
// non-blank item are skipped.
func (s *ChecklistStore) SeedPresets(ctx context.Context, presets []Preset) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	added := 0
	// Reverse order so the listing matches the file.
	for i := len(presets) - 1; i >= 0; i-- {
		p := presets[i]
		name := strings.TrimSpace(p.Name)
		items := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if name == "" || len(items) == 0 {
			continue
		}
		if _, err := s.Save(ctx, name, items); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
