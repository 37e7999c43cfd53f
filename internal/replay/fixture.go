package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Interaction is one recorded slider move.
type Interaction struct {
	Control string  `json:"control"` // "sigma" or "n"
	Value   float64 `json:"value"`
}

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string        `json:"description"`
	Seed         uint64        `json:"seed"`
	Interactions []Interaction `json:"interactions"`
}

// #endregion fixture-types

// #region load-save

// LoadFixture reads and parses a fixture JSON file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	for i, in := range f.Interactions {
		if in.Control != "sigma" && in.Control != "n" {
			return Fixture{}, fmt.Errorf("fixture %s: interaction %d has unknown control %q", path, i, in.Control)
		}
	}
	return f, nil
}

// SaveFixture writes a fixture as indented JSON.
func SaveFixture(path string, f Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// #endregion load-save
