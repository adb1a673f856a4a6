package parity

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fixtureScenario is the YAML-facing shape of a Scenario; Scenario itself
// stays the in-memory type the rest of the package uses.
// Actions decodes as []int rather than []uint8: yaml.v3 special-cases
// []byte (== []uint8) as base64-encoded scalars, which a plain action-id
// list is not.
type fixtureScenario struct {
	Name    string `yaml:"name"`
	Seed    uint64 `yaml:"seed"`
	Actions []int  `yaml:"actions"`
}

type fixtureFile struct {
	Scenarios []fixtureScenario `yaml:"scenarios"`
}

// LoadScenarios reads a YAML scenario file (testdata/scenarios.yaml) into
// Scenario values, for the concrete end-to-end cases that are easier to
// pin down as data than to generate programmatically (spec.md §8).
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	scenarios := make([]Scenario, len(f.Scenarios))
	for i, fs := range f.Scenarios {
		actions := make([]uint8, len(fs.Actions))
		for j, a := range fs.Actions {
			actions[j] = uint8(a)
		}
		scenarios[i] = Scenario{Name: fs.Name, Seed: fs.Seed, Actions: actions}
	}
	return scenarios, nil
}
