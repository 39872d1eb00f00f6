// Package fixture loads question fixtures: a reference dataset plus the
// queries exercised against it.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture pairs a seed batch with the queries to validate against it.
type Fixture struct {
	Name    string  `yaml:"name"`
	SeedSQL string  `yaml:"seed_sql"`
	Queries []Query `yaml:"queries"`
}

// Query is one candidate statement, optionally annotated for output.
type Query struct {
	SQL  string `yaml:"sql"`
	Note string `yaml:"note"`
}

// Load reads a fixture from a YAML file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	if len(f.Queries) == 0 {
		return nil, fmt.Errorf("fixture %s has no queries", path)
	}

	return &f, nil
}
