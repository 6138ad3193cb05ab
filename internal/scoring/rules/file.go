package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrides reads a rule patch from a YAML file and applies it to the
// default table. An empty path returns the defaults unchanged.
func LoadOverrides(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read scoring rules file: %w", err)
	}

	var patch Patch
	if err := yaml.Unmarshal(data, &patch); err != nil {
		return Table{}, fmt.Errorf("parse scoring rules file: %w", err)
	}

	return table.Merge(patch), nil
}
