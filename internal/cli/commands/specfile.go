package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadSpecFile reads sampling options from a YAML mapping, e.g.
//
//	fraction: 10
//	method: bernoulli
//	repeatable: 42
//
// The legacy "type" key is honored the same way option maps honor it.
// String values are interpolated verbatim by the renderer, so dialect
// forms like "15 PERCENT" need no extra marker here.
func loadSpecFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %w", path, err)
	}
	if m == nil {
		return nil, fmt.Errorf("spec file %s is empty", path)
	}
	return m, nil
}
