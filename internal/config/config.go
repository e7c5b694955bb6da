// Package config reads the optional riddle.yaml project manifest: an
// ordered list of source files, so the CLI doesn't need them repeated
// on the command line every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the shape of riddle.yaml.
type Manifest struct {
	Files []string `yaml:"files"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// LoadIfExists is Load, but returns a nil Manifest and no error when
// path does not exist, for the CLI's "manifest is sugar, not required"
// fallback to explicit file arguments.
func LoadIfExists(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(path)
}
