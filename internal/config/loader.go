// Package config loads comparison scenarios: the built-in ones embedded in
// the binary and user files in YAML or JSON.
package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var scenarioFS embed.FS

// DefaultScenario is used when no scenario is named.
const DefaultScenario = "classic"

// LoadScenario reads a built-in scenario by name.
func LoadScenario(name string) (*Scenario, error) {
	data, err := scenarioFS.ReadFile("scenarios/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(ListScenarios(), ", "), err)
	}
	s, err := Load(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}
	return s, nil
}

// ListScenarios returns the names of all built-in scenarios, sorted.
func ListScenarios() []string {
	entries, _ := scenarioFS.ReadDir("scenarios")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadFromPath reads a scenario file. Format is detected by extension
// (.yaml/.yml or .json) or, failing that, by content.
func LoadFromPath(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a scenario from bytes, fills unset tolerances with defaults
// and validates it. ext is a format hint; empty means detect from content.
func Load(data []byte, ext string) (*Scenario, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	var s Scenario
	if ext == ".json" {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse scenario json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse scenario yaml: %w", err)
		}
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	s.Tolerances = s.Tolerances.WithDefaults()
}
