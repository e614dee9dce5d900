// Package ruleio loads and saves the persisted rule-schema mapping and
// building-spec documents. It is a thin wrapper around schema.FromMap and
// Schema.AsMap; JSON and YAML files are supported, dispatched on extension.
package ruleio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/baselinegen/baselinegen/engine/core"
	"github.com/baselinegen/baselinegen/engine/schema"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode YAML from %s: %w", path, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode JSON from %s: %w", path, err)
	}
	return nil
}

// LoadSchema reads a rule-schema file and reconstructs the schema.
func LoadSchema(path string) (*schema.Schema, error) {
	var doc map[string]any
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	s, err := schema.FromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema from %s: %w", path, err)
	}
	return s, nil
}

// SaveSchema writes the schema's persisted mapping form to path.
func SaveSchema(path string, s *schema.Schema) error {
	doc := s.AsMap()
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// LoadBuildingSpec reads a building-spec mapping from a JSON or YAML file.
func LoadBuildingSpec(path string) (map[string]any, error) {
	var raw any
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}
	spec := core.AsAnyMap(raw)
	if spec == nil {
		return nil, fmt.Errorf("building spec in %s is not a mapping", path)
	}
	return spec, nil
}
