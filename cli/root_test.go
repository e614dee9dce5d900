package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseAndGenerate(t *testing.T) {
	t.Run("Should parse rule text and generate a baseline end to end", func(t *testing.T) {
		dir := t.TempDir()
		rulesText := filepath.Join(dir, "rules.txt")
		schemaPath := filepath.Join(dir, "rules.json")
		buildingPath := filepath.Join(dir, "building.json")

		require.NoError(t, os.WriteFile(rulesText, []byte(
			"If building type is office and building area is less than 25000 sqft then set lighting power density to 1.0 W/sqft\n"+
				"If climate zone is 5a then set heating efficiency to 0.8\n"), 0o644))
		require.NoError(t, os.WriteFile(buildingPath, []byte(
			`{"building_type": "office", "building_area": 15000, "climate_zone": "5a"}`), 0o644))

		_, err := runCommand(t, "parse", "--input", rulesText, "--output", schemaPath, "--category", "test")
		require.NoError(t, err)

		out, err := runCommand(t, "generate", "--rules", schemaPath, "--building", buildingPath, "--format", "json")
		require.NoError(t, err)

		var result struct {
			MatchedRules       []string       `json:"matched_rules"`
			BaselineProperties map[string]any `json:"baseline_properties"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, []string{"test_001", "test_002"}, result.MatchedRules)
		assert.Equal(t, 1.0, result.BaselineProperties["lighting_power_density"])
		assert.Equal(t, 0.8, result.BaselineProperties["heating_efficiency"])
	})

	t.Run("Should fail parse on unrecognized rule text", func(t *testing.T) {
		dir := t.TempDir()
		rulesText := filepath.Join(dir, "rules.txt")
		require.NoError(t, os.WriteFile(rulesText, []byte("this is not a rule sentence\n"), 0o644))

		_, err := runCommand(t, "parse", "--input", rulesText, "--output", filepath.Join(dir, "out.json"))
		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	writeSchema := func(t *testing.T, dir string) string {
		t.Helper()
		path := filepath.Join(dir, "rules.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"version": "1.0",
			"rules": [{
				"id": "v001", "name": "Validation Rule", "description": "", "category": "test",
				"conditions": {"field": "required_field", "operator": "equals", "value": "value"},
				"actions": [{"action_type": "set_value", "target": "result", "value": "ok"}]
			}]
		}`), 0o644))
		return path
	}

	t.Run("Should report warnings for missing fields", func(t *testing.T) {
		dir := t.TempDir()
		schemaPath := writeSchema(t, dir)
		buildingPath := filepath.Join(dir, "building.json")
		require.NoError(t, os.WriteFile(buildingPath, []byte(`{}`), 0o644))

		out, err := runCommand(t, "validate", "--rules", schemaPath, "--building", buildingPath, "--format", "json")
		require.NoError(t, err)

		var v struct {
			Valid    bool     `json:"valid"`
			Warnings []string `json:"warnings"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &v))
		assert.True(t, v.Valid)
		require.Len(t, v.Warnings, 1)
		assert.Contains(t, v.Warnings[0], "required_field")
	})

	t.Run("Should exit non-zero with warnings under strict", func(t *testing.T) {
		dir := t.TempDir()
		schemaPath := writeSchema(t, dir)
		buildingPath := filepath.Join(dir, "building.json")
		require.NoError(t, os.WriteFile(buildingPath, []byte(`{}`), 0o644))

		_, err := runCommand(t, "validate", "--rules", schemaPath, "--building", buildingPath,
			"--format", "json", "--strict")
		assert.Error(t, err)
	})
}
