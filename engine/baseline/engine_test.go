package baseline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baselinegen/baselinegen/engine/core"
	"github.com/baselinegen/baselinegen/engine/rule"
	"github.com/baselinegen/baselinegen/engine/schema"
)

func officeRule(id core.ID, actions ...rule.Action) *rule.Rule {
	return &rule.Rule{
		ID:          id,
		Name:        "Rule " + id.String(),
		Description: "test rule",
		Category:    "test",
		Conditions:  &rule.FieldCondition{Field: "building_type", Operator: rule.OpEquals, Value: "office"},
		Actions:     actions,
	}
}

func TestEngine_GenerateBaseline(t *testing.T) {
	t.Run("Should apply every matching rule in schema order", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("l001", rule.SetValue("lighting_power_density", 1.0)),
			officeRule("h001", rule.SetValue("cooling_cop", 3.5)),
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})

		assert.Equal(t, []core.ID{"l001", "h001"}, result.MatchedRules)
		assert.Equal(t, 1.0, result.BaselineProperties["lighting_power_density"])
		assert.Equal(t, 3.5, result.BaselineProperties["cooling_cop"])
	})

	t.Run("Should let the later rule win on a shared target", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("first", rule.SetValue("lighting_power_density", 1.0)),
			officeRule("second", rule.SetValue("lighting_power_density", 0.9)),
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})

		assert.Equal(t, []core.ID{"first", "second"}, result.MatchedRules)
		assert.Equal(t, 0.9, result.BaselineProperties["lighting_power_density"])
	})

	t.Run("Should let the later action win within one rule", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("r1",
				rule.SetValue("lighting_power_density", 1.0),
				rule.SetValue("lighting_power_density", 1.2),
			),
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})

		assert.Equal(t, 1.2, result.BaselineProperties["lighting_power_density"])
	})

	t.Run("Should exclude rules whose conditions do not match", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("o001", rule.SetValue("lighting_power_density", 1.0)),
			{
				ID:         "big_001",
				Name:       "Large buildings",
				Category:   "test",
				Conditions: &rule.FieldCondition{Field: "building_area", Operator: rule.OpGreaterThan, Value: 50000.0},
				Actions:    []rule.Action{rule.SetValue("cooling_cop", 5.0)},
			},
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{
			"building_type": "office",
			"building_area": 15000,
		})

		assert.Equal(t, []core.ID{"o001"}, result.MatchedRules)
		assert.NotContains(t, result.BaselineProperties, "cooling_cop")
	})

	t.Run("Should record apply_method values like set_value writes", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("m001", rule.ApplyMethod("space-by-space")),
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})

		assert.Equal(t, "space-by-space", result.BaselineProperties["method"])
	})

	t.Run("Should return empty results for an empty spec", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("o001", rule.SetValue("lighting_power_density", 1.0)),
		})
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{})

		assert.Empty(t, result.MatchedRules)
		assert.Empty(t, result.BaselineProperties)
	})

	t.Run("Should generate from a JSON-loaded schema", func(t *testing.T) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(`{
			"version": "1.0",
			"rules": [
				{
					"id": "test_001",
					"name": "Test Rule",
					"description": "A test rule",
					"category": "test",
					"conditions": {"field": "building_type", "operator": "equals", "value": "office"},
					"actions": [{"action_type": "set_value", "target": "test_property", "value": 100}]
				}
			]
		}`), &doc))
		s, err := schema.FromMap(doc)
		require.NoError(t, err)
		engine := NewEngine(s)

		result := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})

		assert.Equal(t, []core.ID{"test_001"}, result.MatchedRules)
		assert.Equal(t, float64(100), result.BaselineProperties["test_property"])
	})

	t.Run("Should not carry state between calls", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("o001", rule.SetValue("lighting_power_density", 1.0)),
		})
		engine := NewEngine(s)

		first := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "office"})
		second := engine.GenerateBaseline(context.Background(), map[string]any{"building_type": "retail"})

		assert.Len(t, first.MatchedRules, 1)
		assert.Empty(t, second.MatchedRules)
		assert.Empty(t, second.BaselineProperties)
	})
}

func TestEngine_ValidateBuildingSpec(t *testing.T) {
	requiredFieldSchema := schema.New("1.0", []*rule.Rule{
		{
			ID:         "v001",
			Name:       "Validation Rule",
			Category:   "test",
			Conditions: &rule.FieldCondition{Field: "required_field", Operator: rule.OpEquals, Value: "value"},
			Actions:    []rule.Action{rule.SetValue("result", "ok")},
		},
	})

	t.Run("Should pass a complete spec with no warnings", func(t *testing.T) {
		engine := NewEngine(requiredFieldSchema)

		v := engine.ValidateBuildingSpec(context.Background(), map[string]any{"required_field": "value"})

		assert.True(t, v.Valid)
		assert.Empty(t, v.Warnings)
	})

	t.Run("Should warn on missing fields but stay valid", func(t *testing.T) {
		engine := NewEngine(requiredFieldSchema)

		v := engine.ValidateBuildingSpec(context.Background(), map[string]any{})

		assert.True(t, v.Valid)
		require.Len(t, v.Warnings, 1)
		assert.Contains(t, v.Warnings[0], "required_field")
	})

	t.Run("Should warn once per distinct field across rules", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			officeRule("a", rule.SetValue("x", 1)),
			officeRule("b", rule.SetValue("y", 2)),
		})
		engine := NewEngine(s)

		v := engine.ValidateBuildingSpec(context.Background(), map[string]any{})

		assert.Equal(t, []string{"missing field: building_type"}, v.Warnings)
	})

	t.Run("Should collect fields from compound condition trees", func(t *testing.T) {
		s := schema.New("1.0", []*rule.Rule{
			{
				ID:   "c001",
				Name: "Compound",
				Conditions: rule.And(
					&rule.FieldCondition{Field: "building_type", Operator: rule.OpEquals, Value: "office"},
					&rule.FieldCondition{Field: "building_area", Operator: rule.OpLessThan, Value: 25000.0},
				),
				Actions: []rule.Action{rule.SetValue("lighting_power_density", 1.0)},
			},
		})
		engine := NewEngine(s)

		v := engine.ValidateBuildingSpec(context.Background(), map[string]any{"building_type": "office"})

		assert.True(t, v.Valid)
		assert.Equal(t, []string{"missing field: building_area"}, v.Warnings)
	})

	t.Run("Should mark a nil spec invalid", func(t *testing.T) {
		engine := NewEngine(requiredFieldSchema)

		v := engine.ValidateBuildingSpec(context.Background(), nil)

		assert.False(t, v.Valid)
		assert.NotEmpty(t, v.Warnings)
	})
}
