// Package baseline matches building specifications against a rule schema and
// produces the baseline property profile the schema assigns to the building.
package baseline

import (
	"context"
	"fmt"

	"github.com/baselinegen/baselinegen/engine/core"
	"github.com/baselinegen/baselinegen/engine/schema"
	"github.com/baselinegen/baselinegen/pkg/logger"
)

// Result is the outcome of one baseline generation: the ids of the rules
// that matched, in schema order, and the property values their actions wrote.
type Result struct {
	MatchedRules       []core.ID      `json:"matched_rules"`
	BaselineProperties map[string]any `json:"baseline_properties"`
}

// Validation is the advisory outcome of checking a building spec against the
// fields the schema references. An incomplete spec is valid with warnings;
// only a structurally unusable spec is invalid.
type Validation struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
}

// Engine evaluates building specs against one schema. It never mutates the
// schema, so a single engine is safe for concurrent use; every call builds
// its own local result.
type Engine struct {
	schema *schema.Schema
}

func NewEngine(s *schema.Schema) *Engine {
	return &Engine{schema: s}
}

// GenerateBaseline evaluates every rule in schema order against the building
// spec. Matching rules apply their actions in the rule's action order;
// later writes to the same target win, with schema order as the tie-break.
func (e *Engine) GenerateBaseline(ctx context.Context, spec map[string]any) Result {
	log := logger.FromContext(ctx)
	result := Result{
		MatchedRules:       []core.ID{},
		BaselineProperties: map[string]any{},
	}
	for _, r := range e.schema.Rules {
		if !r.Matches(spec) {
			continue
		}
		result.MatchedRules = append(result.MatchedRules, r.ID)
		for _, a := range r.Actions {
			result.BaselineProperties[a.Target] = a.Value
		}
		log.Debug("rule matched", "rule", r.ID, "category", r.Category)
	}
	log.Info("baseline generated",
		"version", e.schema.Version,
		"matched", len(result.MatchedRules),
		"properties", len(result.BaselineProperties))
	return result
}

// ValidateBuildingSpec reports, as warnings, every field the schema's
// conditions reference that the spec does not supply. A nil spec is the
// structural failure case and is the only way Valid becomes false.
func (e *Engine) ValidateBuildingSpec(ctx context.Context, spec map[string]any) Validation {
	log := logger.FromContext(ctx)
	validation := Validation{Valid: true, Warnings: []string{}}
	if spec == nil {
		validation.Valid = false
		validation.Warnings = append(validation.Warnings, "building spec is not a mapping")
		return validation
	}
	for _, field := range e.schema.FieldNames() {
		if _, ok := spec[field]; !ok {
			validation.Warnings = append(validation.Warnings, fmt.Sprintf("missing field: %s", field))
		}
	}
	if len(validation.Warnings) > 0 {
		log.Debug("building spec incomplete", "warnings", len(validation.Warnings))
	}
	return validation
}
