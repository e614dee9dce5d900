package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/baselinegen/baselinegen/engine/core"
	"github.com/baselinegen/baselinegen/engine/rule"
)

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

// Schema is a versioned, ordered collection of rules. Rule order is
// evaluation order and is preserved through serialization.
type Schema struct {
	Version string
	Rules   []*rule.Rule
}

func New(version string, rules []*rule.Rule) *Schema {
	return &Schema{Version: version, Rules: rules}
}

// FieldNames returns the distinct field names referenced by any rule's
// condition tree, in first-reference order across rules.
func (s *Schema) FieldNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range s.Rules {
		for _, f := range r.Fields() {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			names = append(names, f)
		}
	}
	return names
}

// AsMap returns the persisted mapping form of the schema. The result is
// JSON-compatible and round-trips through FromMap.
func (s *Schema) AsMap() map[string]any {
	rules := make([]any, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.AsMap()
	}
	return map[string]any{
		"version": s.Version,
		"rules":   rules,
	}
}

// -----------------------------------------------------------------------------
// Decoding
// -----------------------------------------------------------------------------

var validate = validator.New()

type ruleDoc struct {
	ID          string        `mapstructure:"id"`
	Name        string        `mapstructure:"name"`
	Description string        `mapstructure:"description"`
	Category    string        `mapstructure:"category"`
	Actions     []rule.Action `mapstructure:"actions"`
}

// FromMap reconstructs a schema from its persisted mapping form. Malformed
// mappings fail with a DecodeError; no partially constructed schema is ever
// returned. Rule-id uniqueness is not checked here.
func FromMap(m map[string]any) (*Schema, error) {
	if m == nil {
		return nil, NewDecodeError(ErrCodeInvalidType, "schema document must be a mapping")
	}
	rawVersion, ok := m["version"]
	if !ok {
		return nil, NewMissingKeyError("version", "schema document")
	}
	version, ok := rawVersion.(string)
	if !ok {
		return nil, NewInvalidTypeError("version", "schema document", "a string")
	}
	rawRules, ok := m["rules"]
	if !ok {
		return nil, NewMissingKeyError("rules", "schema document")
	}
	list, ok := rawRules.([]any)
	if !ok {
		return nil, NewInvalidTypeError("rules", "schema document", "a list")
	}
	rules := make([]*rule.Rule, 0, len(list))
	for i, raw := range list {
		rm := core.AsAnyMap(raw)
		if rm == nil {
			return nil, NewInvalidTypeError(fmt.Sprintf("rules[%d]", i), "schema document", "a mapping")
		}
		r, err := ruleFromMap(rm)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return &Schema{Version: version, Rules: rules}, nil
}

func ruleFromMap(m map[string]any) (*rule.Rule, error) {
	where := "rule"
	if id, ok := m["id"].(string); ok && id != "" {
		where = fmt.Sprintf("rule %q", id)
	}
	for _, key := range []string{"id", "name", "conditions", "actions"} {
		if _, ok := m[key]; !ok {
			return nil, NewMissingKeyError(key, where)
		}
	}
	var doc ruleDoc
	if err := mapstructure.Decode(m, &doc); err != nil {
		return nil, NewInvalidRuleError(where, err)
	}
	cond, err := ConditionFromMap(core.AsAnyMap(m["conditions"]))
	if err != nil {
		return nil, err
	}
	r := &rule.Rule{
		ID:          core.ID(doc.ID),
		Name:        doc.Name,
		Description: doc.Description,
		Category:    doc.Category,
		Conditions:  cond,
		Actions:     doc.Actions,
	}
	if err := validate.Struct(r); err != nil {
		return nil, NewInvalidRuleError(doc.ID, err)
	}
	return r, nil
}

// ConditionFromMap reconstructs a condition node, dispatching on the operator
// discriminator: "and"/"or" rebuild a compound node, comparison operators
// rebuild a leaf.
func ConditionFromMap(m map[string]any) (rule.Condition, error) {
	if m == nil {
		return nil, NewDecodeError(ErrCodeInvalidCondition, "condition must be a mapping")
	}
	rawOp, ok := m["operator"]
	if !ok {
		return nil, NewMissingKeyError("operator", "condition")
	}
	opStr, ok := rawOp.(string)
	if !ok {
		return nil, NewInvalidTypeError("operator", "condition", "a string")
	}
	op := strings.ToLower(opStr)
	switch {
	case rule.LogicalOperator(op).IsValid():
		rawChildren, ok := m["conditions"]
		if !ok {
			return nil, NewMissingKeyError("conditions", "compound condition")
		}
		list, ok := rawChildren.([]any)
		if !ok {
			return nil, NewInvalidTypeError("conditions", "compound condition", "a list")
		}
		children := make([]rule.Condition, 0, len(list))
		for _, raw := range list {
			child, err := ConditionFromMap(core.AsAnyMap(raw))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &rule.CompoundCondition{Operator: rule.LogicalOperator(op), Conditions: children}, nil
	case rule.ComparisonOperator(op).IsValid():
		field, ok := m["field"].(string)
		if !ok {
			return nil, NewMissingKeyError("field", "condition")
		}
		value, ok := m["value"]
		if !ok {
			return nil, NewMissingKeyError("value", "condition")
		}
		return &rule.FieldCondition{Field: field, Operator: rule.ComparisonOperator(op), Value: value}, nil
	default:
		return nil, NewInvalidOperatorError(opStr)
	}
}
