package rule

import (
	"github.com/baselinegen/baselinegen/engine/core"
)

// Rule is one compliance statement: a condition tree plus the ordered actions
// applied when it matches. Rules are treated as immutable after construction
// and are identified by ID for the lifetime of a schema.
type Rule struct {
	ID          core.ID   `validate:"required"`
	Name        string    `validate:"required"`
	Description string
	Category    string
	Conditions  Condition `validate:"required"`
	Actions     []Action  `validate:"min=1,dive"`
}

// Matches reports whether the rule's condition tree is satisfied by the
// building spec.
func (r *Rule) Matches(spec map[string]any) bool {
	if r.Conditions == nil {
		return false
	}
	return r.Conditions.Evaluate(spec)
}

// Fields returns the field names referenced by the rule's condition tree, in
// reference order.
func (r *Rule) Fields() []string {
	if r.Conditions == nil {
		return nil
	}
	return r.Conditions.Fields()
}

func (r *Rule) AsMap() map[string]any {
	actions := make([]any, len(r.Actions))
	for i, a := range r.Actions {
		actions[i] = a.AsMap()
	}
	var conditions any
	if r.Conditions != nil {
		conditions = r.Conditions.AsMap()
	}
	return map[string]any{
		"id":          r.ID.String(),
		"name":        r.Name,
		"description": r.Description,
		"category":    r.Category,
		"conditions":  conditions,
		"actions":     actions,
	}
}
