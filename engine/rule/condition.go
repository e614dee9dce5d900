package rule

import (
	"reflect"

	"github.com/baselinegen/baselinegen/engine/core"
)

// -----------------------------------------------------------------------------
// Operators
// -----------------------------------------------------------------------------

// ComparisonOperator is the predicate applied by a leaf condition.
type ComparisonOperator string

const (
	OpEquals       ComparisonOperator = "equals"
	OpGreaterThan  ComparisonOperator = "greater_than"
	OpLessThan     ComparisonOperator = "less_than"
	OpGreaterEqual ComparisonOperator = "greater_equal"
	OpLessEqual    ComparisonOperator = "less_equal"
)

func (o ComparisonOperator) String() string {
	return string(o)
}

// IsValid reports whether o is a recognized comparison operator.
func (o ComparisonOperator) IsValid() bool {
	switch o {
	case OpEquals, OpGreaterThan, OpLessThan, OpGreaterEqual, OpLessEqual:
		return true
	default:
		return false
	}
}

// LogicalOperator combines child conditions in a compound node.
type LogicalOperator string

const (
	LogicalAnd LogicalOperator = "and"
	LogicalOr  LogicalOperator = "or"
)

func (o LogicalOperator) String() string {
	return string(o)
}

func (o LogicalOperator) IsValid() bool {
	return o == LogicalAnd || o == LogicalOr
}

// -----------------------------------------------------------------------------
// Condition
// -----------------------------------------------------------------------------

// Condition is a node in a rule's predicate tree. The two implementations,
// FieldCondition and CompoundCondition, form a closed set.
type Condition interface {
	// Evaluate reports whether the building spec satisfies this node.
	// Missing fields and incomparable values evaluate to false, never to an
	// error.
	Evaluate(spec map[string]any) bool
	// Fields returns every field name referenced under this node, in
	// reference order. Duplicates are preserved.
	Fields() []string
	// AsMap returns the serialized form of this node.
	AsMap() map[string]any
}

// FieldCondition compares one building-spec field against a value.
type FieldCondition struct {
	Field    string
	Operator ComparisonOperator
	Value    any
}

// CompoundCondition combines child conditions with a logical operator.
type CompoundCondition struct {
	Operator   LogicalOperator
	Conditions []Condition
}

// And builds an AND compound over the given children.
func And(children ...Condition) *CompoundCondition {
	return &CompoundCondition{Operator: LogicalAnd, Conditions: children}
}

// Or builds an OR compound over the given children.
func Or(children ...Condition) *CompoundCondition {
	return &CompoundCondition{Operator: LogicalOr, Conditions: children}
}

func (c *FieldCondition) Evaluate(spec map[string]any) bool {
	actual, ok := spec[c.Field]
	if !ok {
		return false
	}
	switch c.Operator {
	case OpEquals:
		return looseEqual(actual, c.Value)
	case OpGreaterThan:
		a, b, ok := bothNumeric(actual, c.Value)
		return ok && a > b
	case OpLessThan:
		a, b, ok := bothNumeric(actual, c.Value)
		return ok && a < b
	case OpGreaterEqual:
		a, b, ok := bothNumeric(actual, c.Value)
		return ok && a >= b
	case OpLessEqual:
		a, b, ok := bothNumeric(actual, c.Value)
		return ok && a <= b
	default:
		return false
	}
}

func (c *FieldCondition) Fields() []string {
	return []string{c.Field}
}

func (c *FieldCondition) AsMap() map[string]any {
	return map[string]any{
		"field":    c.Field,
		"operator": c.Operator.String(),
		"value":    c.Value,
	}
}

func (c *CompoundCondition) Evaluate(spec map[string]any) bool {
	switch c.Operator {
	case LogicalAnd:
		for _, child := range c.Conditions {
			if !child.Evaluate(spec) {
				return false
			}
		}
		return true
	case LogicalOr:
		for _, child := range c.Conditions {
			if child.Evaluate(spec) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (c *CompoundCondition) Fields() []string {
	var fields []string
	for _, child := range c.Conditions {
		fields = append(fields, child.Fields()...)
	}
	return fields
}

func (c *CompoundCondition) AsMap() map[string]any {
	children := make([]any, len(c.Conditions))
	for i, child := range c.Conditions {
		children[i] = child.AsMap()
	}
	return map[string]any{
		"operator":   c.Operator.String(),
		"conditions": children,
	}
}

// looseEqual compares two values, treating numerically equivalent forms
// (25000, 25000.0, "25000") as equal. Strings compare case-sensitively.
func looseEqual(a, b any) bool {
	if af, aok := core.ParseAnyFloat(a); aok {
		bf, bok := core.ParseAnyFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func bothNumeric(a, b any) (float64, float64, bool) {
	af, aok := core.ParseAnyFloat(a)
	bf, bok := core.ParseAnyFloat(b)
	return af, bf, aok && bok
}
