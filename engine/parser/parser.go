// Package parser converts human-authored compliance sentences such as
//
//	If building type is office and building area is less than 25000 sqft
//	then set lighting power density to 1.0 W/sqft
//
// into structured rules. The grammar is a fixed, closed set of phrasings;
// anything outside it fails with a ParseError rather than producing a
// partial rule.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/baselinegen/baselinegen/engine/core"
	"github.com/baselinegen/baselinegen/engine/rule"
)

var (
	sentenceRe = regexp.MustCompile(`(?i)^\s*if\s+(.+?)\s+then\s+(.+?)\s*$`)
	andSplitRe = regexp.MustCompile(`(?i)\s+and\s+`)

	greaterThanRe = regexp.MustCompile(`(?i)^(.+?)\s+is\s+greater\s+than\s+(.+)$`)
	lessThanRe    = regexp.MustCompile(`(?i)^(.+?)\s+is\s+less\s+than\s+(.+)$`)
	equalsRe      = regexp.MustCompile(`(?i)^(.+?)\s+is\s+(.+)$`)

	setActionRe   = regexp.MustCompile(`(?i)^set\s+(.+?)\s+to\s+(.+)$`)
	applyMethodRe = regexp.MustCompile(`(?i)^apply\s+method\s+(.+)$`)
)

// DefaultCategory is assigned when the caller supplies none.
const DefaultCategory = "general"

// Parser translates rule sentences into rule.Rule values. It holds no state
// between calls; every sentence is parsed in isolation.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// ParseRuleText parses one sentence into a rule with the given id.
func (p *Parser) ParseRuleText(text string, ruleID core.ID) (*rule.Rule, error) {
	return p.parseSentence(text, ruleID, DefaultCategory)
}

// ParseRulesFromText parses multi-line input, one sentence per non-blank
// line. Lines starting with "#" are skipped. Rules receive sequential ids
// derived from the category.
func (p *Parser) ParseRulesFromText(text, category string) ([]*rule.Rule, error) {
	if category == "" {
		category = DefaultCategory
	}
	var rules []*rule.Rule
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id := core.ID(fmt.Sprintf("%s_%03d", category, len(rules)+1))
		r, err := p.parseSentence(line, id, category)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (p *Parser) parseSentence(text string, ruleID core.ID, category string) (*rule.Rule, error) {
	if ruleID.IsZero() {
		ruleID = core.MustNewID()
	}
	m := sentenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil, NewInvalidFormatError(strings.TrimSpace(text))
	}
	cond, err := parseConditions(m[1])
	if err != nil {
		return nil, err
	}
	actions, err := parseActions(m[2])
	if err != nil {
		return nil, err
	}
	return &rule.Rule{
		ID:          ruleID,
		Name:        fmt.Sprintf("Rule %s", ruleID),
		Description: strings.TrimSpace(text),
		Category:    category,
		Conditions:  cond,
		Actions:     actions,
	}, nil
}

// parseConditions parses the condition list between "If" and "then". Multiple
// clauses joined by "and" become a single AND compound.
func parseConditions(text string) (rule.Condition, error) {
	clauses := andSplitRe.Split(strings.TrimSpace(text), -1)
	conditions := make([]rule.Condition, 0, len(clauses))
	for _, clause := range clauses {
		cond, err := parseConditionClause(clause)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return rule.And(conditions...), nil
}

// parseConditionClause parses one clause. Ordering matters: "is greater
// than" and "is less than" must be tried before the bare "is" form, which
// would otherwise swallow them.
func parseConditionClause(clause string) (rule.Condition, error) {
	clause = strings.TrimSpace(clause)
	type pattern struct {
		re *regexp.Regexp
		op rule.ComparisonOperator
	}
	for _, p := range []pattern{
		{greaterThanRe, rule.OpGreaterThan},
		{lessThanRe, rule.OpLessThan},
		{equalsRe, rule.OpEquals},
	} {
		m := p.re.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		field, err := normalizeIdent(m[1], clause)
		if err != nil {
			return nil, err
		}
		value, err := parseValue(m[2], clause)
		if err != nil {
			return nil, err
		}
		return &rule.FieldCondition{Field: field, Operator: p.op, Value: value}, nil
	}
	return nil, NewInvalidConditionError(clause)
}

// parseActions parses the action list after "then". Multiple clauses joined
// by "and" produce one action each, in written order.
func parseActions(text string) ([]rule.Action, error) {
	clauses := andSplitRe.Split(strings.TrimSpace(text), -1)
	actions := make([]rule.Action, 0, len(clauses))
	for _, clause := range clauses {
		action, err := parseActionClause(clause)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func parseActionClause(clause string) (rule.Action, error) {
	clause = strings.TrimSpace(clause)
	if m := applyMethodRe.FindStringSubmatch(clause); m != nil {
		value, err := parseValue(m[1], clause)
		if err != nil {
			return rule.Action{}, err
		}
		return rule.ApplyMethod(value), nil
	}
	if m := setActionRe.FindStringSubmatch(clause); m != nil {
		target, err := normalizeIdent(m[1], clause)
		if err != nil {
			return rule.Action{}, err
		}
		value, err := parseValue(m[2], clause)
		if err != nil {
			return rule.Action{}, err
		}
		return rule.SetValue(target, value), nil
	}
	return rule.Action{}, NewInvalidActionError(clause)
}
