package parser

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"github.com/baselinegen/baselinegen/engine/core"
)

// unitRe matches trailing unit tokens such as "sqft", "W/sqft", or "kWh".
var unitRe = regexp.MustCompile(`^[A-Za-z][A-Za-z/]*$`)

// normalizeIdent slugs a multi-word phrase ("lighting power density") into
// its canonical underscore identifier ("lighting_power_density").
func normalizeIdent(raw, clause string) (string, error) {
	ident := strings.ReplaceAll(slug.Make(raw), "-", "_")
	if ident == "" {
		return "", NewEmptyFieldError(clause)
	}
	return ident, nil
}

// parseValue parses the value portion of a clause. A leading numeric literal
// followed only by unit-looking tokens becomes a number with the unit
// discarded; everything else is kept as the literal string.
func parseValue(raw, clause string) (any, error) {
	raw = strings.TrimSpace(raw)
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, NewEmptyValueError(clause)
	}
	num, ok := core.ParseAnyFloat(tokens[0])
	if !ok {
		return raw, nil
	}
	for _, tok := range tokens[1:] {
		if !unitRe.MatchString(tok) {
			return raw, nil
		}
	}
	return num, nil
}
