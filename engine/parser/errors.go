package parser

import (
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidFormat    = "INVALID_FORMAT"
	ErrCodeInvalidCondition = "INVALID_CONDITION"
	ErrCodeInvalidAction    = "INVALID_ACTION"
	ErrCodeEmptyValue       = "EMPTY_VALUE"
	ErrCodeEmptyField       = "EMPTY_FIELD"
)

// ParseError represents a sentence that does not match the recognized rule
// grammar. It always carries the offending text.
type ParseError struct {
	Message string
	Code    string
	Text    string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a new ParseError with the given code, offending text,
// and message.
func NewParseError(code, text, message string) *ParseError {
	return &ParseError{Code: code, Text: text, Message: message}
}

// NewParseErrorf creates a new ParseError with the given code, offending
// text, and formatted message.
func NewParseErrorf(code, text, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Text: text, Message: fmt.Sprintf(format, args...)}
}

// Common error constructors
func NewInvalidFormatError(text string) *ParseError {
	return NewParseErrorf(ErrCodeInvalidFormat, text,
		"rule text %q does not match the expected \"If ... then ...\" form", text)
}

func NewInvalidConditionError(clause string) *ParseError {
	return NewParseErrorf(ErrCodeInvalidCondition, clause,
		"unrecognized condition clause %q", clause)
}

func NewInvalidActionError(clause string) *ParseError {
	return NewParseErrorf(ErrCodeInvalidAction, clause,
		"unrecognized action clause %q", clause)
}

func NewEmptyValueError(clause string) *ParseError {
	return NewParseErrorf(ErrCodeEmptyValue, clause,
		"clause %q has no value", clause)
}

func NewEmptyFieldError(clause string) *ParseError {
	return NewParseErrorf(ErrCodeEmptyField, clause,
		"clause %q has no field name", clause)
}
