package schema

import (
	"fmt"
)

// Error codes
const (
	ErrCodeMissingKey       = "MISSING_KEY"
	ErrCodeInvalidType      = "INVALID_TYPE"
	ErrCodeInvalidRule      = "INVALID_RULE"
	ErrCodeInvalidCondition = "INVALID_CONDITION"
	ErrCodeInvalidOperator  = "INVALID_OPERATOR"
)

// DecodeError represents errors that can occur while reconstructing a schema
// from its persisted mapping form.
type DecodeError struct {
	Message string
	Code    string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// NewDecodeError creates a new DecodeError with the given code and message.
func NewDecodeError(code, message string) *DecodeError {
	return &DecodeError{Code: code, Message: message}
}

// NewDecodeErrorf creates a new DecodeError with the given code and formatted
// message.
func NewDecodeErrorf(code, format string, args ...any) *DecodeError {
	return &DecodeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Common error constructors
func NewMissingKeyError(key, where string) *DecodeError {
	return NewDecodeErrorf(ErrCodeMissingKey, "missing required key %q in %s", key, where)
}

func NewInvalidTypeError(key, where, want string) *DecodeError {
	return NewDecodeErrorf(ErrCodeInvalidType, "key %q in %s must be %s", key, where, want)
}

func NewInvalidRuleError(id string, err error) *DecodeError {
	return NewDecodeErrorf(ErrCodeInvalidRule, "invalid rule %q: %s", id, err.Error())
}

func NewInvalidOperatorError(op string) *DecodeError {
	return NewDecodeErrorf(ErrCodeInvalidOperator, "unrecognized condition operator %q", op)
}
