// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for the packrat library.
//              Codes categorize failures so callers and log pipelines can
//              react to parse, configuration, and validation problems
//              without string matching on messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

// General error codes
const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
)

// Parse error codes
const (
	CodeSyntax          Code = "SYNTAX"
	CodeUnexpectedToken Code = "UNEXPECTED_TOKEN"
	CodeEndOfInput      Code = "END_OF_INPUT"
	CodeLexical         Code = "LEXICAL"
	CodeRuleConflict    Code = "RULE_CONFLICT"
)

// Configuration error codes
const (
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Validation error codes
const (
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsParseCode returns true if the code belongs to the parse error family
func (c Code) IsParseCode() bool {
	switch c {
	case CodeSyntax, CodeUnexpectedToken, CodeEndOfInput, CodeLexical, CodeRuleConflict:
		return true
	default:
		return false
	}
}

// IsConfigCode returns true if the code belongs to the configuration error family
func (c Code) IsConfigCode() bool {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// IsValid returns true if the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSyntax, CodeUnexpectedToken, CodeEndOfInput, CodeLexical, CodeRuleConflict,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return true
	default:
		return false
	}
}
