// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so logging and monitoring
//              can prioritize failures appropriately. Severity is derived
//              from the error code when not set explicitly.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: recoverable input problems, missing optional settings
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a parse that failed on malformed input, invalid configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: rule identity conflicts corrupting the memo table, internal faults
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	// Examples: unrecoverable internal state corruption
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeRuleConflict:
		return SeverityHigh

	case CodeSyntax, CodeUnexpectedToken, CodeEndOfInput, CodeLexical,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed:
		return SeverityMedium

	case CodeInvalidInput, CodeRequiredField, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
