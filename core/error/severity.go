// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for netrc toolkit errors and the
//              default mapping from error codes to severities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: credential lookup miss, missing optional config values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: malformed netrc entries, invalid configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable netrc file, unusable configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the toolkit unusable
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

// GetSeverityFromCode determines the appropriate severity level for an
// error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeIOFailure, CodeInternal:
		return SeverityHigh
	case CodeParseSyntax, CodeConfigError, CodeInvalidConfig, CodeInvalidFormat:
		return SeverityMedium
	case CodeNotFound, CodeFileMissing, CodeNoCredentials, CodeMissingConfig,
		CodeInvalidInput, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
