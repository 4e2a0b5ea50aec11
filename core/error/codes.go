// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for the netrc toolkit.
//              Codes classify the small set of failure modes the toolkit
//              can hit: file access, parse syntax, credential lookup,
//              and configuration problems.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the netrc toolkit
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// File access
	CodeIOFailure   Code = "IO_FAILURE"
	CodeFileMissing Code = "FILE_MISSING"

	// Parsing
	CodeParseSyntax Code = "PARSE_SYNTAX"

	// Credential lookup
	CodeNoCredentials Code = "NO_CREDENTIALS"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeIOFailure, CodeFileMissing,
		CodeParseSyntax, CodeNoCredentials,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIOFailure, CodeFileMissing:
		return "io"
	case CodeParseSyntax:
		return "parsing"
	case CodeNoCredentials:
		return "lookup"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
