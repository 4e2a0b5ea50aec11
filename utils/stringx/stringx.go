// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library. Focuses on Unicode safety and the display needs
//              of credential tooling, including secret masking.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the default value if the string is blank,
// otherwise the string itself.
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Truncate truncates a string to the specified length, adding an ellipsis
// if truncated. The function is Unicode-aware and will not break
// multi-byte characters. If the string is shorter than maxLen, it returns
// the original string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	keep := maxLen - ellipsisLen
	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

// Mask replaces all but the first visible characters of a secret with
// asterisks. Secrets shorter than four runes are fully masked so that
// very short passwords leak nothing. An empty input yields an empty
// result.
func Mask(s string, visible int) string {
	if s == "" {
		return ""
	}
	if visible < 0 {
		visible = 0
	}

	runes := []rune(s)
	if len(runes) < 4 || visible >= len(runes) {
		return strings.Repeat("*", len(runes))
	}

	return string(runes[:visible]) + strings.Repeat("*", len(runes)-visible)
}

// MaskFull replaces the entire secret with a fixed-width mask so that
// the output does not reveal the secret's length.
func MaskFull(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
