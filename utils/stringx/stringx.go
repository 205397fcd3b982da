// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string operations the packrat
//              library needs beyond the Go standard library. Focuses on
//              Unicode safety and blank-string handling for input
//              validation and log truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty checks if a string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	if s == "" {
		return true
	}

	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// IsNotBlank checks if a string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to maxLen runes, appending the ellipsis when
// truncation occurred. The ellipsis counts toward maxLen.
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

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// SplitLines splits a string into lines, handling both LF and CRLF endings
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// FirstNonBlank returns the first string that is not blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
