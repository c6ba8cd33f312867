// Package sql provides utilities for working with SQL types and database operations.
package sql

import (
	"strings"
)

// StringValue unwraps a nullable text column. A NULL scan becomes the empty
// string.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// IntValue unwraps a nullable integer column. A NULL scan becomes zero.
func IntValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

// NormalizeTag lowercases and trims a tag the way the partition tables
// store them. The boolean is false when nothing usable remains.
func NormalizeTag(tag string) (string, bool) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", false
	}
	return strings.ToLower(trimmed), true
}

// ClampText truncates a string to the specified maximum byte length.
// If the string is shorter than maxBytes, it returns the original string unchanged.
func ClampText(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	return s[:maxBytes]
}
