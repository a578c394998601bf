// Package normalize defines the canonical text form shared by every
// matching stage. Query text and reference values must pass through the
// same normalization or containment and equality checks drift apart.
package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Text returns the canonical form of s: surrounding whitespace trimmed,
// Unicode composed to NFC, and letters lowercased. Absent input (empty or
// whitespace-only) canonicalizes to the empty string, which every matcher
// treats as "no value".
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return strings.ToLower(s)
}

// IsEmpty reports whether a canonicalized string carries no value.
func IsEmpty(s string) bool {
	return s == ""
}

// Length counts runes, not bytes. Hangul and other multibyte text would
// otherwise inflate length-based comparisons.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
