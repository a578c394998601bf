package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
)

// keywordStage matches by containment. Per column, in order: a forward
// pass looking for a reference value inside the query, then a reverse
// pass looking for the query inside a reference value. The first hit
// wins; later columns are only reached when both passes come up empty.
//
// Reference values shorter than two runes only count in the forward pass
// when they appear as a delimited token. Without the guard a one-letter
// abbreviation would fire inside arbitrary words.
type keywordStage struct{}

func (keywordStage) attempt(q string, t table) (int, bool) {
	for _, col := range t.cols {
		for i, v := range col.values {
			if v == "" {
				continue
			}
			if normalize.Length(v) < 2 {
				if containsToken(q, v) {
					return i, true
				}
				continue
			}
			if strings.Contains(q, v) {
				return i, true
			}
		}
		for i, v := range col.values {
			if v != "" && strings.Contains(v, q) {
				return i, true
			}
		}
	}
	return -1, false
}

// containsToken reports whether tok occurs in s delimited by non-word
// runes or the string edges.
func containsToken(s, tok string) bool {
	for start := 0; start <= len(s)-len(tok); {
		idx := strings.Index(s[start:], tok)
		if idx < 0 {
			return false
		}
		abs := start + idx
		if boundaryBefore(s, abs) && boundaryAfter(s, abs+len(tok)) {
			return true
		}
		start = abs + len(tok)
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
