// Package similarity scores how alike two strings are on a 0-100 scale.
// The scorers are the last line of the resolution cascade: they only see
// text that exact and keyword matching already failed on.
package similarity

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	edlib "github.com/hbollon/go-edlib"

	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
)

// ScoreFunc computes a similarity score between two strings.
// 100 means identical, 0 means nothing in common.
type ScoreFunc func(a, b string) float64

// Ratio scores the full strings by Levenshtein edit distance over runes:
// 100 * (1 - distance/maxLength).
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(score) * 100
}

// TokenSortRatio scores the strings after splitting them into word tokens
// and sorting the tokens, so word order does not matter.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

// TokenSetRatio scores the strings as bags of word tokens by cosine
// similarity, so shared words count even when one side carries extras.
func TokenSetRatio(a, b string) float64 {
	ta := strings.Join(tokenize(a), " ")
	tb := strings.Join(tokenize(b), " ")
	if ta == "" || tb == "" {
		return 0
	}
	if ta == tb {
		return 100
	}
	return float64(edlib.CosineSimilarity(ta, tb, 0)) * 100
}

// WeightedRatio is the default scorer: the best of the full-string,
// token-sorted and token-set scores. Reordered words and partial token
// overlap both survive, while plain typos still score through Ratio.
func WeightedRatio(a, b string) float64 {
	best := Ratio(a, b)
	if s := TokenSortRatio(a, b); s > best {
		best = s
	}
	if s := TokenSetRatio(a, b); s > best {
		best = s
	}
	return best
}

// ByName returns the scorer registered under name. Known names are
// "ratio", "token_sort", "token_set" and "weighted".
func ByName(name string) (ScoreFunc, error) {
	switch name {
	case "ratio":
		return Ratio, nil
	case "token_sort":
		return TokenSortRatio, nil
	case "token_set":
		return TokenSetRatio, nil
	case "weighted", "":
		return WeightedRatio, nil
	}
	return nil, fmt.Errorf("%w: unknown scorer %q", internalerr.ErrInvalidConfig, name)
}

// tokenize splits s into maximal runs of letters and digits, dropping
// punctuation so "shrimp, frozen" and "frozen shrimp" share tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func sortedTokens(s string) string {
	tokens := tokenize(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
