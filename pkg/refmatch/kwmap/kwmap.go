// Package kwmap applies curated keyword rules ahead of cascade matching.
// A rule is a hard override: when its keyword occurs in the text, the
// rule's classification is taken as-is, no scoring involved. Rules exist
// for the cases fuzzy matching keeps getting wrong.
package kwmap

import (
	"strings"

	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
)

// SourceAll marks a rule that applies to every feed.
const SourceAll = "ALL"

// Rule maps a literal keyword to a hazard classification.
type Rule struct {
	Keyword     string `json:"keyword" yaml:"keyword"`
	HazardItem  string `json:"hazard_item" yaml:"hazard_item"`
	MidCategory string `json:"mid_category" yaml:"mid_category"`
	TopCategory string `json:"top_category" yaml:"top_category"`
	// Source scopes the rule to one feed; SourceAll or empty applies it
	// everywhere.
	Source string `json:"source" yaml:"source"`
}

// Match is the classification a rule assigns.
type Match struct {
	HazardItem  string
	MidCategory string
	TopCategory string
}

// Mapper holds the rule list. Rule order matters only between rules whose
// keywords are equally long; the longer keyword always wins because it is
// the more specific statement.
type Mapper struct {
	rules []Rule
}

// New builds a Mapper over rules. Rules with an empty keyword are
// dropped; they can never fire.
func New(rules []Rule) *Mapper {
	m := &Mapper{}
	for _, r := range rules {
		if normalize.IsEmpty(normalize.Text(r.Keyword)) {
			continue
		}
		m.rules = append(m.rules, r)
	}
	return m
}

// Len returns the number of usable rules.
func (m *Mapper) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// Map scans text for rule keywords and returns the classification of the
// longest keyword found, nil when no rule applies. source filters the
// rule list; an empty source consults every rule.
func (m *Mapper) Map(text, source string) *Match {
	if m == nil {
		return nil
	}
	q := normalize.Text(text)
	if normalize.IsEmpty(q) {
		return nil
	}

	var best *Rule
	bestLen := 0
	for i := range m.rules {
		r := &m.rules[i]
		if !r.applies(source) {
			continue
		}
		kw := normalize.Text(r.Keyword)
		if !strings.Contains(q, kw) {
			continue
		}
		if n := normalize.Length(kw); n > bestLen {
			best, bestLen = r, n
		}
	}
	if best == nil {
		return nil
	}
	return &Match{
		HazardItem:  best.HazardItem,
		MidCategory: best.MidCategory,
		TopCategory: best.TopCategory,
	}
}

func (r *Rule) applies(source string) bool {
	if source == "" || r.Source == "" || r.Source == SourceAll {
		return true
	}
	return strings.EqualFold(r.Source, source)
}
