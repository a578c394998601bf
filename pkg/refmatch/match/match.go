// Package match resolves noisy feed text against reference snapshots by
// running a cascade of strategies: exact equality first, then keyword
// containment, then similarity scoring. Cheap and precise stages run
// before tolerant ones, and the first stage to find a row wins.
//
// Hazard text longer than the configured threshold is treated as
// narrative. It takes a different ladder that scans for reference names
// embedded in the passage and never similarity-scores the whole text,
// which on a long passage rewards length instead of meaning.
package match

import (
	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// ProductMatch locates a product description in the product hierarchy.
// The zero value means nothing matched.
type ProductMatch struct {
	Top     string // top-level product type name
	Upper   string // immediate upper product type name
	Matched bool
}

// HazardMatch classifies a hazard mention. The zero value means nothing
// matched.
type HazardMatch struct {
	Category   string // mid-level hazard category name
	Analyzable bool
	Interest   bool
	Matched    bool
}

// Matcher runs the resolution cascade with a fixed configuration.
// It is stateless across queries and safe for concurrent use.
type Matcher struct {
	cfg Config
}

// New builds a Matcher. An optional Config tunes it; zero fields keep
// their defaults. Rejects cutoffs outside [0,100], negative thresholds
// and unknown or empty column lists.
func New(cfg ...Config) (*Matcher, error) {
	c := Config{}
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: c.withDefaults()}, nil
}

// With returns a copy of the matcher with overrides applied on top of
// its configuration. Zero fields keep the current values. Overrides are
// validated here so a bad one fails loudly instead of skewing queries.
func (m *Matcher) With(cfg Config) (*Matcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	merged := m.cfg
	if cfg.SimilarityCutoff != 0 {
		merged.SimilarityCutoff = cfg.SimilarityCutoff
	}
	if cfg.LongTextThreshold != 0 {
		merged.LongTextThreshold = cfg.LongTextThreshold
	}
	if cfg.ProductColumns != nil {
		merged.ProductColumns = cfg.ProductColumns
	}
	if cfg.HazardColumns != nil {
		merged.HazardColumns = cfg.HazardColumns
	}
	if cfg.Scorer != nil {
		merged.Scorer = cfg.Scorer
	}
	return &Matcher{cfg: merged}, nil
}

// Config returns the matcher's effective configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

// MatchProduct resolves a product description and returns its place in
// the product hierarchy. Empty input and empty snapshots return the zero
// match; resolution itself never fails.
func (m *Matcher) MatchProduct(text string, set *ref.ProductSet) ProductMatch {
	q := normalize.Text(text)
	if normalize.IsEmpty(q) || set.Len() == 0 {
		return ProductMatch{}
	}
	t := productTable(set, m.cfg.ProductColumns)
	if len(t.cols) == 0 {
		return ProductMatch{}
	}
	row, ok := runCascade(q, t, m.standard())
	if !ok {
		return ProductMatch{}
	}
	r := set.Row(row)
	return ProductMatch{Top: r.TopName, Upper: r.UpperName, Matched: true}
}

// MatchHazard resolves a hazard mention into its classification. Short
// text runs the standard cascade; text longer than LongTextThreshold
// runs the narrative one.
func (m *Matcher) MatchHazard(text string, set *ref.HazardSet) HazardMatch {
	q := normalize.Text(text)
	if normalize.IsEmpty(q) || set.Len() == 0 {
		return HazardMatch{}
	}
	t := hazardTable(set, m.cfg.HazardColumns)
	if len(t.cols) == 0 {
		return HazardMatch{}
	}

	var stages []stage
	if normalize.Length(q) > m.cfg.LongTextThreshold {
		stages = m.narrative()
	} else {
		stages = m.standard()
	}
	row, ok := runCascade(q, t, stages)
	if !ok {
		return HazardMatch{}
	}
	r := set.Row(row)
	return HazardMatch{
		Category:   r.MidCategory,
		Analyzable: r.Analyzable,
		Interest:   r.Interest,
		Matched:    true,
	}
}

func (m *Matcher) standard() []stage {
	return []stage{
		exactStage{},
		keywordStage{},
		similarStage{score: m.cfg.Scorer, cutoff: m.cfg.SimilarityCutoff},
	}
}

func (m *Matcher) narrative() []stage {
	return []stage{scanStage{}, exactStage{}, keywordStage{}}
}
