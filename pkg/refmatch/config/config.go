// Package config loads matcher settings and keyword rules from YAML files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/match"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/similarity"
)

// Matcher is the file form of a matcher configuration. Zero or missing
// fields fall back to the matcher defaults.
type Matcher struct {
	SimilarityCutoff  float64  `yaml:"similarity_cutoff"`
	LongTextThreshold int      `yaml:"long_text_threshold"`
	ProductColumns    []string `yaml:"product_columns"`
	HazardColumns     []string `yaml:"hazard_columns"`
	Scorer            string   `yaml:"scorer"`
}

// LoadMatcher loads a matcher configuration from a YAML file
func LoadMatcher(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Matcher
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Build converts the file form into a match.Config. Column and scorer
// names are resolved here; unknown names fail with ErrInvalidConfig.
func (m *Matcher) Build() (match.Config, error) {
	cfg := match.Config{
		SimilarityCutoff:  m.SimilarityCutoff,
		LongTextThreshold: m.LongTextThreshold,
	}

	for _, name := range m.ProductColumns {
		col, err := ref.ParseProductColumn(name)
		if err != nil {
			return match.Config{}, err
		}
		cfg.ProductColumns = append(cfg.ProductColumns, col)
	}

	for _, name := range m.HazardColumns {
		col, err := ref.ParseHazardColumn(name)
		if err != nil {
			return match.Config{}, err
		}
		cfg.HazardColumns = append(cfg.HazardColumns, col)
	}

	if m.Scorer != "" {
		scorer, err := similarity.ByName(m.Scorer)
		if err != nil {
			return match.Config{}, err
		}
		cfg.Scorer = scorer
	}

	return cfg, nil
}

// Rules is the file form of the keyword override rules.
type Rules struct {
	Rules []kwmap.Rule `yaml:"rules"`
}

// LoadRules loads keyword override rules from a YAML file
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
