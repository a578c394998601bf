package config

import (
	"fmt"

	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/match"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	MatcherPath string
	RulesPath   string
}

// Components holds all loaded configuration components
type Components struct {
	Matcher *match.Matcher
	Rules   *kwmap.Mapper
}

// Load reads all configuration files and returns initialized components.
// Empty paths fall back to defaults: a default-configured matcher and an
// empty rule set.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	var cfg match.Config
	if l.MatcherPath != "" {
		mc, err := LoadMatcher(l.MatcherPath)
		if err != nil {
			return nil, fmt.Errorf("load matcher config: %w", err)
		}
		if cfg, err = mc.Build(); err != nil {
			return nil, fmt.Errorf("build matcher config: %w", err)
		}
	}
	m, err := match.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure matcher: %w", err)
	}
	comp.Matcher = m

	if l.RulesPath != "" {
		r, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		comp.Rules = kwmap.New(r.Rules)
	} else {
		comp.Rules = kwmap.New(nil)
	}

	return comp, nil
}
