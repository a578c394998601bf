package match

import (
	"fmt"

	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/similarity"
)

const (
	// DefaultSimilarityCutoff is the minimum 0-100 score the similarity
	// stage accepts when no cutoff is configured.
	DefaultSimilarityCutoff = 80.0

	// DefaultLongTextThreshold is the rune length above which hazard text
	// is treated as narrative rather than a name.
	DefaultLongTextThreshold = 30
)

// Config tunes a Matcher. The zero value selects defaults for every
// field, so Config{} behaves the same as DefaultConfig().
type Config struct {
	// SimilarityCutoff is the minimum score the similarity stage accepts,
	// on the 0-100 scale. Zero means DefaultSimilarityCutoff.
	SimilarityCutoff float64

	// LongTextThreshold is the rune length above which hazard text takes
	// the narrative path. Zero means DefaultLongTextThreshold.
	LongTextThreshold int

	// ProductColumns is the consult order for product matching.
	// Nil means ref.DefaultProductColumns().
	ProductColumns []ref.ProductColumn

	// HazardColumns is the consult order for hazard matching.
	// Nil means ref.DefaultHazardColumns().
	HazardColumns []ref.HazardColumn

	// Scorer drives the similarity stage. Nil means
	// similarity.WeightedRatio.
	Scorer similarity.ScoreFunc
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		SimilarityCutoff:  DefaultSimilarityCutoff,
		LongTextThreshold: DefaultLongTextThreshold,
		ProductColumns:    ref.DefaultProductColumns(),
		HazardColumns:     ref.DefaultHazardColumns(),
		Scorer:            similarity.WeightedRatio,
	}
}

func (c Config) validate() error {
	if c.SimilarityCutoff < 0 || c.SimilarityCutoff > 100 {
		return fmt.Errorf("%w: similarity cutoff %.1f outside [0,100]", internalerr.ErrInvalidConfig, c.SimilarityCutoff)
	}
	if c.LongTextThreshold < 0 {
		return fmt.Errorf("%w: long text threshold %d is negative", internalerr.ErrInvalidConfig, c.LongTextThreshold)
	}
	if c.ProductColumns != nil && len(c.ProductColumns) == 0 {
		return fmt.Errorf("%w: product column list is empty", internalerr.ErrInvalidConfig)
	}
	for _, col := range c.ProductColumns {
		if !col.Known() {
			return fmt.Errorf("%w: unknown product column %d", internalerr.ErrInvalidConfig, int(col))
		}
	}
	if c.HazardColumns != nil && len(c.HazardColumns) == 0 {
		return fmt.Errorf("%w: hazard column list is empty", internalerr.ErrInvalidConfig)
	}
	for _, col := range c.HazardColumns {
		if !col.Known() {
			return fmt.Errorf("%w: unknown hazard column %d", internalerr.ErrInvalidConfig, int(col))
		}
	}
	return nil
}

// withDefaults fills zero fields with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SimilarityCutoff == 0 {
		c.SimilarityCutoff = d.SimilarityCutoff
	}
	if c.LongTextThreshold == 0 {
		c.LongTextThreshold = d.LongTextThreshold
	}
	if c.ProductColumns == nil {
		c.ProductColumns = d.ProductColumns
	}
	if c.HazardColumns == nil {
		c.HazardColumns = d.HazardColumns
	}
	if c.Scorer == nil {
		c.Scorer = d.Scorer
	}
	return c
}
