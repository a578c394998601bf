// Package refmatch resolves noisy multilingual feed text against curated
// reference masters. Free-form product and hazard mentions come in, their
// place in the reference taxonomy comes out: top and upper product types
// for products, the hazard category plus its screening flags for hazards.
//
// Resolution cascades from exact name equality through keyword containment
// down to similarity scoring, consulting the master's name columns in a
// configured order. Long hazard text switches to a narrative ladder that
// scans the passage for embedded reference names instead of scoring the
// whole of it.
package refmatch

import (
	"context"

	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/match"
	"github.com/safefeed/refmatch/pkg/refmatch/record"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// Resolver is the main resolution engine facade
type Resolver struct {
	catalog *ref.Catalog
	matcher *match.Matcher
	builder *record.Builder
}

// Options configures a Resolver instance
type Options struct {
	// Catalog supplies the reference snapshots. Nil means an empty
	// catalog; swap snapshots in later via Catalog().
	Catalog *ref.Catalog

	// Matcher runs the cascade. Nil means a default-configured matcher.
	Matcher *match.Matcher

	// Rules holds curated keyword overrides applied before hazard
	// matching. Nil disables overrides.
	Rules *kwmap.Mapper

	// Countries canonicalizes country spellings on built records.
	// Nil leaves them as the feed wrote them.
	Countries *country.Normalizer
}

// New creates a Resolver instance with the given dependencies
func New(opts Options) *Resolver {
	m := opts.Matcher
	if m == nil {
		m, _ = match.New() // zero config never fails validation
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = ref.NewCatalog()
	}
	return &Resolver{
		catalog: catalog,
		matcher: m,
		builder: record.NewBuilder(m, catalog, opts.Rules, opts.Countries),
	}
}

// Catalog returns the catalog the resolver reads snapshots from. Swapping
// a snapshot takes effect on the next query.
func (r *Resolver) Catalog() *ref.Catalog {
	return r.catalog
}

// ResolveProduct locates a product description in the product hierarchy.
// An optional Config overrides matcher settings for this query only; the
// error is solely about a bad override, resolution itself never fails.
func (r *Resolver) ResolveProduct(text string, cfg ...match.Config) (match.ProductMatch, error) {
	m := r.matcher
	if len(cfg) > 0 {
		var err error
		if m, err = r.matcher.With(cfg[0]); err != nil {
			return match.ProductMatch{}, err
		}
	}
	return m.MatchProduct(text, r.catalog.Products()), nil
}

// ResolveHazard classifies a hazard mention. An optional Config overrides
// matcher settings for this query only.
func (r *Resolver) ResolveHazard(text string, cfg ...match.Config) (match.HazardMatch, error) {
	m := r.matcher
	if len(cfg) > 0 {
		var err error
		if m, err = r.matcher.With(cfg[0]); err != nil {
			return match.HazardMatch{}, err
		}
	}
	return m.MatchHazard(text, r.catalog.Hazards()), nil
}

// BuildRecords resolves a batch of raw feed rows into records, preserving
// input order. workers caps concurrency; zero or less means one per CPU.
func (r *Resolver) BuildRecords(ctx context.Context, rows []record.RawRow, workers int) (record.Batch, error) {
	return r.builder.BuildAll(ctx, rows, workers)
}
