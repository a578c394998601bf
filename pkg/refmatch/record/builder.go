package record

import (
	"context"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/safefeed/refmatch/internal/feedtext"
	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/match"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// RawRow is one scraped feed row before resolution. Every field is the
// feed's own spelling, markup and all.
type RawRow struct {
	RegistrationDate string `json:"registration_date"`
	Source           string `json:"source"`
	SourceDetail     string `json:"source_detail"`
	ProductType      string `json:"product_type"`
	ProductName      string `json:"product_name"`
	OriginCountry    string `json:"origin_country"`
	NotifyingCountry string `json:"notifying_country"`
	HazardItem       string `json:"hazard_item"`
	FullText         string `json:"full_text,omitempty"`
}

// Batch is the outcome of one resolution run.
type Batch struct {
	RunID   string   `json:"run_id"`
	Records []Record `json:"records"`
}

// Builder turns raw feed rows into Records using the reference catalog.
// It is safe for concurrent use.
type Builder struct {
	matcher   *match.Matcher
	catalog   *ref.Catalog
	rules     *kwmap.Mapper
	countries *country.Normalizer
}

// NewBuilder wires a builder. rules and countries may be nil, in which
// case those steps are skipped. A nil matcher gets defaults and a nil
// catalog behaves as empty.
func NewBuilder(m *match.Matcher, catalog *ref.Catalog, rules *kwmap.Mapper, countries *country.Normalizer) *Builder {
	if m == nil {
		m, _ = match.New() // zero config never fails validation
	}
	if catalog == nil {
		catalog = ref.NewCatalog()
	}
	return &Builder{matcher: m, catalog: catalog, rules: rules, countries: countries}
}

// Build resolves one raw row. Resolution never fails; missing reference
// coverage just leaves the classification fields empty.
func (b *Builder) Build(row RawRow) Record {
	rec := Record{
		RegistrationDate: normalizeDate(row.RegistrationDate),
		Source:           strings.TrimSpace(row.Source),
		SourceDetail:     feedtext.Clean(row.SourceDetail),
		ProductType:      feedtext.Clean(row.ProductType),
		ProductName:      feedtext.Clean(row.ProductName),
		OriginCountry:    b.countries.Canonical(feedtext.Clean(row.OriginCountry)),
		NotifyingCountry: b.countries.Canonical(feedtext.Clean(row.NotifyingCountry)),
		HazardItem:       feedtext.Clean(row.HazardItem),
		FullText:         feedtext.Clean(row.FullText),
	}
	rec.ID = Key(rec.Source, rec.SourceDetail)

	// Feeds without a product type column still name the product; the
	// name usually contains the type word.
	prodText := rec.ProductType
	if prodText == "" {
		prodText = rec.ProductName
	}
	if prod := b.matcher.MatchProduct(prodText, b.catalog.Products()); prod.Matched {
		rec.TopProductType = prod.Top
		rec.UpperProductType = prod.Upper
	}

	// Narrative feeds carry the hazard inside the alert text instead of
	// a dedicated field.
	hazText := rec.HazardItem
	if hazText == "" {
		hazText = rec.FullText
	}

	// A curated rule is a hard override and outranks cascade matching.
	if rule := b.rules.Map(hazText, rec.Source); rule != nil {
		rec.HazardItem = rule.HazardItem
		rec.HazardCategory = rule.MidCategory
	} else if haz := b.matcher.MatchHazard(hazText, b.catalog.Hazards()); haz.Matched {
		rec.HazardCategory = haz.Category
		rec.Analyzable = haz.Analyzable
		rec.Interest = haz.Interest
	}

	return rec
}

// BuildAll resolves rows concurrently and returns them in input order.
// workers caps the resolution goroutines; zero or less means one per CPU.
func (b *Builder) BuildAll(ctx context.Context, rows []RawRow, workers int) (Batch, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	batch := Batch{
		RunID:   NewRunID(),
		Records: make([]Record, len(rows)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range rows {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			batch.Records[i] = b.Build(rows[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Batch{}, err
	}
	return batch, nil
}

// Date spellings seen across the feeds. Resolution output always uses
// the first one.
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"20060102",
	"01/02/2006",
}

// normalizeDate rewrites known date spellings to ISO form and leaves
// anything unrecognized alone.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
