// Package store persists the reference masters between collection runs.
package store

import (
	"context"

	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// Store is the interface for persisting reference master data. Load
// methods return rows in stored order, which is the order snapshots and
// matching will use.
//
// ReplaceProducts and ReplaceHazards refresh a master with newly
// collected rows. Stored rows flagged ManualFixed survive the refresh:
// they stay, leading the new order, and incoming rows with the same code
// are dropped so a curated correction is never clobbered by the next
// collection. Rules and countries are replaced wholesale.
type Store interface {
	Close() error

	// Product master
	ReplaceProducts(ctx context.Context, rows []ref.ProductRow) error
	LoadProducts(ctx context.Context) ([]ref.ProductRow, error)

	// Hazard master
	ReplaceHazards(ctx context.Context, rows []ref.HazardRow) error
	LoadHazards(ctx context.Context) ([]ref.HazardRow, error)

	// Keyword rules
	ReplaceRules(ctx context.Context, rules []kwmap.Rule) error
	LoadRules(ctx context.Context) ([]kwmap.Rule, error)

	// Country master
	ReplaceCountries(ctx context.Context, rows []country.Row) error
	LoadCountries(ctx context.Context) ([]country.Row, error)
}
