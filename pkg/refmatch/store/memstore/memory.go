// Package memstore is an in-memory store.Store for tests and for running
// without a database file.
package memstore

import (
	"context"
	"sync"

	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu        sync.RWMutex
	products  []ref.ProductRow
	hazards   []ref.HazardRow
	rules     []kwmap.Rule
	countries []country.Row
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// ReplaceProducts refreshes the product master, keeping manually fixed
// rows per store.MergeProducts.
func (s *Store) ReplaceProducts(ctx context.Context, rows []ref.ProductRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = store.MergeProducts(s.products, rows)
	return nil
}

// LoadProducts returns the product master in stored order.
func (s *Store) LoadProducts(ctx context.Context) ([]ref.ProductRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ref.ProductRow, len(s.products))
	copy(out, s.products)
	return out, nil
}

// ReplaceHazards refreshes the hazard master, keeping manually fixed
// rows per store.MergeHazards.
func (s *Store) ReplaceHazards(ctx context.Context, rows []ref.HazardRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hazards = store.MergeHazards(s.hazards, rows)
	return nil
}

// LoadHazards returns the hazard master in stored order.
func (s *Store) LoadHazards(ctx context.Context) ([]ref.HazardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ref.HazardRow, len(s.hazards))
	copy(out, s.hazards)
	return out, nil
}

// ReplaceRules replaces the keyword rule list wholesale.
func (s *Store) ReplaceRules(ctx context.Context, rules []kwmap.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = make([]kwmap.Rule, len(rules))
	copy(s.rules, rules)
	return nil
}

// LoadRules returns the keyword rules in stored order.
func (s *Store) LoadRules(ctx context.Context) ([]kwmap.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]kwmap.Rule, len(s.rules))
	copy(out, s.rules)
	return out, nil
}

// ReplaceCountries replaces the country master wholesale.
func (s *Store) ReplaceCountries(ctx context.Context, rows []country.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = make([]country.Row, len(rows))
	copy(s.countries, rows)
	return nil
}

// LoadCountries returns the country master in stored order.
func (s *Store) LoadCountries(ctx context.Context) ([]country.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]country.Row, len(s.countries))
	copy(out, s.countries)
	return out, nil
}
