package store

import "github.com/safefeed/refmatch/pkg/refmatch/ref"

// MergeProducts applies refresh semantics: manually fixed rows of the
// current master survive at the head of the merged order, and incoming
// rows with the same code are dropped.
func MergeProducts(current, incoming []ref.ProductRow) []ref.ProductRow {
	fixed := make(map[string]bool)
	out := make([]ref.ProductRow, 0, len(incoming))
	for _, r := range current {
		if !r.ManualFixed {
			continue
		}
		out = append(out, r)
		if r.Code != "" {
			fixed[r.Code] = true
		}
	}
	for _, r := range incoming {
		if r.Code != "" && fixed[r.Code] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MergeHazards is MergeProducts for the hazard master.
func MergeHazards(current, incoming []ref.HazardRow) []ref.HazardRow {
	fixed := make(map[string]bool)
	out := make([]ref.HazardRow, 0, len(incoming))
	for _, r := range current {
		if !r.ManualFixed {
			continue
		}
		out = append(out, r)
		if r.Code != "" {
			fixed[r.Code] = true
		}
	}
	for _, r := range incoming {
		if r.Code != "" && fixed[r.Code] {
			continue
		}
		out = append(out, r)
	}
	return out
}
