// Package country canonicalizes the free-form country names feeds carry.
// Feeds spell the same country in English, Korean or as an ISO code;
// records should all carry the one English name the master declares.
package country

import (
	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
)

// Row is one entry of the country name master.
type Row struct {
	NameEN string `json:"name_en"`
	NameKR string `json:"name_kr"`
	ISO2   string `json:"iso2"`
	ISO3   string `json:"iso3"`
	ISONum string `json:"iso_num"`
}

// Normalizer resolves raw country strings to canonical English names.
type Normalizer struct {
	rows  []Row
	index map[string]int
}

// New builds a Normalizer over the master rows. Lookup keys are indexed
// column by column (English name, Korean name, ISO2, ISO3), so when two
// rows claim the same spelling the earlier column and then the earlier
// row decides.
func New(rows []Row) *Normalizer {
	n := &Normalizer{
		rows:  make([]Row, len(rows)),
		index: make(map[string]int),
	}
	copy(n.rows, rows)

	keys := []func(Row) string{
		func(r Row) string { return r.NameEN },
		func(r Row) string { return r.NameKR },
		func(r Row) string { return r.ISO2 },
		func(r Row) string { return r.ISO3 },
	}
	for _, key := range keys {
		for i, r := range n.rows {
			k := normalize.Text(key(r))
			if k == "" {
				continue
			}
			if _, ok := n.index[k]; !ok {
				n.index[k] = i
			}
		}
	}
	return n
}

// Len returns the number of master rows.
func (n *Normalizer) Len() int {
	if n == nil {
		return 0
	}
	return len(n.rows)
}

// Canonical returns the canonical English name for raw. Matching is
// exact after canonicalization; anything the master does not know passes
// through unchanged. Misspellings are left alone on purpose, a wrong
// country is worse than an unnormalized one.
func (n *Normalizer) Canonical(raw string) string {
	if n == nil {
		return raw
	}
	k := normalize.Text(raw)
	if normalize.IsEmpty(k) {
		return raw
	}
	i, ok := n.index[k]
	if !ok {
		return raw
	}
	if name := n.rows[i].NameEN; name != "" {
		return name
	}
	return raw
}
