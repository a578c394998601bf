// Package record assembles unified alert records from raw feed rows,
// resolving their free text against the reference masters.
package record

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
)

// Record is one unified alert, the shape every feed is normalized into.
type Record struct {
	ID               string `json:"record_id"`
	RegistrationDate string `json:"registration_date"`
	Source           string `json:"source"`
	SourceDetail     string `json:"source_detail"`
	ProductType      string `json:"product_type"`
	TopProductType   string `json:"top_product_type"`
	UpperProductType string `json:"upper_product_type"`
	ProductName      string `json:"product_name"`
	OriginCountry    string `json:"origin_country"`
	NotifyingCountry string `json:"notifying_country"`
	HazardCategory   string `json:"hazard_category"`
	HazardItem       string `json:"hazard_item"`
	FullText         string `json:"full_text,omitempty"`
	Analyzable       bool   `json:"analyzable"`
	Interest         bool   `json:"interest"`
}

// Key derives the stable identity of an alert: the feed name plus the
// feed's own identifier for it, hashed. The same alert re-collected on a
// later run produces the same key.
func Key(source, sourceDetail string) string {
	sum := sha256.Sum256([]byte(source + "::" + sourceDetail))
	return hex.EncodeToString(sum[:8])
}

// Validate checks the fields every downstream consumer depends on.
func (r *Record) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("%w: record has no source", internalerr.ErrInvalidInput)
	}
	if r.SourceDetail == "" {
		return fmt.Errorf("%w: record has no source detail", internalerr.ErrInvalidInput)
	}
	if r.ProductName == "" {
		return fmt.Errorf("%w: record %s has no product name", internalerr.ErrInvalidInput, r.ID)
	}
	return nil
}

// Dedup drops records whose key was already seen, either earlier in the
// slice or in seen. Order is preserved and the first occurrence wins.
// seen is updated in place so it can be carried across batches; nil
// starts fresh.
func Dedup(records []Record, seen map[string]bool) []Record {
	if seen == nil {
		seen = make(map[string]bool, len(records))
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		id := r.ID
		if id == "" {
			id = Key(r.Source, r.SourceDetail)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, r)
	}
	return out
}

// NewRunID mints a ULID for a resolution run. ULIDs sort by time, so run
// artifacts list chronologically.
func NewRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
