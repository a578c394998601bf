package ref

import "sync/atomic"

// Catalog holds the active reference snapshots. A refresh builds complete
// new sets and swaps them in atomically, so concurrent readers always see
// either the old master or the new one, never a mix.
type Catalog struct {
	products atomic.Pointer[ProductSet]
	hazards  atomic.Pointer[HazardSet]
}

// NewCatalog returns an empty catalog. Both snapshots are nil until the
// first swap; matching treats a nil snapshot as empty.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Products returns the current product snapshot, nil if none was set.
func (c *Catalog) Products() *ProductSet {
	return c.products.Load()
}

// Hazards returns the current hazard snapshot, nil if none was set.
func (c *Catalog) Hazards() *HazardSet {
	return c.hazards.Load()
}

// SetProducts publishes a new product snapshot.
func (c *Catalog) SetProducts(s *ProductSet) {
	c.products.Store(s)
}

// SetHazards publishes a new hazard snapshot.
func (c *Catalog) SetHazards(s *HazardSet) {
	c.hazards.Store(s)
}
