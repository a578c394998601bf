package ref

// ProductSet is an immutable, ordered snapshot of the product master.
// Row order is the master's own order and is significant: matching
// resolves ties by the first row encountered.
type ProductSet struct {
	rows    []ProductRow
	present map[ProductColumn]bool
}

// NewProductSet builds a snapshot over rows. cols lists the name columns
// the source actually carried; omit it when the master is complete.
// A column a source never had is skipped by matching rather than
// consulted as all-empty.
func NewProductSet(rows []ProductRow, cols ...ProductColumn) *ProductSet {
	s := &ProductSet{
		rows:    make([]ProductRow, len(rows)),
		present: make(map[ProductColumn]bool),
	}
	copy(s.rows, rows)
	if len(cols) == 0 {
		for c := range productColumnNames {
			s.present[c] = true
		}
	} else {
		for _, c := range cols {
			s.present[c] = true
		}
	}
	return s
}

// Len returns the number of rows in the snapshot.
func (s *ProductSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Row returns the row at index i.
func (s *ProductSet) Row(i int) ProductRow {
	return s.rows[i]
}

// Rows returns a copy of all rows in snapshot order.
func (s *ProductSet) Rows() []ProductRow {
	out := make([]ProductRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Has reports whether the snapshot carries the given name column.
func (s *ProductSet) Has(c ProductColumn) bool {
	if s == nil {
		return false
	}
	return s.present[c]
}

// Value returns the raw value of column c in row i. Rows never carry a
// column the snapshot does not have; absent columns read as empty.
func (s *ProductSet) Value(i int, c ProductColumn) string {
	if !s.Has(c) {
		return ""
	}
	switch c {
	case ProductNameKR:
		return s.rows[i].NameKR
	case ProductNameEN:
		return s.rows[i].NameEN
	case ProductAbbrev:
		return s.rows[i].Abbrev
	case ProductAltName:
		return s.rows[i].AltName
	}
	return ""
}

// HazardSet is an immutable, ordered snapshot of the hazard master.
type HazardSet struct {
	rows    []HazardRow
	present map[HazardColumn]bool
}

// NewHazardSet builds a snapshot over rows. cols lists the name columns
// the source actually carried; omit it when the master is complete.
func NewHazardSet(rows []HazardRow, cols ...HazardColumn) *HazardSet {
	s := &HazardSet{
		rows:    make([]HazardRow, len(rows)),
		present: make(map[HazardColumn]bool),
	}
	copy(s.rows, rows)
	if len(cols) == 0 {
		for c := range hazardColumnNames {
			s.present[c] = true
		}
	} else {
		for _, c := range cols {
			s.present[c] = true
		}
	}
	return s
}

// Len returns the number of rows in the snapshot.
func (s *HazardSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Row returns the row at index i.
func (s *HazardSet) Row(i int) HazardRow {
	return s.rows[i]
}

// Rows returns a copy of all rows in snapshot order.
func (s *HazardSet) Rows() []HazardRow {
	out := make([]HazardRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Has reports whether the snapshot carries the given name column.
func (s *HazardSet) Has(c HazardColumn) bool {
	if s == nil {
		return false
	}
	return s.present[c]
}

// Value returns the raw value of column c in row i.
func (s *HazardSet) Value(i int, c HazardColumn) string {
	if !s.Has(c) {
		return ""
	}
	switch c {
	case HazardNameKR:
		return s.rows[i].NameKR
	case HazardNameEN:
		return s.rows[i].NameEN
	case HazardAbbrev:
		return s.rows[i].Abbrev
	case HazardNickname:
		return s.rows[i].Nickname
	case HazardTestItem:
		return s.rows[i].TestItem
	}
	return ""
}
