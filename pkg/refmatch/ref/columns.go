package ref

import (
	"fmt"

	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
)

// ProductColumn identifies a name column of the product master that
// matching may consult.
type ProductColumn int

const (
	ProductNameKR ProductColumn = iota
	ProductNameEN
	ProductAbbrev
	ProductAltName
)

// HazardColumn identifies a name column of the hazard master that
// matching may consult.
type HazardColumn int

const (
	HazardNameKR HazardColumn = iota
	HazardNameEN
	HazardAbbrev
	HazardNickname
	HazardTestItem
)

var productColumnNames = map[ProductColumn]string{
	ProductNameKR:  "name_kr",
	ProductNameEN:  "name_en",
	ProductAbbrev:  "abbrev",
	ProductAltName: "alt_name",
}

var hazardColumnNames = map[HazardColumn]string{
	HazardNameKR:   "name_kr",
	HazardNameEN:   "name_en",
	HazardAbbrev:   "abbrev",
	HazardNickname: "nickname",
	HazardTestItem: "test_item",
}

func (c ProductColumn) String() string {
	if name, ok := productColumnNames[c]; ok {
		return name
	}
	return fmt.Sprintf("product_column(%d)", int(c))
}

func (c HazardColumn) String() string {
	if name, ok := hazardColumnNames[c]; ok {
		return name
	}
	return fmt.Sprintf("hazard_column(%d)", int(c))
}

// Known reports whether c is one of the declared product columns.
func (c ProductColumn) Known() bool {
	_, ok := productColumnNames[c]
	return ok
}

// Known reports whether c is one of the declared hazard columns.
func (c HazardColumn) Known() bool {
	_, ok := hazardColumnNames[c]
	return ok
}

// ParseProductColumn maps a configuration name like "name_en" to its column.
func ParseProductColumn(name string) (ProductColumn, error) {
	for c, n := range productColumnNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown product column %q", internalerr.ErrInvalidConfig, name)
}

// ParseHazardColumn maps a configuration name like "test_item" to its column.
func ParseHazardColumn(name string) (HazardColumn, error) {
	for c, n := range hazardColumnNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown hazard column %q", internalerr.ErrInvalidConfig, name)
}

// DefaultProductColumns is the consult order used when none is configured.
// Korean names lead because the masters are Korean-first.
func DefaultProductColumns() []ProductColumn {
	return []ProductColumn{ProductNameKR, ProductNameEN}
}

// DefaultHazardColumns is the consult order used when none is configured.
func DefaultHazardColumns() []HazardColumn {
	return []HazardColumn{HazardNameKR, HazardNameEN, HazardAbbrev, HazardNickname, HazardTestItem}
}
