package match

import (
	"github.com/safefeed/refmatch/pkg/refmatch/normalize"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// table is the view the strategies run over: the snapshot's name columns
// in consult order, every value already canonicalized. Columns the
// snapshot does not carry are left out entirely, so a degraded master
// narrows the search instead of producing false empty-string hits.
type table struct {
	rows int
	cols []tableColumn
}

type tableColumn struct {
	name   string
	values []string
}

func productTable(s *ref.ProductSet, cols []ref.ProductColumn) table {
	t := table{rows: s.Len()}
	for _, c := range cols {
		if !s.Has(c) {
			continue
		}
		values := make([]string, s.Len())
		for i := range values {
			values[i] = normalize.Text(s.Value(i, c))
		}
		t.cols = append(t.cols, tableColumn{name: c.String(), values: values})
	}
	return t
}

func hazardTable(s *ref.HazardSet, cols []ref.HazardColumn) table {
	t := table{rows: s.Len()}
	for _, c := range cols {
		if !s.Has(c) {
			continue
		}
		values := make([]string, s.Len())
		for i := range values {
			values[i] = normalize.Text(s.Value(i, c))
		}
		t.cols = append(t.cols, tableColumn{name: c.String(), values: values})
	}
	return t
}
