package country

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadTSV reads a country master file: tab-separated, one header line,
// columns name_en, name_kr, iso2, iso3, iso_num. Short lines are padded
// with empty fields.
func LoadTSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open country master: %w", err)
	}
	defer f.Close()
	return ReadTSV(f)
}

// ReadTSV parses country master rows from r.
func ReadTSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse country master: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		rows = append(rows, Row{
			NameEN: field(rec, 0),
			NameKR: field(rec, 1),
			ISO2:   field(rec, 2),
			ISO3:   field(rec, 3),
			ISONum: field(rec, 4),
		})
	}
	return rows, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
