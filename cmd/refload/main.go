// refload loads reference master files into the resolution database:
// product hierarchy, hazard classification, country names and keyword
// rules. Product and hazard masters are enriched before storage so the
// database always holds display-ready rows.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/safefeed/refmatch/pkg/refmatch/config"
	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/store/sqlite"
)

func main() {
	var (
		dbPath        = flag.String("db", "", "Database path (required)")
		productsPath  = flag.String("products", "", "Product master CSV")
		hazardsPath   = flag.String("hazards", "", "Hazard master CSV")
		classesPath   = flag.String("hazard-classes", "", "Hazard classification CSV")
		countriesPath = flag.String("countries", "", "Country master TSV")
		rulesPath     = flag.String("rules", "", "Keyword rules YAML")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *productsPath == "" && *hazardsPath == "" && *countriesPath == "" && *rulesPath == "" {
		log.Fatal("nothing to load, give at least one of --products, --hazards, --countries, --rules")
	}

	ctx := context.Background()

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	if *productsPath != "" {
		rows, err := loadProducts(*productsPath)
		if err != nil {
			log.Fatal("Failed to load products:", err)
		}
		rows = ref.ResolveProductHierarchy(rows)
		if err := st.ReplaceProducts(ctx, rows); err != nil {
			log.Fatal("Failed to store products:", err)
		}
		log.Printf("Loaded %d product rows from %s", len(rows), *productsPath)
	}

	if *hazardsPath != "" {
		rows, err := loadHazards(*hazardsPath)
		if err != nil {
			log.Fatal("Failed to load hazards:", err)
		}
		var classes []ref.HazardClass
		if *classesPath != "" {
			classes, err = loadClasses(*classesPath)
			if err != nil {
				log.Fatal("Failed to load hazard classes:", err)
			}
		}
		rows = ref.ResolveHazardClasses(rows, classes)
		if err := st.ReplaceHazards(ctx, rows); err != nil {
			log.Fatal("Failed to store hazards:", err)
		}
		log.Printf("Loaded %d hazard rows from %s", len(rows), *hazardsPath)
	} else if *classesPath != "" {
		log.Printf("Warning: --hazard-classes given without --hazards, ignoring")
	}

	if *countriesPath != "" {
		rows, err := country.LoadTSV(*countriesPath)
		if err != nil {
			log.Fatal("Failed to load countries:", err)
		}
		if err := st.ReplaceCountries(ctx, rows); err != nil {
			log.Fatal("Failed to store countries:", err)
		}
		log.Printf("Loaded %d country rows from %s", len(rows), *countriesPath)
	}

	if *rulesPath != "" {
		r, err := config.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal("Failed to load rules:", err)
		}
		if err := st.ReplaceRules(ctx, r.Rules); err != nil {
			log.Fatal("Failed to store rules:", err)
		}
		log.Printf("Loaded %d keyword rules from %s", len(r.Rules), *rulesPath)
	}

	log.Println("✓ Reference load complete")
}

// csvTable is a parsed CSV file with columns addressed by header name, so
// master exports can reorder columns freely.
type csvTable struct {
	index map[string]int
	rows  [][]string
}

func readCSVFile(path string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s has no header", path)
	}

	t := &csvTable{index: make(map[string]int, len(all[0])), rows: all[1:]}
	for i, name := range all[0] {
		t.index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return t, nil
}

func (t *csvTable) get(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func loadProducts(path string) ([]ref.ProductRow, error) {
	t, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	var rows []ref.ProductRow
	for _, rec := range t.rows {
		r := ref.ProductRow{
			Code:        t.get(rec, "code"),
			NameKR:      t.get(rec, "name_kr"),
			NameEN:      t.get(rec, "name_en"),
			Abbrev:      t.get(rec, "abbrev"),
			AltName:     t.get(rec, "alt_name"),
			TopCode:     t.get(rec, "top_code"),
			TopName:     t.get(rec, "top_name"),
			UpperCode:   t.get(rec, "upper_code"),
			UpperName:   t.get(rec, "upper_name"),
			ManualFixed: parseBool(t.get(rec, "manual_fixed")),
		}
		if r.Code == "" && r.NameKR == "" && r.NameEN == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func loadHazards(path string) ([]ref.HazardRow, error) {
	t, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	var rows []ref.HazardRow
	for _, rec := range t.rows {
		r := ref.HazardRow{
			Code:        t.get(rec, "code"),
			NameKR:      t.get(rec, "name_kr"),
			NameEN:      t.get(rec, "name_en"),
			Abbrev:      t.get(rec, "abbrev"),
			Nickname:    t.get(rec, "nickname"),
			TestItem:    t.get(rec, "test_item"),
			MidCode:     t.get(rec, "mid_code"),
			MidCategory: t.get(rec, "mid_category"),
			TopCode:     t.get(rec, "top_code"),
			TopCategory: t.get(rec, "top_category"),
			Analyzable:  parseBool(t.get(rec, "analyzable")),
			Interest:    parseBool(t.get(rec, "interest")),
			ManualFixed: parseBool(t.get(rec, "manual_fixed")),
		}
		if r.Code == "" && r.NameKR == "" && r.NameEN == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func loadClasses(path string) ([]ref.HazardClass, error) {
	t, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	var classes []ref.HazardClass
	for _, rec := range t.rows {
		c := ref.HazardClass{
			MidCode: t.get(rec, "mid_code"),
			MidName: t.get(rec, "mid_name"),
			TopCode: t.get(rec, "top_code"),
			TopName: t.get(rec, "top_name"),
		}
		if c.MidCode == "" && c.TopCode == "" {
			continue
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// parseBool reads the flag spellings master exports use: Y/N, yes/no,
// true/false, 1/0. Anything else is false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true
	}
	return false
}
