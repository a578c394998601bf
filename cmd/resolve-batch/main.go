// resolve-batch resolves raw feed rows against the reference database and
// writes unified alert records as JSONL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/safefeed/refmatch/internal/feedio"
	"github.com/safefeed/refmatch/pkg/refmatch"
	"github.com/safefeed/refmatch/pkg/refmatch/config"
	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/record"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/store/sqlite"
)

func main() {
	var (
		dbPath     = flag.String("db", "", "Database path (required)")
		inPath     = flag.String("in", "", "Input JSONL of raw feed rows (required)")
		outPath    = flag.String("out", "", "Output JSONL of resolved records (default stdout)")
		configPath = flag.String("config", "", "Matcher configuration YAML (optional)")
		rulesPath  = flag.String("rules", "", "Keyword rules YAML, overrides the rules stored in the database (optional)")
		workers    = flag.Int("workers", 0, "Resolution goroutines, 0 means one per CPU")
		audit      = flag.Bool("audit", false, "Print a coverage report to stderr")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *inPath == "" {
		log.Fatal("--in required")
	}

	ctx := context.Background()

	// Load configuration components
	loader := config.Loader{
		MatcherPath: *configPath,
		RulesPath:   *rulesPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Open database
	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	products, err := st.LoadProducts(ctx)
	if err != nil {
		log.Fatal("Failed to load product master:", err)
	}
	hazards, err := st.LoadHazards(ctx)
	if err != nil {
		log.Fatal("Failed to load hazard master:", err)
	}
	countryRows, err := st.LoadCountries(ctx)
	if err != nil {
		log.Fatal("Failed to load country master:", err)
	}

	// Stored rules are the default; a rules file on the command line wins
	rules := components.Rules
	if *rulesPath == "" {
		dbRules, err := st.LoadRules(ctx)
		if err != nil {
			log.Fatal("Failed to load rules:", err)
		}
		rules = kwmap.New(dbRules)
	}

	catalog := ref.NewCatalog()
	catalog.SetProducts(ref.NewProductSet(products))
	catalog.SetHazards(ref.NewHazardSet(hazards))

	log.Printf("Reference snapshots: %d products, %d hazards, %d countries, %d rules",
		len(products), len(hazards), len(countryRows), rules.Len())

	resolver := refmatch.New(refmatch.Options{
		Catalog:   catalog,
		Matcher:   components.Matcher,
		Rules:     rules,
		Countries: country.New(countryRows),
	})

	rows, err := feedio.LoadRows(*inPath)
	if err != nil {
		log.Fatal("Failed to load raw rows:", err)
	}
	log.Printf("Loaded %d raw rows from %s", len(rows), *inPath)

	batch, err := resolver.BuildRecords(ctx, rows, *workers)
	if err != nil {
		log.Fatal("Resolution failed:", err)
	}

	records := record.Dedup(batch.Records, nil)
	log.Printf("Run %s: %d rows resolved, %d records after dedup", batch.RunID, len(rows), len(records))

	// Invalid records are written anyway so nothing is silently lost,
	// but each one is called out before the file goes downstream.
	invalid := 0
	for i := range records {
		if err := records[i].Validate(); err != nil {
			log.Printf("Warning: invalid record %s: %v", records[i].ID, err)
			invalid++
		}
	}
	if invalid > 0 {
		log.Printf("%d of %d records failed validation", invalid, len(records))
	}

	if *outPath != "" {
		if err := feedio.WriteRecordsFile(*outPath, records); err != nil {
			log.Fatal("Failed to write records:", err)
		}
		log.Printf("Wrote %d records to %s", len(records), *outPath)
	} else {
		if err := feedio.WriteRecords(os.Stdout, records); err != nil {
			log.Fatal("Failed to write records:", err)
		}
	}

	if *audit {
		fmt.Fprint(os.Stderr, record.Audit(records).String())
	}

	log.Println("✓ Resolution complete")
}
