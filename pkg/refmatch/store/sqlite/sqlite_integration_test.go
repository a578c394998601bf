package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

// TestOpenSQLiteUnavailable tests that an unopenable database reports
// the store sentinel
func TestOpenSQLiteUnavailable(t *testing.T) {
	ctx := context.Background()

	// Parent directory does not exist, so the database file cannot be
	// created.
	dbPath := filepath.Join(t.TempDir(), "no", "such", "dir", "test.db")

	_, err := OpenSQLite(ctx, dbPath)
	if err == nil {
		t.Fatal("OpenSQLite should fail for an uncreatable path")
	}
	if !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("OpenSQLite error = %v, want ErrStoreUnavailable", err)
	}
}

// TestSQLiteIntegrationProducts tests product master round trips
func TestSQLiteIntegrationProducts(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	rows := []ref.ProductRow{
		{Code: "P01", NameKR: "새우", NameEN: "Shrimp", TopCode: "T01", TopName: "수산물", UpperCode: "U01", UpperName: "갑각류"},
		{Code: "P02", NameKR: "문어", NameEN: "Octopus", TopCode: "T01", TopName: "수산물", UpperCode: "U02", UpperName: "연체류"},
	}

	if err := st.ReplaceProducts(ctx, rows); err != nil {
		t.Fatalf("ReplaceProducts: %v", err)
	}

	loaded, err := st.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(loaded))
	}

	// Stored order must match insert order
	if loaded[0].Code != "P01" || loaded[1].Code != "P02" {
		t.Errorf("Order mismatch: got %q, %q", loaded[0].Code, loaded[1].Code)
	}

	if loaded[0].NameKR != "새우" || loaded[0].UpperName != "갑각류" {
		t.Errorf("Row content mismatch: %+v", loaded[0])
	}
}

// TestSQLiteIntegrationRefreshKeepsManualFixes tests that manually fixed
// rows survive a master refresh
func TestSQLiteIntegrationRefreshKeepsManualFixes(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	// First load: one curated row, one ordinary row
	first := []ref.ProductRow{
		{Code: "P01", NameKR: "새우 수정", NameEN: "Shrimp", ManualFixed: true},
		{Code: "P02", NameKR: "문어", NameEN: "Octopus"},
	}
	if err := st.ReplaceProducts(ctx, first); err != nil {
		t.Fatalf("First ReplaceProducts: %v", err)
	}

	// Refresh with newly collected rows, including a conflicting P01
	second := []ref.ProductRow{
		{Code: "P01", NameKR: "새우", NameEN: "Shrimp"},
		{Code: "P03", NameKR: "고등어", NameEN: "Mackerel"},
	}
	if err := st.ReplaceProducts(ctx, second); err != nil {
		t.Fatalf("Second ReplaceProducts: %v", err)
	}

	loaded, err := st.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 products after refresh, got %d", len(loaded))
	}

	// Curated row leads and keeps its correction
	if loaded[0].Code != "P01" || loaded[0].NameKR != "새우 수정" || !loaded[0].ManualFixed {
		t.Errorf("Manual fix lost: %+v", loaded[0])
	}

	// Unfixed P02 is gone, new P03 is in
	if loaded[1].Code != "P03" {
		t.Errorf("Expected P03 after curated row, got %q", loaded[1].Code)
	}
}

// TestSQLiteIntegrationHazards tests hazard master round trips including flags
func TestSQLiteIntegrationHazards(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	rows := []ref.HazardRow{
		{Code: "H01", NameKR: "살모넬라", NameEN: "Salmonella", Abbrev: "SAL", TopCategory: "미생물", Analyzable: true, Interest: true},
		{Code: "H02", NameKR: "카드뮴", NameEN: "Cadmium", Abbrev: "Cd", TopCategory: "중금속"},
	}

	if err := st.ReplaceHazards(ctx, rows); err != nil {
		t.Fatalf("ReplaceHazards: %v", err)
	}

	loaded, err := st.LoadHazards(ctx)
	if err != nil {
		t.Fatalf("LoadHazards: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 hazards, got %d", len(loaded))
	}

	if loaded[0].NameEN != "Salmonella" || !loaded[0].Analyzable || !loaded[0].Interest {
		t.Errorf("Flag round trip failed: %+v", loaded[0])
	}

	if loaded[1].Abbrev != "Cd" || loaded[1].Analyzable || loaded[1].Interest {
		t.Errorf("Unset flags should stay false: %+v", loaded[1])
	}

	// Hazard refresh keeps manual fixes too
	fixed := loaded[0]
	fixed.NameKR = "살모넬라균"
	fixed.ManualFixed = true
	if err := st.ReplaceHazards(ctx, []ref.HazardRow{fixed}); err != nil {
		t.Fatalf("ReplaceHazards with fix: %v", err)
	}
	if err := st.ReplaceHazards(ctx, rows); err != nil {
		t.Fatalf("ReplaceHazards refresh: %v", err)
	}

	loaded, err = st.LoadHazards(ctx)
	if err != nil {
		t.Fatalf("LoadHazards after refresh: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 hazards after refresh, got %d", len(loaded))
	}
	if loaded[0].Code != "H01" || loaded[0].NameKR != "살모넬라균" {
		t.Errorf("Hazard manual fix lost: %+v", loaded[0])
	}
}

// TestSQLiteIntegrationRulesAndCountries tests the wholesale-replace tables
func TestSQLiteIntegrationRulesAndCountries(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	rules := []kwmap.Rule{
		{Keyword: "listeria", HazardItem: "리스테리아", TopCategory: "미생물", Source: "FDA"},
		{Keyword: "기준치 초과", HazardItem: "기준 초과", TopCategory: "기준위반"},
	}
	if err := st.ReplaceRules(ctx, rules); err != nil {
		t.Fatalf("ReplaceRules: %v", err)
	}

	loadedRules, err := st.LoadRules(ctx)
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(loadedRules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(loadedRules))
	}
	if loadedRules[0].Source != "FDA" {
		t.Errorf("Expected source FDA, got %q", loadedRules[0].Source)
	}
	// Empty source is stored as the ALL wildcard
	if loadedRules[1].Source != kwmap.SourceAll {
		t.Errorf("Empty source should load as %q, got %q", kwmap.SourceAll, loadedRules[1].Source)
	}

	countries := []country.Row{
		{NameEN: "United States", NameKR: "미국", ISO2: "US", ISO3: "USA", ISONum: "840"},
		{NameEN: "Viet Nam", NameKR: "베트남", ISO2: "VN", ISO3: "VNM", ISONum: "704"},
	}
	if err := st.ReplaceCountries(ctx, countries); err != nil {
		t.Fatalf("ReplaceCountries: %v", err)
	}

	loadedCountries, err := st.LoadCountries(ctx)
	if err != nil {
		t.Fatalf("LoadCountries: %v", err)
	}
	if len(loadedCountries) != 2 {
		t.Fatalf("Expected 2 countries, got %d", len(loadedCountries))
	}
	if loadedCountries[1].NameKR != "베트남" || loadedCountries[1].ISO3 != "VNM" {
		t.Errorf("Country round trip failed: %+v", loadedCountries[1])
	}

	// Wholesale replace drops everything previous
	if err := st.ReplaceCountries(ctx, countries[:1]); err != nil {
		t.Fatalf("Second ReplaceCountries: %v", err)
	}
	loadedCountries, err = st.LoadCountries(ctx)
	if err != nil {
		t.Fatalf("LoadCountries after replace: %v", err)
	}
	if len(loadedCountries) != 1 {
		t.Errorf("Expected 1 country after replace, got %d", len(loadedCountries))
	}
}

// TestSQLiteIntegrationReopen tests that data survives close and reopen
func TestSQLiteIntegrationReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	rows := []ref.ProductRow{
		{Code: "P01", NameKR: "새우", NameEN: "Shrimp"},
	}
	if err := st.ReplaceProducts(ctx, rows); err != nil {
		t.Fatalf("ReplaceProducts: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	st, err = OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("Reopen OpenSQLite: %v", err)
	}
	defer st.Close()

	loaded, err := st.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("LoadProducts after reopen: %v", err)
	}
	if len(loaded) != 1 || loaded[0].NameKR != "새우" {
		t.Errorf("Data lost across reopen: %+v", loaded)
	}
}

// TestSQLiteIntegrationEmptyMasters tests loading from a fresh database
func TestSQLiteIntegrationEmptyMasters(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	products, err := st.LoadProducts(ctx)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty product master, got %d rows", len(products))
	}

	hazards, err := st.LoadHazards(ctx)
	if err != nil {
		t.Fatalf("LoadHazards: %v", err)
	}
	if len(hazards) != 0 {
		t.Errorf("Expected empty hazard master, got %d rows", len(hazards))
	}
}

// Helper to verify SQLite schema
func TestSQLiteIntegrationSchemaExists(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	// Verify tables exist by querying sqlite_master (excluding sqlite_sequence which is auto-generated)
	sqliteStore := st.(*sqliteStore)
	rows, err := sqliteStore.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("Query sqlite_master: %v", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("Scan table name: %v", err)
		}
		tables = append(tables, name)
	}

	expectedTables := []string{"country_master", "hazard_master", "keyword_rules", "product_master"}
	if len(tables) != len(expectedTables) {
		t.Errorf("Expected %d tables, got %d: %v", len(expectedTables), len(tables), tables)
	}

	for _, expected := range expectedTables {
		found := false
		for _, actual := range tables {
			if actual == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Table %q not found", expected)
		}
	}
}
