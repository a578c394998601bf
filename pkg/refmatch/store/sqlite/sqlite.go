// Package sqlite persists the reference masters in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/safefeed/refmatch/pkg/refmatch/country"
	"github.com/safefeed/refmatch/pkg/refmatch/internalerr"
	"github.com/safefeed/refmatch/pkg/refmatch/kwmap"
	"github.com/safefeed/refmatch/pkg/refmatch/ref"
	"github.com/safefeed/refmatch/pkg/refmatch/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and creates
// the schema when missing. A database that cannot be opened or prepared
// reports internalerr.ErrStoreUnavailable.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema in %s: %v", internalerr.ErrStoreUnavailable, path, err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS product_master (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL DEFAULT '',
	name_kr TEXT NOT NULL DEFAULT '',
	name_en TEXT NOT NULL DEFAULT '',
	abbrev TEXT NOT NULL DEFAULT '',
	alt_name TEXT NOT NULL DEFAULT '',
	top_code TEXT NOT NULL DEFAULT '',
	top_name TEXT NOT NULL DEFAULT '',
	upper_code TEXT NOT NULL DEFAULT '',
	upper_name TEXT NOT NULL DEFAULT '',
	manual_fixed INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS hazard_master (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL DEFAULT '',
	name_kr TEXT NOT NULL DEFAULT '',
	name_en TEXT NOT NULL DEFAULT '',
	abbrev TEXT NOT NULL DEFAULT '',
	nickname TEXT NOT NULL DEFAULT '',
	test_item TEXT NOT NULL DEFAULT '',
	mid_code TEXT NOT NULL DEFAULT '',
	mid_category TEXT NOT NULL DEFAULT '',
	top_code TEXT NOT NULL DEFAULT '',
	top_category TEXT NOT NULL DEFAULT '',
	analyzable INTEGER NOT NULL DEFAULT 0,
	interest INTEGER NOT NULL DEFAULT 0,
	manual_fixed INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS keyword_rules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	keyword TEXT NOT NULL,
	hazard_item TEXT NOT NULL DEFAULT '',
	mid_category TEXT NOT NULL DEFAULT '',
	top_category TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT 'ALL'
);

CREATE TABLE IF NOT EXISTS country_master (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name_en TEXT NOT NULL DEFAULT '',
	name_kr TEXT NOT NULL DEFAULT '',
	iso2 TEXT NOT NULL DEFAULT '',
	iso3 TEXT NOT NULL DEFAULT '',
	iso_num TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_product_code ON product_master(code);
CREATE INDEX IF NOT EXISTS idx_hazard_code ON hazard_master(code);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// querier lets the row scanners run inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ReplaceProducts refreshes the product master inside one transaction,
// keeping manually fixed rows per store.MergeProducts.
func (s *sqliteStore) ReplaceProducts(ctx context.Context, rows []ref.ProductRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	current, err := scanProducts(ctx, tx)
	if err != nil {
		return err
	}
	merged := store.MergeProducts(current, rows)

	if _, err := tx.ExecContext(ctx, "DELETE FROM product_master"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO product_master
		(code, name_kr, name_en, abbrev, alt_name, top_code, top_name, upper_code, upper_name, manual_fixed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range merged {
		if _, err := stmt.ExecContext(ctx,
			r.Code, r.NameKR, r.NameEN, r.Abbrev, r.AltName,
			r.TopCode, r.TopName, r.UpperCode, r.UpperName, boolToInt(r.ManualFixed)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadProducts returns the product master in stored order.
func (s *sqliteStore) LoadProducts(ctx context.Context) ([]ref.ProductRow, error) {
	return scanProducts(ctx, s.db)
}

func scanProducts(ctx context.Context, q querier) ([]ref.ProductRow, error) {
	rows, err := q.QueryContext(ctx, `SELECT code, name_kr, name_en, abbrev, alt_name,
		top_code, top_name, upper_code, upper_name, manual_fixed
		FROM product_master ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ref.ProductRow
	for rows.Next() {
		var r ref.ProductRow
		var fixed int
		if err := rows.Scan(&r.Code, &r.NameKR, &r.NameEN, &r.Abbrev, &r.AltName,
			&r.TopCode, &r.TopName, &r.UpperCode, &r.UpperName, &fixed); err != nil {
			return nil, err
		}
		r.ManualFixed = fixed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceHazards refreshes the hazard master inside one transaction,
// keeping manually fixed rows per store.MergeHazards.
func (s *sqliteStore) ReplaceHazards(ctx context.Context, rows []ref.HazardRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	current, err := scanHazards(ctx, tx)
	if err != nil {
		return err
	}
	merged := store.MergeHazards(current, rows)

	if _, err := tx.ExecContext(ctx, "DELETE FROM hazard_master"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO hazard_master
		(code, name_kr, name_en, abbrev, nickname, test_item,
		 mid_code, mid_category, top_code, top_category, analyzable, interest, manual_fixed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range merged {
		if _, err := stmt.ExecContext(ctx,
			r.Code, r.NameKR, r.NameEN, r.Abbrev, r.Nickname, r.TestItem,
			r.MidCode, r.MidCategory, r.TopCode, r.TopCategory,
			boolToInt(r.Analyzable), boolToInt(r.Interest), boolToInt(r.ManualFixed)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadHazards returns the hazard master in stored order.
func (s *sqliteStore) LoadHazards(ctx context.Context) ([]ref.HazardRow, error) {
	return scanHazards(ctx, s.db)
}

func scanHazards(ctx context.Context, q querier) ([]ref.HazardRow, error) {
	rows, err := q.QueryContext(ctx, `SELECT code, name_kr, name_en, abbrev, nickname, test_item,
		mid_code, mid_category, top_code, top_category, analyzable, interest, manual_fixed
		FROM hazard_master ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ref.HazardRow
	for rows.Next() {
		var r ref.HazardRow
		var analyzable, interest, fixed int
		if err := rows.Scan(&r.Code, &r.NameKR, &r.NameEN, &r.Abbrev, &r.Nickname, &r.TestItem,
			&r.MidCode, &r.MidCategory, &r.TopCode, &r.TopCategory,
			&analyzable, &interest, &fixed); err != nil {
			return nil, err
		}
		r.Analyzable = analyzable != 0
		r.Interest = interest != 0
		r.ManualFixed = fixed != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceRules replaces the keyword rule list wholesale.
func (s *sqliteStore) ReplaceRules(ctx context.Context, rules []kwmap.Rule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM keyword_rules"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO keyword_rules
		(keyword, hazard_item, mid_category, top_category, source)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rules {
		src := r.Source
		if src == "" {
			src = kwmap.SourceAll
		}
		if _, err := stmt.ExecContext(ctx, r.Keyword, r.HazardItem, r.MidCategory, r.TopCategory, src); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadRules returns the keyword rules in stored order.
func (s *sqliteStore) LoadRules(ctx context.Context) ([]kwmap.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT keyword, hazard_item, mid_category, top_category, source
		FROM keyword_rules ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []kwmap.Rule
	for rows.Next() {
		var r kwmap.Rule
		if err := rows.Scan(&r.Keyword, &r.HazardItem, &r.MidCategory, &r.TopCategory, &r.Source); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReplaceCountries replaces the country master wholesale.
func (s *sqliteStore) ReplaceCountries(ctx context.Context, rows []country.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM country_master"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO country_master
		(name_en, name_kr, iso2, iso3, iso_num)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.NameEN, r.NameKR, r.ISO2, r.ISO3, r.ISONum); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadCountries returns the country master in stored order.
func (s *sqliteStore) LoadCountries(ctx context.Context) ([]country.Row, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name_en, name_kr, iso2, iso3, iso_num
		FROM country_master ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []country.Row
	for rows.Next() {
		var r country.Row
		if err := rows.Scan(&r.NameEN, &r.NameKR, &r.ISO2, &r.ISO3, &r.ISONum); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
