// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index materializes an exported combined dataset into a SQLite
// database so downstream consumers can query name attributes with plain
// SQL instead of decoding the binary schema.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/namedata/pkg/types"
)

// Store manages the name index SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the SQLite database at cfg.DBPath and creates
// the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "names.db"
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS names (
			name TEXT NOT NULL,
			kind TEXT NOT NULL CHECK (kind IN ('first', 'last')),
			PRIMARY KEY (name, kind)
		)`,
		`CREATE TABLE IF NOT EXISTS countries (
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			country TEXT NOT NULL,
			probability REAL,
			rank INTEGER,
			PRIMARY KEY (name, kind, country)
		)`,
		`CREATE TABLE IF NOT EXISTS genders (
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			gender TEXT NOT NULL,
			probability REAL NOT NULL,
			PRIMARY KEY (name, kind, gender)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_countries_country ON countries(country)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Summary holds row counts from an index build.
type Summary struct {
	Names       int
	CountryRows int
	GenderRows  int
}

// Build replaces the index contents with the given combined dataset. The
// rebuild runs in a single transaction so readers never observe a
// half-built index.
func (s *Store) Build(ctx context.Context, c types.CombinedDataset, w io.Writer) (Summary, error) {
	var summary Summary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"names", "countries", "genders"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return summary, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, ds := range []types.NameDataset{c.First, c.Last} {
		n, err := s.insertDataset(ctx, tx, ds, &summary)
		if err != nil {
			return summary, err
		}
		fmt.Fprintf(w, "indexed %d %s names\n", n, ds.Label)
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing index: %w", err)
	}

	fmt.Fprintf(w, "\nnames: %d, country rows: %d, gender rows: %d\n",
		summary.Names, summary.CountryRows, summary.GenderRows)
	return summary, nil
}

func (s *Store) insertDataset(ctx context.Context, tx *sql.Tx, ds types.NameDataset, summary *Summary) (int, error) {
	nameStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO names (name, kind) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing name insert: %w", err)
	}
	defer nameStmt.Close()

	countryStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO countries (name, kind, country, probability, rank)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing country insert: %w", err)
	}
	defer countryStmt.Close()

	genderStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO genders (name, kind, gender, probability)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing gender insert: %w", err)
	}
	defer genderStmt.Close()

	for _, r := range ds.Records {
		if _, err := nameStmt.ExecContext(ctx, r.Name, ds.Label); err != nil {
			return 0, fmt.Errorf("inserting name %q: %w", r.Name, err)
		}
		summary.Names++

		for country, prob := range r.Country {
			// Rank stays NULL when the source had none for this country.
			var rank any
			if v, ok := r.Rank[country]; ok {
				rank = v
			}
			if _, err := countryStmt.ExecContext(ctx, r.Name, ds.Label, country, prob, rank); err != nil {
				return 0, fmt.Errorf("inserting country row for %q: %w", r.Name, err)
			}
			summary.CountryRows++
		}

		// Ranks for countries with no probability entry still get a row,
		// with probability left NULL.
		for country, rank := range r.Rank {
			if _, ok := r.Country[country]; ok {
				continue
			}
			if _, err := countryStmt.ExecContext(ctx, r.Name, ds.Label, country, nil, rank); err != nil {
				return 0, fmt.Errorf("inserting rank row for %q: %w", r.Name, err)
			}
			summary.CountryRows++
		}

		for gender, prob := range r.Gender {
			if _, err := genderStmt.ExecContext(ctx, r.Name, ds.Label, gender, prob); err != nil {
				return 0, fmt.Errorf("inserting gender row for %q: %w", r.Name, err)
			}
			summary.GenderRows++
		}
	}
	return ds.Len(), nil
}
