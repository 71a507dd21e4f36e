// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the extracted code set in a SQLite database so
// other tools (and the explain command) can look codes up without
// re-parsing artifacts. The database is rebuilt from scratch on every
// extraction run; there is no incremental update path.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/errdex/pkg/types"
)

// Store manages the error-code SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating the schema if it
// does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
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
		`CREATE TABLE IF NOT EXISTS error_codes (
			code INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			refs TEXT,
			version TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace rebuilds the database content from the finalized record set in
// one transaction, replacing whatever a previous run stored.
func (s *Store) Replace(ctx context.Context, records []types.ErrorCode, info types.SourceInfo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM error_codes`); err != nil {
		return fmt.Errorf("clearing error_codes: %w", err)
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO error_codes (code, name, category, description, refs, version)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, r := range records {
		refs, err := json.Marshal(r.References)
		if err != nil {
			return fmt.Errorf("marshaling references for code %d: %w", r.Code, err)
		}
		if _, err := insert.ExecContext(ctx, r.Code, r.Name, string(r.Category), r.Description, string(refs), r.SourceVersion); err != nil {
			return fmt.Errorf("inserting code %d: %w", r.Code, err)
		}
	}

	meta := map[string]string{
		"source":          info.Source,
		"pages":           info.Pages,
		"version":         info.Version,
		"extraction_date": info.ExtractionDate,
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			return fmt.Errorf("storing meta %s: %w", k, err)
		}
	}

	return tx.Commit()
}

// Lookup returns the record for code, or nil if the code is not in the
// extracted set.
func (s *Store) Lookup(ctx context.Context, code int) (*types.ErrorCode, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT code, name, category, description, refs, version
		 FROM error_codes WHERE code = ?`, code)

	var r types.ErrorCode
	var category, refs string
	err := row.Scan(&r.Code, &r.Name, &category, &r.Description, &refs, &r.SourceVersion)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying code %d: %w", code, err)
	}

	r.Category = types.Category(category)
	if refs != "" && refs != "null" {
		if err := json.Unmarshal([]byte(refs), &r.References); err != nil {
			return nil, fmt.Errorf("decoding references for code %d: %w", code, err)
		}
	}
	return &r, nil
}

// Codes returns every stored code number in ascending order.
func (s *Store) Codes(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code FROM error_codes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying codes: %w", err)
	}
	defer rows.Close()

	var codes []int
	for rows.Next() {
		var code int
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Info returns the source metadata stored by the last extraction run.
func (s *Store) Info(ctx context.Context) (types.SourceInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return types.SourceInfo{}, fmt.Errorf("querying meta: %w", err)
	}
	defer rows.Close()

	var info types.SourceInfo
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return types.SourceInfo{}, fmt.Errorf("scanning meta: %w", err)
		}
		switch k {
		case "source":
			info.Source = v
		case "pages":
			info.Pages = v
		case "version":
			info.Version = v
		case "extraction_date":
			info.ExtractionDate = v
		}
	}
	return info, rows.Err()
}
