// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package regdb builds and queries the embedded SQLite database shipped
// to the offline viewer. The database is written once by the converter
// and treated as read-only by every consumer afterwards.
package regdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

// DatabaseFile is the filename of the built database inside the output
// directory.
const DatabaseFile = "ojk.db"

// Store wraps the regulation database connection.
type Store struct {
	db *sql.DB
}

// Create builds a fresh database at path, removing any previous file
// first. Output files are overwritten, never merged.
func Create(path string) (*Store, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous database: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
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

// Open opens an existing database for querying.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE regulations (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			number_text TEXT NOT NULL,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			effective_date TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			replaces_number TEXT,
			amended_by_number TEXT,
			revoked_by_number TEXT,
			source_url TEXT,
			pdf_path TEXT
		)`,
		`CREATE TABLE articles (
			id INTEGER PRIMARY KEY,
			regulation_id TEXT NOT NULL REFERENCES regulations(id),
			pasal INTEGER NOT NULL,
			ayat TEXT,
			text TEXT NOT NULL
		)`,
		`CREATE INDEX idx_articles_regulation ON articles(regulation_id)`,
		`CREATE INDEX idx_articles_pasal ON articles(regulation_id, pasal)`,
		`CREATE VIRTUAL TABLE articles_fts USING fts5(
			text, content='articles', content_rowid='id', tokenize='unicode61'
		)`,
		`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
			INSERT INTO articles_fts(rowid, text) VALUES (new.id, new.text);
		END`,
		`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
			INSERT INTO articles_fts(articles_fts, rowid, text) VALUES('delete', old.id, old.text);
		END`,
		`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
			INSERT INTO articles_fts(articles_fts, rowid, text) VALUES('delete', old.id, old.text);
			INSERT INTO articles_fts(rowid, text) VALUES (new.id, new.text);
		END`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Insert writes the regulation and its articles in one transaction and
// rebuilds the full-text index.
func (s *Store) Insert(ctx context.Context, reg types.Regulation, articles []types.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO regulations (id, type, number_text, title, year, effective_date,
			status, replaces_number, amended_by_number, revoked_by_number, source_url, pdf_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID, string(reg.Type), reg.Number, reg.Title, reg.Year,
		nullable(reg.EffectiveDate), string(reg.Status),
		nullable(reg.ReplacesNumber), nullable(reg.AmendedByNumber),
		nullable(reg.RevokedByNumber), nullable(reg.SourceURL), reg.PDFPath,
	)
	if err != nil {
		return fmt.Errorf("inserting regulation %s: %w", reg.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (id, regulation_id, pasal, ayat, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx, a.ID, a.RegulationID, a.Pasal, nullable(a.Ayat), a.Text); err != nil {
			return fmt.Errorf("inserting article %d: %w", a.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO articles_fts(articles_fts) VALUES('rebuild')`); err != nil {
		return fmt.Errorf("rebuilding full-text index: %w", err)
	}

	return tx.Commit()
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
