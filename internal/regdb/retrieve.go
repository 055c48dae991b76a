// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package regdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

// QueryOptions holds parameters for citation lookup and full-text search.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// RegulationID filters by owning regulation.
	RegulationID string

	// Pasal filters by article number. Zero means no filter.
	Pasal int

	// MaxResults limits result count. Zero uses the default of 20.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.RegulationID == "" && q.Pasal == 0
}

// QueryResult is an Article joined with its regulation's citation fields.
type QueryResult struct {
	types.Article
	RegulationNumber string `json:"regulation_number" yaml:"regulation_number"`
	RegulationTitle  string `json:"regulation_title" yaml:"regulation_title"`
}

// Search queries the database with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries come back in citation order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.id, a.regulation_id, a.pasal, a.ayat, a.text,
				r.number_text, r.title
			FROM articles_fts
			JOIN articles a ON a.id = articles_fts.rowid
			JOIN regulations r ON a.regulation_id = r.id
			WHERE articles_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT a.id, a.regulation_id, a.pasal, a.ayat, a.text,
				r.number_text, r.title
			FROM articles a
			JOIN regulations r ON a.regulation_id = r.id
			WHERE 1=1`)
	}

	if opts.RegulationID != "" {
		qb.WriteString(` AND a.regulation_id = ?`)
		args = append(args, opts.RegulationID)
	}

	if opts.Pasal > 0 {
		qb.WriteString(` AND a.pasal = ?`)
		args = append(args, opts.Pasal)
	}

	if useFTS {
		qb.WriteString(` ORDER BY articles_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.regulation_id, a.id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr   QueryResult
			ayat sql.NullString
		)
		if err := rows.Scan(
			&qr.ID, &qr.RegulationID, &qr.Pasal, &ayat, &qr.Text,
			&qr.RegulationNumber, &qr.RegulationTitle,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if ayat.Valid {
			qr.Ayat = ayat.String
		}
		results = append(results, qr)
	}

	return results, rows.Err()
}

// Regulations lists all regulation records in the database.
func (s *Store) Regulations(ctx context.Context) ([]types.Regulation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, number_text, title, year, effective_date, status,
			replaces_number, amended_by_number, revoked_by_number, source_url, pdf_path
		FROM regulations ORDER BY year, number_text`)
	if err != nil {
		return nil, fmt.Errorf("querying regulations: %w", err)
	}
	defer rows.Close()

	var regs []types.Regulation
	for rows.Next() {
		var (
			r                           types.Regulation
			typ, status                 string
			effDate, replaces, amended  sql.NullString
			revoked, sourceURL, pdfPath sql.NullString
		)
		if err := rows.Scan(
			&r.ID, &typ, &r.Number, &r.Title, &r.Year, &effDate, &status,
			&replaces, &amended, &revoked, &sourceURL, &pdfPath,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Type = types.RegulationType(typ)
		r.Status = types.RegulationStatus(status)
		r.EffectiveDate = effDate.String
		r.ReplacesNumber = replaces.String
		r.AmendedByNumber = amended.String
		r.RevokedByNumber = revoked.String
		r.SourceURL = sourceURL.String
		r.PDFPath = pdfPath.String
		regs = append(regs, r)
	}

	return regs, rows.Err()
}
