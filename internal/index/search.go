// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/notescan/pkg/types"
)

// SearchResult is one page matching a full-text query, with provenance back
// to the conversion run that produced it.
type SearchResult struct {
	RunID     int64            `json:"run_id"`
	Document  string           `json:"document"`
	CreatedAt time.Time        `json:"created_at"`
	Ordinal   int              `json:"ordinal"`
	Image     string           `json:"image"`
	Status    types.PageStatus `json:"status"`
	Content   string           `json:"content"`
}

// Search runs an FTS5 full-text query over indexed page content, ranked by
// relevance. A max of zero uses the store default.
func (s *Store) Search(ctx context.Context, query string, max int) ([]SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("search query required")
	}
	if max <= 0 {
		max = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.run_id, r.document, r.created_at, p.ordinal, p.image, p.status, p.content
		FROM pages_fts
		JOIN pages p ON p.rowid = pages_fts.rowid
		JOIN runs r ON r.id = p.run_id
		WHERE pages_fts MATCH ?
		ORDER BY pages_fts.rank
		LIMIT ?`,
		query, max,
	)
	if err != nil {
		return nil, fmt.Errorf("querying page index: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			sr        SearchResult
			createdAt string
			status    string
		)
		if err := rows.Scan(&sr.RunID, &sr.Document, &createdAt, &sr.Ordinal, &sr.Image, &status, &sr.Content); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		sr.Status = types.PageStatus(status)
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sr.CreatedAt = t
		}
		results = append(results, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}
