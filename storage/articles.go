package storage

import (
	"context"
	"fmt"
	"time"
)

// Article is a stored published piece attributed to a profile.
type Article struct {
	ID              int64
	ProfileID       int64
	Title           string
	URL             string
	PublishedAt     string
	PublicationName string
	RelevanceScore  float64
	ScrapedAt       time.Time
}

// AddArticle stores an article unless one with the same URL already
// exists, in which case the existing row wins and its ID is returned.
func (s *Store) AddArticle(ctx context.Context, a *Article) (int64, error) {
	if a.URL != "" {
		var existingID int64
		err := s.db.QueryRowContext(ctx,
			`SELECT id FROM articles WHERE url = ?`, a.URL,
		).Scan(&existingID)
		if err == nil {
			return existingID, nil
		}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (profile_id, title, url, published_at, publication_name, relevance_score, scraped_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ProfileID, a.Title, a.URL, a.PublishedAt, a.PublicationName, a.RelevanceScore, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: add article %q: %w", a.Title, err)
	}
	return res.LastInsertId()
}

// SearchRecord logs one executed search for analytics.
type SearchRecord struct {
	QueryText     string
	Platform      string
	ResultsCount  int
	MinReputation float64
	Duration      time.Duration
	Success       bool
	ErrorMessage  string
}

// LogSearch records a search query execution.
func (s *Store) LogSearch(ctx context.Context, r *SearchRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_queries (query_text, platform, results_count, min_reputation, executed_at, duration_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.QueryText, r.Platform, r.ResultsCount, r.MinReputation,
		time.Now().Unix(), r.Duration.Milliseconds(), boolToInt(r.Success), r.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("storage: log search: %w", err)
	}
	return nil
}
