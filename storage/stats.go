package storage

import (
	"context"
	"fmt"
)

// Stats summarizes the stored corpus.
type Stats struct {
	TotalProfiles     int
	TotalArticles     int
	VerifiedProfiles  int
	AvgReputation     float64
	AvgRelevance      float64
	CountriesCovered  int
	PlatformsUsed     int
	TopPublications   []string
	ProfilesByCountry map[string]int
}

// Stats computes database-wide aggregates. Averages ignore zero-scored
// rows so unenriched records do not drag them down.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ProfilesByCountry: map[string]int{}}

	row := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM profiles WHERE is_verified = 1),
			(SELECT COALESCE(AVG(reputation_score), 0) FROM profiles WHERE reputation_score > 0),
			(SELECT COALESCE(AVG(ai_relevance_score), 0) FROM profiles WHERE ai_relevance_score > 0),
			(SELECT COUNT(DISTINCT country) FROM profiles WHERE country != ''),
			(SELECT COUNT(DISTINCT source_platform) FROM profiles WHERE source_platform != '')`)
	if err := row.Scan(
		&stats.TotalProfiles, &stats.TotalArticles, &stats.VerifiedProfiles,
		&stats.AvgReputation, &stats.AvgRelevance,
		&stats.CountriesCovered, &stats.PlatformsUsed,
	); err != nil {
		return nil, fmt.Errorf("storage: stats totals: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT current_publication, COUNT(*) AS n FROM profiles
		WHERE current_publication != ''
		GROUP BY current_publication ORDER BY n DESC LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats publications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pub string
		var n int
		if err := rows.Scan(&pub, &n); err != nil {
			return nil, fmt.Errorf("storage: scan publication: %w", err)
		}
		stats.TopPublications = append(stats.TopPublications, pub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate publications: %w", err)
	}

	countryRows, err := s.db.QueryContext(ctx, `
		SELECT country, COUNT(*) FROM profiles WHERE country != '' GROUP BY country`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats countries: %w", err)
	}
	defer countryRows.Close()
	for countryRows.Next() {
		var country string
		var n int
		if err := countryRows.Scan(&country, &n); err != nil {
			return nil, fmt.Errorf("storage: scan country: %w", err)
		}
		stats.ProfilesByCountry[country] = n
	}
	if err := countryRows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate countries: %w", err)
	}

	return stats, nil
}
