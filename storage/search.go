package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"specialist-finder/profile"
	"specialist-finder/rank"
)

// Search queries stored profiles against the given criteria, ordered by
// descending reputation score. The relevance bound is applied in memory by
// the rank package; everything else translates to SQL. limit caps the
// result set (0 means the default of 50).
func (s *Store) Search(ctx context.Context, c rank.Criteria, limit int) ([]profile.Profile, error) {
	if limit <= 0 {
		limit = 50
	}

	builder := sq.Select(profileColumns...).
		From("profiles").
		OrderBy("reputation_score DESC").
		Limit(uint64(limit))

	if c.Specialization != "" {
		builder = builder.Where(sq.Like{"specializations": "%" + c.Specialization + "%"})
	}
	if c.MinReputation > 0 {
		builder = builder.Where(sq.GtOrEq{"reputation_score": c.MinReputation})
	}
	if c.Country != "" {
		var countries []string
		for _, part := range strings.Split(c.Country, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				countries = append(countries, trimmed)
			}
		}
		if len(countries) > 0 {
			builder = builder.Where(sq.Eq{"country": countries})
		}
	}
	if c.Platform != "" {
		builder = builder.Where(sq.Eq{"source_platform": c.Platform})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("storage: build search query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: search profiles: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows)
}
