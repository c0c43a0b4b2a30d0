// Package storage persists aggregated profiles to SQLite and implements
// the identity merge policy that reconciles same-entity records arriving
// from different sources.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"specialist-finder/profile"
)

const defaultOpTimeout = 5 * time.Second

// Store provides SQLite-backed persistence for profiles, their articles,
// and the search query log. Merge operations are serialized by a store
// mutex: concurrent create-or-update against the same identity key would
// otherwise race its read-modify-write cycle.
type Store struct {
	db        *sql.DB
	mu        sync.Mutex
	opTimeout time.Duration
}

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS profiles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT DEFAULT '',
	bio TEXT DEFAULT '',
	job_title TEXT DEFAULT '',
	current_publication TEXT DEFAULT '',
	specializations TEXT DEFAULT '',
	twitter_handle TEXT DEFAULT '',
	linkedin_url TEXT DEFAULT '',
	website_url TEXT DEFAULT '',
	country TEXT DEFAULT '',
	city TEXT DEFAULT '',
	timezone TEXT DEFAULT '',
	article_count INTEGER DEFAULT 0,
	twitter_followers INTEGER DEFAULT 0,
	linkedin_connections INTEGER DEFAULT 0,
	citation_count INTEGER DEFAULT 0,
	h_index INTEGER DEFAULT 0,
	publication_count INTEGER DEFAULT 0,
	reputation_score REAL DEFAULT 0,
	ai_relevance_score REAL DEFAULT 0,
	programming_expertise INTEGER DEFAULT 0,
	source_platform TEXT DEFAULT '',
	is_verified INTEGER DEFAULT 0,
	created_at INTEGER DEFAULT 0,
	last_updated INTEGER DEFAULT 0
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email) WHERE email != '';
CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);
CREATE INDEX IF NOT EXISTS idx_profiles_reputation ON profiles(reputation_score);

CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	profile_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	url TEXT DEFAULT '',
	published_at TEXT DEFAULT '',
	publication_name TEXT DEFAULT '',
	relevance_score REAL DEFAULT 0,
	scraped_at INTEGER DEFAULT 0
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_url ON articles(url) WHERE url != '';

CREATE TABLE IF NOT EXISTS search_queries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	query_text TEXT NOT NULL,
	platform TEXT DEFAULT '',
	results_count INTEGER DEFAULT 0,
	min_reputation REAL DEFAULT 0,
	executed_at INTEGER DEFAULT 0,
	duration_ms INTEGER DEFAULT 0,
	success INTEGER DEFAULT 1,
	error_message TEXT DEFAULT ''
);
`

// profileColumns is the scan order shared by every profile query.
var profileColumns = []string{
	"id", "name", "email", "bio", "job_title", "current_publication",
	"specializations", "twitter_handle", "linkedin_url", "website_url",
	"country", "city", "timezone",
	"article_count", "twitter_followers", "linkedin_connections",
	"citation_count", "h_index", "publication_count",
	"reputation_score", "ai_relevance_score",
	"programming_expertise", "source_platform", "is_verified",
	"created_at", "last_updated",
}

// New opens the SQLite database at dbPath, creates the schema if missing,
// and returns a Store.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	// WAL for better concurrent read performance during batch writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: set WAL mode: %w", err)
	}

	if _, err := db.Exec(createTablesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create tables: %w", err)
	}

	return &Store{db: db, opTimeout: defaultOpTimeout}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddOrUpdate resolves the incoming record to an existing profile (exact
// email match first, then exact name match) and merges it per the Merge
// rules, or creates a new profile when nothing matches. Name is the sole
// hard-required field; nameless records are logged and dropped.
//
// The name-only fallback is a known weak identity key: two different
// people sharing a name with no email on file will silently merge.
//
// Returns (nil, nil) when the record was not stored: callers treat the
// absence of a result as "not stored" and continue with the next record.
// A context deadline or cancellation is returned as an error so callers
// can retry the transient failure.
func (s *Store) AddOrUpdate(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		slog.Warn("storage: skipping profile without name")
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	stored, err := s.addOrUpdate(ctx, p)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("storage: add or update %q: %w", p.Name, err)
		}
		slog.Error("storage: add or update failed", "name", p.Name, "error", err)
		return nil, nil
	}
	return stored, nil
}

func (s *Store) addOrUpdate(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	existing, err := findExisting(ctx, tx, p)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		if Merge(existing, p) {
			existing.LastUpdated = now
			if err := updateProfile(ctx, tx, existing); err != nil {
				return nil, fmt.Errorf("update %d: %w", existing.ID, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return existing, nil
	}

	created := *p
	created.CreatedAt = now
	created.LastUpdated = now
	id, err := insertProfile(ctx, tx, &created)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	created.ID = id

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	slog.Debug("storage: profile created", "id", created.ID, "name", created.Name)
	return &created, nil
}

// findExisting looks the incoming record up by its identity keys: email
// when present, then name. First hit wins; there is no fuzzy matching.
func findExisting(ctx context.Context, tx *sql.Tx, p *profile.Profile) (*profile.Profile, error) {
	if p.Email != "" {
		existing, err := queryOne(ctx, tx, "email = ?", p.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return queryOne(ctx, tx, "name = ?", p.Name)
}

func queryOne(ctx context.Context, tx *sql.Tx, where string, arg any) (*profile.Profile, error) {
	query := "SELECT " + strings.Join(profileColumns, ", ") + " FROM profiles WHERE " + where + " LIMIT 1"
	p, err := scanProfile(tx.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return p, nil
}

func insertProfile(ctx context.Context, tx *sql.Tx, p *profile.Profile) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO profiles (name, email, bio, job_title, current_publication,
			specializations, twitter_handle, linkedin_url, website_url,
			country, city, timezone,
			article_count, twitter_followers, linkedin_connections,
			citation_count, h_index, publication_count,
			reputation_score, ai_relevance_score,
			programming_expertise, source_platform, is_verified,
			created_at, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Email, p.Bio, p.JobTitle, p.CurrentPublication,
		profile.EncodeSpecializations(p.Specializations), p.TwitterHandle, p.LinkedInURL, p.WebsiteURL,
		p.Country, p.City, p.Timezone,
		p.ArticleCount, p.TwitterFollowers, p.LinkedInConnections,
		p.CitationCount, p.HIndex, p.PublicationCount,
		p.ReputationScore, p.AIRelevanceScore,
		boolToInt(p.ProgrammingExpertise), p.SourcePlatform, boolToInt(p.IsVerified),
		p.CreatedAt.Unix(), p.LastUpdated.Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func updateProfile(ctx context.Context, tx *sql.Tx, p *profile.Profile) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE profiles SET name = ?, email = ?, bio = ?, job_title = ?,
			current_publication = ?, specializations = ?, twitter_handle = ?,
			linkedin_url = ?, website_url = ?, country = ?, city = ?, timezone = ?,
			article_count = ?, twitter_followers = ?, linkedin_connections = ?,
			citation_count = ?, h_index = ?, publication_count = ?,
			reputation_score = ?, ai_relevance_score = ?,
			programming_expertise = ?, source_platform = ?, is_verified = ?,
			last_updated = ?
		 WHERE id = ?`,
		p.Name, p.Email, p.Bio, p.JobTitle,
		p.CurrentPublication, profile.EncodeSpecializations(p.Specializations), p.TwitterHandle,
		p.LinkedInURL, p.WebsiteURL, p.Country, p.City, p.Timezone,
		p.ArticleCount, p.TwitterFollowers, p.LinkedInConnections,
		p.CitationCount, p.HIndex, p.PublicationCount,
		p.ReputationScore, p.AIRelevanceScore,
		boolToInt(p.ProgrammingExpertise), p.SourcePlatform, boolToInt(p.IsVerified),
		p.LastUpdated.Unix(),
		p.ID,
	)
	return err
}

// GetByID returns one profile, or nil when not found.
func (s *Store) GetByID(ctx context.Context, id int64) (*profile.Profile, error) {
	query := "SELECT " + strings.Join(profileColumns, ", ") + " FROM profiles WHERE id = ?"
	p, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get profile %d: %w", id, err)
	}
	return p, nil
}

// TopProfiles returns up to limit profiles ordered by descending
// reputation score.
func (s *Store) TopProfiles(ctx context.Context, limit int) ([]profile.Profile, error) {
	query := "SELECT " + strings.Join(profileColumns, ", ") +
		" FROM profiles ORDER BY reputation_score DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top profiles: %w", err)
	}
	defer rows.Close()
	return collectProfiles(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*profile.Profile, error) {
	var (
		p                     profile.Profile
		specializations       string
		programmingExpertise  int
		isVerified            int
		createdAt, lastUpdate int64
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Bio, &p.JobTitle, &p.CurrentPublication,
		&specializations, &p.TwitterHandle, &p.LinkedInURL, &p.WebsiteURL,
		&p.Country, &p.City, &p.Timezone,
		&p.ArticleCount, &p.TwitterFollowers, &p.LinkedInConnections,
		&p.CitationCount, &p.HIndex, &p.PublicationCount,
		&p.ReputationScore, &p.AIRelevanceScore,
		&programmingExpertise, &p.SourcePlatform, &isVerified,
		&createdAt, &lastUpdate,
	)
	if err != nil {
		return nil, err
	}
	p.Specializations = profile.DecodeSpecializations(specializations)
	p.ProgrammingExpertise = programmingExpertise != 0
	p.IsVerified = isVerified != 0
	if createdAt > 0 {
		p.CreatedAt = time.Unix(createdAt, 0)
	}
	if lastUpdate > 0 {
		p.LastUpdated = time.Unix(lastUpdate, 0)
	}
	return &p, nil
}

func collectProfiles(rows *sql.Rows) ([]profile.Profile, error) {
	var profiles []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate profiles: %w", err)
	}
	return profiles, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
