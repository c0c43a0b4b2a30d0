// Package finder orchestrates the batch enrichment pipeline: raw records
// from source collaborators are scored by both engines, then merged into
// the store.
package finder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"specialist-finder/profile"
	"specialist-finder/rank"
)

// Documented floor scores substituted when scoring a record fails:
// one malformed record never aborts a batch, and a low-but-nonzero score
// keeps the record visible downstream.
const (
	reputationFloor = 0.1
	relevanceFloor  = 0.05
)

// Source is a scraper collaborator emitting raw profile records for one
// platform.
type Source interface {
	Platform() string
	Fetch(ctx context.Context) ([]profile.Profile, error)
}

// Store is the persistence surface the pipeline needs.
type Store interface {
	AddOrUpdate(ctx context.Context, p *profile.Profile) (*profile.Profile, error)
	Search(ctx context.Context, c rank.Criteria, limit int) ([]profile.Profile, error)
	TopProfiles(ctx context.Context, limit int) ([]profile.Profile, error)
}

// ReputationScorer computes a reputation score given the profile and its
// topical relevance.
type ReputationScorer interface {
	Score(p *profile.Profile, relevance float64) float64
}

// RelevanceScorer computes a topical relevance score for a profile.
type RelevanceScorer interface {
	Score(p *profile.Profile) float64
}

// Config tunes the pipeline.
type Config struct {
	// Workers bounds the scoring worker pool. Scoring is CPU-bound text
	// processing with no shared state, so records fan out in parallel.
	Workers int
}

// Summary reports one batch run.
type Summary struct {
	ByPlatform map[string]int
	Fetched    int
	Stored     int
	Duration   time.Duration
}

// ErrNoResults is returned when every source fails and the batch produces
// nothing at all. Individual source or record failures are logged and
// skipped, never fatal.
var ErrNoResults = errors.New("finder: no source produced any records")

// Runner runs enrichment batches.
type Runner struct {
	sources    []Source
	store      Store
	reputation ReputationScorer
	relevance  RelevanceScorer
	workers    int
}

// NewRunner creates a Runner with all dependencies.
func NewRunner(store Store, reputation ReputationScorer, relevance RelevanceScorer, sources []Source, cfg Config) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &Runner{
		sources:    sources,
		store:      store,
		reputation: reputation,
		relevance:  relevance,
		workers:    workers,
	}
}

// Run fetches from every source, scores all records through the worker
// pool, and merges them into the store one at a time (the merge step is a
// read-modify-write and must stay serialized per identity key). Returns
// ErrNoResults only when the whole batch yields nothing from any source.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{ByPlatform: make(map[string]int)}

	failedSources := 0
	var records []profile.Profile
	for _, source := range r.sources {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		fetched, err := source.Fetch(ctx)
		if err != nil {
			slog.Error("finder: source failed", "platform", source.Platform(), "error", err)
			failedSources++
			continue
		}
		slog.Info("finder: source fetched", "platform", source.Platform(), "records", len(fetched))
		summary.ByPlatform[source.Platform()] = len(fetched)
		records = append(records, fetched...)
	}
	summary.Fetched = len(records)

	if len(records) == 0 {
		if failedSources == len(r.sources) && len(r.sources) > 0 {
			return summary, ErrNoResults
		}
		summary.Duration = time.Since(start)
		return summary, nil
	}

	r.scoreAll(records)

	for i := range records {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if r.storeRecord(ctx, &records[i]) {
			summary.Stored++
		}
	}

	summary.Duration = time.Since(start)
	slog.Info("finder: batch complete",
		"fetched", summary.Fetched, "stored", summary.Stored, "duration", summary.Duration)
	return summary, nil
}

// scoreAll annotates every record with both scores, fanning out across the
// worker pool. In-flight scoring of dispatched records always completes;
// cancellation only stops new batches.
func (r *Runner) scoreAll(records []profile.Profile) {
	jobs := make(chan *profile.Profile)
	var wg sync.WaitGroup

	for range r.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				r.scoreRecord(p)
			}
		}()
	}

	for i := range records {
		jobs <- &records[i]
	}
	close(jobs)
	wg.Wait()
}

// scoreRecord computes both scores, substituting the documented floors if
// an engine fails on a malformed record. Scoring must never block
// ingestion.
func (r *Runner) scoreRecord(p *profile.Profile) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("finder: scoring failed, substituting floor scores", "name", p.Name, "cause", rec)
			p.AIRelevanceScore = relevanceFloor
			p.ReputationScore = reputationFloor
		}
	}()

	p.AIRelevanceScore = r.relevance.Score(p)
	p.ReputationScore = r.reputation.Score(p, p.AIRelevanceScore)
}

// storeRecord merges one scored record, retrying once on a transient
// store timeout. A nil result without error means "not stored"; the batch
// moves on.
func (r *Runner) storeRecord(ctx context.Context, p *profile.Profile) bool {
	stored, err := retry.DoWithData(
		func() (*profile.Profile, error) {
			return r.store.AddOrUpdate(ctx, p)
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.MaxJitter(100*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("finder: retrying store", "attempt", n+1, "name", p.Name, "error", err)
		}),
	)
	if err != nil {
		slog.Error("finder: store failed", "name", p.Name, "error", err)
		return false
	}
	return stored != nil
}

// SearchByCriteria queries the store, recomputes scores for rows that were
// never enriched, and applies the full criteria filter and ordering.
func (r *Runner) SearchByCriteria(ctx context.Context, c rank.Criteria, limit int) ([]profile.Profile, error) {
	profiles, err := r.store.Search(ctx, c, limit)
	if err != nil {
		return nil, fmt.Errorf("finder: search: %w", err)
	}

	for i := range profiles {
		if profiles[i].ReputationScore == 0 && profiles[i].AIRelevanceScore == 0 {
			r.scoreRecord(&profiles[i])
		}
	}

	return rank.FilterAndRank(profiles, c), nil
}

// Rescore recomputes both scores for up to limit stored profiles and
// writes the results back. Scores are derived data; this keeps them
// current after engine or table changes.
func (r *Runner) Rescore(ctx context.Context, limit int) (int, error) {
	profiles, err := r.store.TopProfiles(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("finder: rescore: %w", err)
	}

	r.scoreAll(profiles)

	updated := 0
	for i := range profiles {
		if ctx.Err() != nil {
			return updated, ctx.Err()
		}
		if r.storeRecord(ctx, &profiles[i]) {
			updated++
		}
	}
	return updated, nil
}
