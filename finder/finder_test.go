package finder

import (
	"context"
	"errors"
	"sync"
	"testing"

	"specialist-finder/profile"
	"specialist-finder/rank"
)

type fakeSource struct {
	platform string
	profiles []profile.Profile
	err      error
}

func (f *fakeSource) Platform() string { return f.platform }

func (f *fakeSource) Fetch(ctx context.Context) ([]profile.Profile, error) {
	return f.profiles, f.err
}

type fakeStore struct {
	mu     sync.Mutex
	stored []profile.Profile
	err    error
}

func (f *fakeStore) AddOrUpdate(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if p.Name == "" {
		return nil, nil
	}
	f.stored = append(f.stored, *p)
	return p, nil
}

func (f *fakeStore) Search(ctx context.Context, c rank.Criteria, limit int) ([]profile.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]profile.Profile(nil), f.stored...), nil
}

func (f *fakeStore) TopProfiles(ctx context.Context, limit int) ([]profile.Profile, error) {
	return f.Search(ctx, rank.Criteria{}, limit)
}

type fixedRelevance struct{ score float64 }

func (f fixedRelevance) Score(p *profile.Profile) float64 { return f.score }

type fixedReputation struct{ score float64 }

func (f fixedReputation) Score(p *profile.Profile, relevance float64) float64 { return f.score }

type panickingRelevance struct{}

func (panickingRelevance) Score(p *profile.Profile) float64 { panic("malformed record") }

func TestRun_ScoresAndStores(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{
		platform: profile.PlatformNewsSite,
		profiles: []profile.Profile{{Name: "A"}, {Name: "B"}},
	}

	runner := NewRunner(store, fixedReputation{0.7}, fixedRelevance{0.5}, []Source{source}, Config{Workers: 2})

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Fetched != 2 || summary.Stored != 2 {
		t.Errorf("summary = fetched %d stored %d, want 2/2", summary.Fetched, summary.Stored)
	}
	if summary.ByPlatform[profile.PlatformNewsSite] != 2 {
		t.Errorf("ByPlatform = %v", summary.ByPlatform)
	}
	for _, p := range store.stored {
		if p.ReputationScore != 0.7 || p.AIRelevanceScore != 0.5 {
			t.Errorf("profile %s scores = %.2f/%.2f, want 0.7/0.5", p.Name, p.ReputationScore, p.AIRelevanceScore)
		}
	}
}

func TestRun_AllSourcesFailing(t *testing.T) {
	store := &fakeStore{}
	sources := []Source{
		&fakeSource{platform: "a", err: errors.New("down")},
		&fakeSource{platform: "b", err: errors.New("also down")},
	}

	runner := NewRunner(store, fixedReputation{0.5}, fixedRelevance{0.5}, sources, Config{})

	_, err := runner.Run(context.Background())
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("err = %v, want ErrNoResults", err)
	}
}

func TestRun_PartialSourceFailureContinues(t *testing.T) {
	store := &fakeStore{}
	sources := []Source{
		&fakeSource{platform: "broken", err: errors.New("down")},
		&fakeSource{platform: "ok", profiles: []profile.Profile{{Name: "A"}}},
	}

	runner := NewRunner(store, fixedReputation{0.5}, fixedRelevance{0.5}, sources, Config{})

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Stored != 1 {
		t.Errorf("stored = %d, want 1", summary.Stored)
	}
}

func TestRun_ScoringPanicSubstitutesFloors(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{
		platform: "x",
		profiles: []profile.Profile{{Name: "Broken"}},
	}

	runner := NewRunner(store, fixedReputation{0.9}, panickingRelevance{}, []Source{source}, Config{Workers: 1})

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Stored != 1 {
		t.Fatalf("stored = %d, want 1", summary.Stored)
	}

	got := store.stored[0]
	if got.ReputationScore != reputationFloor {
		t.Errorf("reputation = %v, want floor %v", got.ReputationScore, reputationFloor)
	}
	if got.AIRelevanceScore != relevanceFloor {
		t.Errorf("relevance = %v, want floor %v", got.AIRelevanceScore, relevanceFloor)
	}
}

func TestRun_EmptyBatchWithoutFailuresIsNotAnError(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{platform: "quiet"}

	runner := NewRunner(store, fixedReputation{0.5}, fixedRelevance{0.5}, []Source{source}, Config{})

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Errorf("empty but successful batch returned error: %v", err)
	}
	if summary.Fetched != 0 {
		t.Errorf("fetched = %d, want 0", summary.Fetched)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	store := &fakeStore{}
	source := &fakeSource{platform: "x", profiles: []profile.Profile{{Name: "A"}}}

	runner := NewRunner(store, fixedReputation{0.5}, fixedRelevance{0.5}, []Source{source}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSearchByCriteria_RescoresUnenriched(t *testing.T) {
	store := &fakeStore{stored: []profile.Profile{
		{Name: "scored", ReputationScore: 0.9, AIRelevanceScore: 0.8},
		{Name: "raw"},
	}}

	runner := NewRunner(store, fixedReputation{0.6}, fixedRelevance{0.4}, nil, Config{})

	got, err := runner.SearchByCriteria(context.Background(), rank.Criteria{}, 10)
	if err != nil {
		t.Fatalf("SearchByCriteria: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d profiles, want 2", len(got))
	}

	// Descending reputation: the pre-scored row first, the rescored raw
	// row second with freshly computed scores.
	if got[0].Name != "scored" {
		t.Errorf("first = %s, want scored", got[0].Name)
	}
	if got[1].ReputationScore != 0.6 || got[1].AIRelevanceScore != 0.4 {
		t.Errorf("raw row scores = %.2f/%.2f, want 0.6/0.4", got[1].ReputationScore, got[1].AIRelevanceScore)
	}
}

func TestRescore_UpdatesAll(t *testing.T) {
	store := &fakeStore{stored: []profile.Profile{
		{Name: "a", ReputationScore: 0.1},
		{Name: "b", ReputationScore: 0.2},
	}}

	runner := NewRunner(store, fixedReputation{0.8}, fixedRelevance{0.5}, nil, Config{Workers: 2})

	updated, err := runner.Rescore(context.Background(), 10)
	if err != nil {
		t.Fatalf("Rescore: %v", err)
	}
	if updated != 2 {
		t.Errorf("updated = %d, want 2", updated)
	}
}
