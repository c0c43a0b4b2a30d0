package reputation

import (
	"math"
	"testing"

	"specialist-finder/profile"
)

func TestScore_EmptyProfile(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := &profile.Profile{}

	got := s.Score(p, 0)

	// Unknown engagement defaults to 0.5 and missing publication to 0.3:
	// 0.5*0.2 + 0.3*0.2 = 0.16. Everything else contributes zero.
	want := 0.16
	if math.Abs(got-want) > 0.001 {
		t.Errorf("empty profile score = %.4f, want %.4f", got, want)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	s := NewScorer(DefaultWeights())

	profiles := []*profile.Profile{
		{},
		{ArticleCount: -50, TwitterFollowers: -1},
		{
			Name: "Max Everything", ArticleCount: 1 << 30, TwitterFollowers: 1 << 30,
			LinkedInConnections: 1 << 30, CurrentPublication: "TechCrunch",
			IsVerified: true, ProgrammingExpertise: true,
			Specializations: []string{"artificial intelligence", "machine learning", "robotics", "data science"},
		},
		{
			SourcePlatform: profile.PlatformGoogleScholar,
			CitationCount:  1 << 30, HIndex: 10000, PublicationCount: 1 << 30,
			IsVerified: true,
		},
	}

	for _, p := range profiles {
		for _, relevance := range []float64{-1, 0, 0.5, 1, 100} {
			got := s.Score(p, relevance)
			if got < 0 || got > 1 {
				t.Errorf("Score(%+v, %v) = %v, out of [0,1]", p, relevance, got)
			}
		}
	}
}

func TestScore_MoreArticlesNeverLower(t *testing.T) {
	s := NewScorer(DefaultWeights())

	prev := -1.0
	for _, count := range []int{0, 1, 5, 50, 500, 1000, 5000} {
		p := &profile.Profile{Name: "A", ArticleCount: count}
		got := s.Score(p, 0.5)
		if got < prev {
			t.Errorf("score decreased at article_count=%d: %.4f < %.4f", count, got, prev)
		}
		prev = got
	}
}

func TestScore_VerificationBonus(t *testing.T) {
	s := NewScorer(DefaultWeights())

	base := &profile.Profile{Name: "A", ArticleCount: 100, TwitterFollowers: 5000}
	verified := &profile.Profile{Name: "A", ArticleCount: 100, TwitterFollowers: 5000, IsVerified: true}

	diff := s.Score(verified, 0.5) - s.Score(base, 0.5)

	// 0.1 flat bonus plus 0.1 engagement band bump weighted at 0.2.
	want := 0.1 + 0.1*0.2
	if math.Abs(diff-want) > 0.001 {
		t.Errorf("verification lift = %.4f, want %.4f", diff, want)
	}
}

func TestEngagementScore_FollowerBands(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		followers int
		want      float64
	}{
		{0, 0.5},
		{500, 0.8},
		{999, 0.8},
		{1000, 0.6},
		{9999, 0.6},
		{10000, 0.4},
		{99999, 0.4},
		{100000, 0.2},
		{5000000, 0.2},
	}

	for _, tt := range tests {
		p := &profile.Profile{TwitterFollowers: tt.followers}
		if got := s.engagementScore(p); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("engagementScore(followers=%d) = %.2f, want %.2f", tt.followers, got, tt.want)
		}
	}
}

func TestPublicationScore_Tiers(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		publication string
		want        float64
	}{
		{"TechCrunch", 1.0},
		{"The New York Times", 1.0},
		{"VentureBeat", 0.8},
		{"TechRadar", 0.6},
		{"Stanford University", 0.7},
		{"Random Blog", 0.4},
		{"", 0.3},
	}

	for _, tt := range tests {
		if got := s.publicationScore(tt.publication); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("publicationScore(%q) = %.2f, want %.2f", tt.publication, got, tt.want)
		}
	}
}

func TestScore_AcademicMode(t *testing.T) {
	s := NewScorer(DefaultWeights())

	p := &profile.Profile{
		Name:               "Dr. Chen",
		SourcePlatform:     profile.PlatformGoogleScholar,
		CitationCount:      1000,
		HIndex:             25,
		PublicationCount:   50,
		CurrentPublication: "Stanford University",
	}

	citation := math.Log10(1000) / math.Log10(10000) // 0.75
	hIndex := 25.0 / 50.0
	pubs := math.Log10(50) / math.Log10(500)
	academic := citation*0.5 + hIndex*0.3 + pubs*0.2

	want := academic*0.6 + 0.7*0.2 + 0.5*0.1
	if got := s.Score(p, 0.5); math.Abs(got-want) > 0.001 {
		t.Errorf("academic score = %.4f, want %.4f", got, want)
	}
}

func TestAcademicScore_AllZeroIsZero(t *testing.T) {
	s := NewScorer(DefaultWeights())
	if got := s.academicScore(0, 0, 0); got != 0 {
		t.Errorf("academicScore(0,0,0) = %v, want 0", got)
	}
}

func TestExpertiseScore_SpecializationBonusCapped(t *testing.T) {
	s := NewScorer(DefaultWeights())

	p := &profile.Profile{
		Specializations: []string{
			"artificial intelligence", "machine learning", "programming",
			"data science", "robotics",
		},
	}

	// Five high-value specializations would give 0.5, capped at 0.3.
	want := 0.2 + 0.3
	if got := s.expertiseScore(0.2, p); math.Abs(got-want) > 0.001 {
		t.Errorf("expertiseScore = %.4f, want %.4f", got, want)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(DefaultWeights())
	p := &profile.Profile{
		Name: "A. Smith", ArticleCount: 120, TwitterFollowers: 8000,
		CurrentPublication: "Wired", IsVerified: true,
		Specializations: []string{"artificial intelligence"},
	}

	first := s.Score(p, 0.6)
	for i := 0; i < 100; i++ {
		if got := s.Score(p, 0.6); got != first {
			t.Fatalf("run %d: score %v != first %v", i, got, first)
		}
	}
}

func TestIsMajorPublication(t *testing.T) {
	if !IsMajorPublication("TechCrunch") {
		t.Error("TechCrunch should be major")
	}
	if IsMajorPublication("My Personal Blog") {
		t.Error("personal blog should not be major")
	}
	if IsMajorPublication("") {
		t.Error("empty publication should not be major")
	}
}
