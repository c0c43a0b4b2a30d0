package relevance

import (
	"testing"

	"specialist-finder/profile"
)

func TestProfileReport_HighRelevance(t *testing.T) {
	s := NewScorer(DefaultTables())

	p := &profile.Profile{
		Name: "A. Smith",
		Bio:  "AI journalist covering artificial intelligence, machine learning and deep learning. Writes about OpenAI and Google, codes in Python with TensorFlow and PyTorch, and explains gpt and transformer models.",
	}

	report := s.ProfileReport(p)

	if report.Name != "A. Smith" {
		t.Errorf("Name = %q", report.Name)
	}
	if report.OverallScore != s.Score(p) {
		t.Errorf("OverallScore = %v, want same as Score", report.OverallScore)
	}
	if report.BioAnalysis == nil {
		t.Fatal("expected bio analysis for profile with a bio")
	}
	if len(report.Recommendations) == 0 {
		t.Fatal("expected at least one recommendation")
	}
}

func TestProfileReport_NoBio(t *testing.T) {
	s := NewScorer(DefaultTables())

	report := s.ProfileReport(&profile.Profile{Name: "B. Jones"})

	if report.BioAnalysis != nil {
		t.Error("no bio should mean no bio analysis")
	}
	if len(report.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want just the score verdict", len(report.Recommendations))
	}
	if report.Recommendations[0] != "Low AI relevance, consider other candidates" {
		t.Errorf("verdict = %q", report.Recommendations[0])
	}
}

func TestProfileReport_FlagsMissingTechnicalBackground(t *testing.T) {
	s := NewScorer(DefaultTables())

	p := &profile.Profile{
		Name: "C. Lee",
		Bio:  "Writes about the technology industry and innovation.",
	}

	report := s.ProfileReport(p)

	var noProgramming, noConcepts bool
	for _, r := range report.Recommendations {
		if r == "No programming background evident" {
			noProgramming = true
		}
		if r == "Limited technical AI knowledge apparent" {
			noConcepts = true
		}
	}
	if !noProgramming || !noConcepts {
		t.Errorf("missing technical-gap recommendations: %v", report.Recommendations)
	}
}
