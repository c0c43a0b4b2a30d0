package reputation

import "specialist-finder/profile"

// Portfolio is a qualitative breakdown of a profile's reputation factors.
type Portfolio struct {
	OverallScore    float64
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// AnalyzePortfolio scores a profile and explains which factors helped or
// hurt, with follow-up suggestions for outreach. relevance is the
// profile's topical relevance score.
func (s *Scorer) AnalyzePortfolio(p *profile.Profile, relevance float64) Portfolio {
	portfolio := Portfolio{OverallScore: s.Score(p, relevance)}

	if p.ArticleCount > 100 {
		portfolio.Strengths = append(portfolio.Strengths, "High article output")
	}
	if p.TwitterFollowers > 10000 {
		portfolio.Strengths = append(portfolio.Strengths, "Strong social media presence")
	}
	if IsMajorPublication(p.CurrentPublication) {
		portfolio.Strengths = append(portfolio.Strengths, "Works for reputable publication")
	}
	if relevance > 0.7 {
		portfolio.Strengths = append(portfolio.Strengths, "Strong AI/tech expertise")
	}

	if p.ArticleCount < 10 {
		portfolio.Weaknesses = append(portfolio.Weaknesses, "Limited published work")
	}
	if p.TwitterFollowers < 1000 {
		portfolio.Weaknesses = append(portfolio.Weaknesses, "Small social media following")
	}
	if p.CurrentPublication == "" {
		portfolio.Weaknesses = append(portfolio.Weaknesses, "No clear publication affiliation")
	}
	if relevance < 0.3 {
		portfolio.Weaknesses = append(portfolio.Weaknesses, "Limited AI/tech focus")
	}

	if p.ArticleCount < 50 {
		portfolio.Recommendations = append(portfolio.Recommendations, "Look for more published articles to verify expertise")
	}
	if p.Email == "" {
		portfolio.Recommendations = append(portfolio.Recommendations, "Find contact information for outreach")
	}
	if relevance < 0.5 {
		portfolio.Recommendations = append(portfolio.Recommendations, "Verify AI/tech specialization before interview")
	}

	return portfolio
}
