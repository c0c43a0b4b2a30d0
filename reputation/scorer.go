// Package reputation estimates the credibility and influence of a profile
// on a 0..1 scale from its popularity, publication, and academic metrics.
package reputation

import (
	"math"
	"strings"

	"specialist-finder/profile"
)

// Weights configures the blend of component scores. The five general-mode
// weights sum to 1.0 before the verification bonus; academic mode replaces
// the article/social/engagement components with the academic blend.
type Weights struct {
	ArticleCount       float64
	SocialFollowers    float64
	EngagementRate     float64
	PublicationQuality float64
	ExpertiseRelevance float64

	Academic             float64
	AcademicCitations    float64
	AcademicHIndex       float64
	AcademicPublications float64

	VerificationBonus float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		ArticleCount:       0.3,
		SocialFollowers:    0.2,
		EngagementRate:     0.2,
		PublicationQuality: 0.2,
		ExpertiseRelevance: 0.1,

		Academic:             0.6,
		AcademicCitations:    0.5,
		AcademicHIndex:       0.3,
		AcademicPublications: 0.2,

		VerificationBonus: 0.1,
	}
}

// Normalization ceilings for the logarithmic component scales.
const (
	maxArticles         = 1000.0
	maxSocial           = 100000.0
	maxCitations        = 10000.0
	maxHIndex           = 50.0
	maxPublicationCount = 500.0
)

// Scorer computes reputation scores with injected weights. Stateless and
// safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer builds a Scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the reputation of a profile in [0,1]. relevance is the
// profile's topical relevance score from the relevance engine, which seeds
// the expertise component. Missing fields score as zero; an entirely empty
// general-mode profile lands at a small nonzero floor from the
// unknown-engagement and no-publication defaults. Never fails: output is
// always clamped to [0,1].
func (s *Scorer) Score(p *profile.Profile, relevance float64) float64 {
	publicationScore := s.publicationScore(p.CurrentPublication)
	expertiseScore := s.expertiseScore(relevance, p)

	verificationBonus := 0.0
	if p.IsVerified {
		verificationBonus = s.weights.VerificationBonus
	}

	var score float64
	if p.IsAcademic() {
		academicScore := s.academicScore(p.CitationCount, p.HIndex, p.PublicationCount)
		score = academicScore*s.weights.Academic +
			publicationScore*s.weights.PublicationQuality +
			expertiseScore*s.weights.ExpertiseRelevance +
			verificationBonus
	} else {
		score = s.articleScore(p.ArticleCount)*s.weights.ArticleCount +
			s.socialScore(p.TwitterFollowers, p.LinkedInConnections)*s.weights.SocialFollowers +
			s.engagementScore(p)*s.weights.EngagementRate +
			publicationScore*s.weights.PublicationQuality +
			expertiseScore*s.weights.ExpertiseRelevance +
			verificationBonus
	}

	return clamp01(score)
}

// articleScore maps article counts to [0,1] on a log scale; roughly 1000
// articles reaches the maximum.
func (s *Scorer) articleScore(count int) float64 {
	if count <= 0 {
		return 0.0
	}
	score := math.Log10(float64(count)+1) / math.Log10(maxArticles+1)
	return math.Min(score, 1.0)
}

// socialScore combines follower counts on a log scale. LinkedIn
// connections weigh double: better signal-to-noise than follower counts.
func (s *Scorer) socialScore(twitterFollowers, linkedinConnections int) float64 {
	total := twitterFollowers + linkedinConnections*2
	if total <= 0 {
		return 0.0
	}
	score := math.Log10(float64(total)+1) / math.Log10(maxSocial+1)
	return math.Min(score, 1.0)
}

// engagementScore estimates interaction quality from follower bands; large
// accounts typically see lower engagement rates. No follower data at all
// defaults to 0.5: unknown is not zero.
func (s *Scorer) engagementScore(p *profile.Profile) float64 {
	if p.TwitterFollowers <= 0 {
		return 0.5
	}

	var base float64
	switch {
	case p.TwitterFollowers < 1000:
		base = 0.8
	case p.TwitterFollowers < 10000:
		base = 0.6
	case p.TwitterFollowers < 100000:
		base = 0.4
	default:
		base = 0.2
	}

	if p.IsVerified {
		base += 0.1
	}
	if IsMajorPublication(p.CurrentPublication) {
		base += 0.1
	}

	return math.Min(base, 1.0)
}

// publicationScore looks the publication up in the curated tier lists,
// falling back to an academic-institution check and then to defaults.
func (s *Scorer) publicationScore(publication string) float64 {
	if publication == "" {
		return 0.3
	}

	lower := strings.ToLower(publication)

	for _, pub := range tier1Publications {
		if strings.Contains(lower, pub) {
			return 1.0
		}
	}
	for _, pub := range tier2Publications {
		if strings.Contains(lower, pub) {
			return 0.8
		}
	}
	for _, pub := range tier3Publications {
		if strings.Contains(lower, pub) {
			return 0.6
		}
	}
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return 0.7
		}
	}

	return 0.4
}

// expertiseScore starts from the topical relevance score and adds bonuses
// for programming expertise and high-value specializations.
func (s *Scorer) expertiseScore(relevance float64, p *profile.Profile) float64 {
	score := relevance

	if p.ProgrammingExpertise {
		score += 0.2
	}

	specializationBonus := 0.0
	for _, spec := range p.Specializations {
		specLower := strings.ToLower(spec)
		for _, hv := range highValueSpecializations {
			if specLower == hv {
				specializationBonus += 0.1
				break
			}
		}
	}
	score += math.Min(specializationBonus, 0.3)

	return math.Min(score, 1.0)
}

// academicScore blends citation count, h-index, and publication count.
// All-zero inputs score exactly 0 rather than leaking a log10(1)=0
// artifact through the clamps.
func (s *Scorer) academicScore(citations, hIndex, publications int) float64 {
	if citations == 0 && hIndex == 0 && publications == 0 {
		return 0.0
	}

	citationScore := math.Min(math.Log10(math.Max(float64(citations), 1))/math.Log10(maxCitations), 1.0)
	hIndexScore := math.Min(float64(hIndex)/maxHIndex, 1.0)
	publicationScore := math.Min(math.Log10(math.Max(float64(publications), 1))/math.Log10(maxPublicationCount), 1.0)

	score := citationScore*s.weights.AcademicCitations +
		hIndexScore*s.weights.AcademicHIndex +
		publicationScore*s.weights.AcademicPublications

	return math.Min(score, 1.0)
}

// IsMajorPublication reports whether the publication is a recognized major
// news outlet.
func IsMajorPublication(publication string) bool {
	if publication == "" {
		return false
	}
	lower := strings.ToLower(publication)
	for _, pub := range majorPublications {
		if strings.Contains(lower, pub) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}
