// Package relevance scores how topically focused a profile or text is on
// AI and programming subjects, on a 0..1 scale.
package relevance

import (
	"math"
	"regexp"
	"strings"

	"specialist-finder/profile"
)

// Blend weights for the four sub-scores of Score. They sum to 1.0 before
// the explicit-mention bonus.
const (
	keywordWeight     = 0.4
	programmingWeight = 0.25
	companyWeight     = 0.2
	conceptWeight     = 0.15

	explicitMentionBonus = 0.2

	// Normalization ceilings: assumed maximum distinct mentions.
	maxLanguages = 3.0
	maxCompanies = 2.0
	maxConcepts  = 5.0
)

// Phrases that explicitly describe the subject as an AI/ML journalist.
var explicitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ai\s+journalist`),
	regexp.MustCompile(`artificial\s+intelligence\s+reporter`),
	regexp.MustCompile(`machine\s+learning\s+correspondent`),
	regexp.MustCompile(`tech\s+journalist.*ai`),
	regexp.MustCompile(`ai.*journalist`),
	regexp.MustCompile(`covers?\s+artificial\s+intelligence`),
	regexp.MustCompile(`specializes?\s+in\s+ai`),
	regexp.MustCompile(`focuses?\s+on\s+machine\s+learning`),
}

type compiledEntry struct {
	term   string
	weight float64
	re     *regexp.Regexp
}

// Scorer computes topical relevance from injected term tables. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	keywords  []compiledEntry
	languages []compiledEntry
	companies []compiledEntry
	concepts  []compiledEntry
	tables    Tables
}

// NewScorer builds a Scorer from the given tables, precompiling the
// whole-word matchers.
func NewScorer(t Tables) *Scorer {
	return &Scorer{
		keywords:  compileEntries(t.Keywords),
		languages: compileEntries(t.Languages),
		companies: compileEntries(t.Companies),
		concepts:  compileEntries(t.Concepts),
		tables:    t,
	}
}

func compileEntries(entries []Entry) []compiledEntry {
	compiled := make([]compiledEntry, len(entries))
	for i, e := range entries {
		compiled[i] = compiledEntry{
			term:   e.Term,
			weight: e.Weight,
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e.Term) + `\b`),
		}
	}
	return compiled
}

// Score computes the AI/programming relevance of a profile in [0,1] from
// its combined free text. Pure and deterministic: identical input always
// yields an identical score. A profile with no text scores exactly 0.
func (s *Scorer) Score(p *profile.Profile) float64 {
	text := p.CombinedText()
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	score := s.keywordScore(text)*keywordWeight +
		s.programmingScore(text)*programmingWeight +
		s.companyScore(text)*companyWeight +
		s.conceptScore(text)*conceptWeight

	if s.ExplicitAIJournalist(text) {
		score += explicitMentionBonus
	}

	return clamp01(score)
}

// keywordScore sums per-keyword contributions with diminishing returns for
// repeated mentions, normalized by text length so long documents are not
// rewarded for length alone.
func (s *Scorer) keywordScore(text string) float64 {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0.0
	}

	score := 0.0
	for _, e := range s.keywords {
		count := len(e.re.FindAllStringIndex(text, -1))
		if count > 0 {
			score += e.weight * (1 - math.Exp(-float64(count)))
		}
	}

	normalized := score / math.Max(math.Log(float64(wordCount)+1), 1)
	return math.Min(normalized, 1.0)
}

func (s *Scorer) programmingScore(text string) float64 {
	return matchedWeightSum(s.languages, text, maxLanguages)
}

func (s *Scorer) companyScore(text string) float64 {
	return matchedWeightSum(s.companies, text, maxCompanies)
}

func (s *Scorer) conceptScore(text string) float64 {
	return matchedWeightSum(s.concepts, text, maxConcepts)
}

func matchedWeightSum(entries []compiledEntry, text string, ceiling float64) float64 {
	score := 0.0
	for _, e := range entries {
		if e.re.MatchString(text) {
			score += e.weight
		}
	}
	return math.Min(score/ceiling, 1.0)
}

// ExplicitAIJournalist reports whether the text explicitly describes the
// subject as an AI/ML journalist or specialist. Input is expected
// lower-cased, as produced by Profile.CombinedText.
func (s *Scorer) ExplicitAIJournalist(text string) bool {
	for _, pattern := range explicitPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}
