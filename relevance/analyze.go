package relevance

import (
	"math"
	"regexp"
	"strings"
)

// Sentiment labels produced by content analysis.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Technical depth labels, keyed on the count of matched concepts and
// languages.
const (
	DepthExpert       = "expert"
	DepthIntermediate = "intermediate"
	DepthBasic        = "basic"
	DepthMinimal      = "minimal"
)

const sentimentThreshold = 0.1

// Match records a matched table term with its weight.
type Match struct {
	Term   string
	Weight float64
}

// KeywordMatch additionally carries the occurrence count, which keyword
// matching tracks for reporting.
type KeywordMatch struct {
	Term   string
	Weight float64
	Count  int
}

// ContentAnalysis is the structured breakdown of a piece of article or bio
// text: which table terms matched, a coarse sentiment label, and a
// technical-depth classification. OverallRelevance uses a flat
// sum-of-weights normalization, deliberately distinct from Score's blended
// formula; downstream consumers depend on each independently.
type ContentAnalysis struct {
	OverallRelevance float64
	Keywords         []KeywordMatch
	Languages        []Match
	Companies        []Match
	Concepts         []Match
	Sentiment        string
	TechnicalDepth   string
}

// AnalyzeContent produces the structured relevance breakdown for arbitrary
// text. Keywords and concepts match by substring; languages and companies
// require whole-word matches to avoid false hits on short names.
func (s *Scorer) AnalyzeContent(content string) ContentAnalysis {
	lower := strings.ToLower(content)

	analysis := ContentAnalysis{
		Sentiment:      classifySentiment(lower),
		TechnicalDepth: DepthMinimal,
	}

	totalWeight := 0.0
	for _, e := range s.tables.Keywords {
		if strings.Contains(lower, e.Term) {
			analysis.Keywords = append(analysis.Keywords, KeywordMatch{
				Term:   e.Term,
				Weight: e.Weight,
				Count:  strings.Count(lower, e.Term),
			})
			totalWeight += e.Weight
		}
	}
	for _, e := range s.languages {
		if e.re.MatchString(lower) {
			analysis.Languages = append(analysis.Languages, Match{Term: e.term, Weight: e.weight})
			totalWeight += e.weight
		}
	}
	for _, e := range s.companies {
		if e.re.MatchString(lower) {
			analysis.Companies = append(analysis.Companies, Match{Term: e.term, Weight: e.weight})
			totalWeight += e.weight
		}
	}
	for _, e := range s.tables.Concepts {
		if strings.Contains(lower, e.Term) {
			analysis.Concepts = append(analysis.Concepts, Match{Term: e.Term, Weight: e.Weight})
			totalWeight += e.Weight
		}
	}

	analysis.OverallRelevance = math.Min(totalWeight/maxConcepts, 1.0)

	technicalTerms := len(analysis.Concepts) + len(analysis.Languages)
	switch {
	case technicalTerms >= 5:
		analysis.TechnicalDepth = DepthExpert
	case technicalTerms >= 3:
		analysis.TechnicalDepth = DepthIntermediate
	case technicalTerms >= 1:
		analysis.TechnicalDepth = DepthBasic
	}

	return analysis
}

var wordRe = regexp.MustCompile(`[a-z']+`)

// classifySentiment computes a polarity in [-1,1] from lexicon hits and
// buckets it with +-0.1 thresholds.
func classifySentiment(lower string) string {
	positive := make(map[string]bool, len(positiveWords))
	for _, w := range positiveWords {
		positive[w] = true
	}
	negative := make(map[string]bool, len(negativeWords))
	for _, w := range negativeWords {
		negative[w] = true
	}

	var pos, neg int
	for _, word := range wordRe.FindAllString(lower, -1) {
		switch {
		case positive[word]:
			pos++
		case negative[word]:
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return SentimentNeutral
	}
	polarity := float64(pos-neg) / float64(total)
	switch {
	case polarity > sentimentThreshold:
		return SentimentPositive
	case polarity < -sentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
