package relevance

import (
	"math"
	"time"

	"github.com/araddon/dateparse"
)

// Article is a published piece attributed to a profile, used for batch
// relevance scoring. PublishedAt is a free-form date string as emitted by
// scrapers; unparseable or absent dates get the default recency weight.
type Article struct {
	Title       string
	Content     string
	PublishedAt string
}

// Volume bonus: up to +0.2 for prolific authors.
const (
	volumeBonusDivisor = 50.0
	maxVolumeBonus     = 0.2
)

// ScoreArticles computes a recency-weighted average relevance over a
// profile's articles, plus a volume bonus, clamped to [0,1]. An empty list
// scores 0.
func (s *Scorer) ScoreArticles(articles []Article) float64 {
	return s.scoreArticlesAt(articles, time.Now())
}

func (s *Scorer) scoreArticlesAt(articles []Article, now time.Time) float64 {
	if len(articles) == 0 {
		return 0.0
	}

	total := 0.0
	for _, article := range articles {
		analysis := s.AnalyzeContent(article.Title + " " + article.Content)
		total += analysis.OverallRelevance * recencyWeight(article.PublishedAt, now)
	}

	average := total / float64(len(articles))
	volumeBonus := math.Min(float64(len(articles))/volumeBonusDivisor, maxVolumeBonus)

	return math.Min(average+volumeBonus, 1.0)
}

// recencyWeight steps from 1.0 for articles up to a month old down to 0.5
// for anything older than two years or undatable.
func recencyWeight(published string, now time.Time) float64 {
	if published == "" {
		return 0.5
	}

	t, err := dateparse.ParseAny(published)
	if err != nil {
		return 0.5
	}

	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 30:
		return 1.0
	case days <= 90:
		return 0.9
	case days <= 180:
		return 0.8
	case days <= 365:
		return 0.7
	case days <= 730:
		return 0.6
	default:
		return 0.5
	}
}
