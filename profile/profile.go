// Package profile defines the canonical record for an aggregated
// journalist/researcher profile and helpers shared by the scoring engines
// and the store.
package profile

import (
	"encoding/json"
	"strings"
	"time"
)

// Source platform tags. Every raw record carries exactly one of these.
const (
	PlatformNewsSite      = "news_site"
	PlatformTwitter       = "twitter"
	PlatformLinkedIn      = "linkedin"
	PlatformLinkedInAPI   = "linkedin_api"
	PlatformNewsAPI       = "newsapi"
	PlatformClearbit      = "clearbit"
	PlatformGoogleScholar = "google_scholar"
	PlatformResearchGate  = "researchgate"
	PlatformSerperSearch  = "serper_search"
)

// Profile is the canonical entity for one journalist or researcher,
// aggregated from one or more sources. Zero values mean "absent": empty
// string, zero count, false flag. Name is the only hard-required field.
type Profile struct {
	ID int64

	// Basic information
	Name  string
	Email string
	Bio   string

	// Professional information
	JobTitle           string
	CurrentPublication string
	Specializations    []string

	// Contact and social media
	TwitterHandle string
	LinkedInURL   string
	WebsiteURL    string

	// Location, derived heuristically from free-text location fields
	Country  string
	City     string
	Timezone string

	// Popularity metrics
	ArticleCount        int
	TwitterFollowers    int
	LinkedInConnections int

	// Academic metrics, meaningful only for academic source platforms
	CitationCount    int
	HIndex           int
	PublicationCount int

	// Computed scores in [0,1]; derived data, recomputed whenever input
	// fields change, never independently authoritative.
	ReputationScore  float64
	AIRelevanceScore float64

	ProgrammingExpertise bool
	SourcePlatform       string
	IsVerified           bool

	CreatedAt   time.Time
	LastUpdated time.Time
}

// IsAcademic reports whether the record originates from an academic index,
// which switches the reputation engine into academic mode.
func (p *Profile) IsAcademic() bool {
	return p.SourcePlatform == PlatformGoogleScholar || p.SourcePlatform == PlatformResearchGate
}

// CombinedText concatenates the free-text fields the relevance engine
// scores (bio, job title, specializations, name), lower-cased.
func (p *Profile) CombinedText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Bio, p.JobTitle, strings.Join(p.Specializations, " "), p.Name} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// EncodeSpecializations serializes a tag list to the JSON text form used by
// the specializations column. An empty list encodes to the empty string,
// meaning "no extracted specialization".
func EncodeSpecializations(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeSpecializations parses the stored text form back into a tag list.
// Non-JSON input is treated as a single tag, matching how pre-serialized
// scraper output is accepted.
func DecodeSpecializations(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return []string{s}
	}
	return tags
}
