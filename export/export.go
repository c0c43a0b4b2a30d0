// Package export writes profile result sets as JSON, CSV, or a Markdown
// table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"specialist-finder/profile"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("export: unsupported format %q", s)
}

// DefaultFilename builds a timestamped export filename.
func DefaultFilename(f Format, now time.Time) string {
	return fmt.Sprintf("journalists_export_%s.%s", now.Format("20060102_150405"), f)
}

// Write encodes profiles to w in the given format.
func Write(w io.Writer, f Format, profiles []profile.Profile) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, profiles)
	case FormatCSV:
		return writeCSV(w, profiles)
	case FormatMarkdown:
		return writeMarkdown(w, profiles)
	}
	return fmt.Errorf("export: unsupported format %q", f)
}

// record is the flat export shape shared by JSON and CSV.
type record struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email,omitempty"`
	JobTitle           string   `json:"job_title,omitempty"`
	CurrentPublication string   `json:"current_publication,omitempty"`
	Specializations    []string `json:"specializations,omitempty"`
	TwitterHandle      string   `json:"twitter_handle,omitempty"`
	LinkedInURL        string   `json:"linkedin_url,omitempty"`
	Country            string   `json:"country,omitempty"`
	City               string   `json:"city,omitempty"`
	ArticleCount       int      `json:"article_count,omitempty"`
	TwitterFollowers   int      `json:"twitter_followers,omitempty"`
	CitationCount      int      `json:"citation_count,omitempty"`
	ReputationScore    float64  `json:"reputation_score"`
	AIRelevanceScore   float64  `json:"ai_relevance_score"`
	SourcePlatform     string   `json:"source_platform,omitempty"`
	IsVerified         bool     `json:"is_verified,omitempty"`
}

func toRecord(p *profile.Profile) record {
	return record{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		JobTitle:           p.JobTitle,
		CurrentPublication: p.CurrentPublication,
		Specializations:    p.Specializations,
		TwitterHandle:      p.TwitterHandle,
		LinkedInURL:        p.LinkedInURL,
		Country:            p.Country,
		City:               p.City,
		ArticleCount:       p.ArticleCount,
		TwitterFollowers:   p.TwitterFollowers,
		CitationCount:      p.CitationCount,
		ReputationScore:    p.ReputationScore,
		AIRelevanceScore:   p.AIRelevanceScore,
		SourcePlatform:     p.SourcePlatform,
		IsVerified:         p.IsVerified,
	}
}

func writeJSON(w io.Writer, profiles []profile.Profile) error {
	records := make([]record, 0, len(profiles))
	for i := range profiles {
		records = append(records, toRecord(&profiles[i]))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, profiles []profile.Profile) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "email", "job_title", "current_publication",
		"specializations", "twitter_handle", "linkedin_url", "country", "city",
		"article_count", "twitter_followers", "citation_count",
		"reputation_score", "ai_relevance_score", "source_platform", "is_verified",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for i := range profiles {
		p := &profiles[i]
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Email,
			p.JobTitle,
			p.CurrentPublication,
			strings.Join(p.Specializations, "; "),
			p.TwitterHandle,
			p.LinkedInURL,
			p.Country,
			p.City,
			strconv.Itoa(p.ArticleCount),
			strconv.Itoa(p.TwitterFollowers),
			strconv.Itoa(p.CitationCount),
			formatScore(p.ReputationScore),
			formatScore(p.AIRelevanceScore),
			p.SourcePlatform,
			strconv.FormatBool(p.IsVerified),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}

var markdownHeaders = []string{"ID", "Name", "Email", "Job Title", "Publication", "Reputation Score", "AI Relevance Score"}

func writeMarkdown(w io.Writer, profiles []profile.Profile) error {
	var b strings.Builder
	b.WriteString("| " + strings.Join(markdownHeaders, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(markdownHeaders)) + "\n")

	for i := range profiles {
		p := &profiles[i]
		row := []string{
			strconv.FormatInt(p.ID, 10),
			mdCell(p.Name),
			mdCell(p.Email),
			mdCell(p.JobTitle),
			mdCell(p.CurrentPublication),
			formatScore(p.ReputationScore),
			formatScore(p.AIRelevanceScore),
		}
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export: write markdown: %w", err)
	}
	return nil
}

// mdCell escapes pipes and flattens newlines so a cell cannot break the
// table layout.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
