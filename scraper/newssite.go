package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"specialist-finder/profile"
)

// Candidate paths for staff listings, tried in order until one yields
// authors.
var authorPaths = []string{
	"/authors",
	"/writers",
	"/staff",
	"/team",
	"/contributors",
	"/about/staff",
}

// Section paths scanned for article bylines as a fallback.
var articlePaths = []string{
	"/tag/ai",
	"/category/technology",
	"/tech",
	"/artificial-intelligence",
}

var authorCardSelectors = []string{
	".author-card",
	".staff-member",
	".writer-profile",
	".contributor",
	".team-member",
	"[class*=\"author\"]",
	"[class*=\"staff\"]",
}

var twitterHandleRe = regexp.MustCompile(`(?:twitter|x)\.com/([^/?#]+)`)

// techTerms gates extracted people to those plausibly covering tech or AI.
var techTerms = []string{
	"artificial intelligence", "machine learning", "ai", "technology", "tech",
	"software", "programming", "coding", "developer", "engineer", "startup",
	"innovation", "digital", "data science", "robotics",
}

// specializationTerms maps a canonical tag to the phrases that imply it.
type specializationTerms struct {
	tag   string
	terms []string
}

var specializationMap = []specializationTerms{
	{"artificial intelligence", []string{"ai", "artificial intelligence", "machine learning"}},
	{"programming", []string{"programming", "coding", "software development", "developer"}},
	{"data science", []string{"data science", "data analysis", "analytics"}},
	{"cybersecurity", []string{"cybersecurity", "security", "privacy"}},
	{"blockchain", []string{"blockchain", "cryptocurrency", "crypto"}},
	{"robotics", []string{"robotics", "automation", "robots"}},
	{"cloud computing", []string{"cloud", "aws", "azure", "google cloud"}},
}

// NewsSite discovers journalists on a set of news domains by walking
// their staff pages, falling back to article bylines in tech sections.
type NewsSite struct {
	client  *Client
	domains []string
}

// NewNewsSite creates a source over the given domains ("techcrunch.com").
func NewNewsSite(client *Client, domains []string) *NewsSite {
	return &NewsSite{client: client, domains: domains}
}

// Platform identifies records from this source.
func (n *NewsSite) Platform() string { return profile.PlatformNewsSite }

// Fetch scrapes every configured domain. A failing domain is logged and
// skipped; Fetch errors only when the context is done.
func (n *NewsSite) Fetch(ctx context.Context) ([]profile.Profile, error) {
	var all []profile.Profile
	for _, domain := range n.domains {
		if ctx.Err() != nil {
			return all, ctx.Err()
		}
		found, err := n.scrapeDomain(ctx, domain)
		if err != nil {
			slog.Warn("scraper: domain failed", "domain", domain, "error", err)
			continue
		}
		slog.Info("scraper: domain scraped", "domain", domain, "profiles", len(found))
		all = append(all, found...)
	}
	return dedupeByName(all), nil
}

func (n *NewsSite) scrapeDomain(ctx context.Context, domain string) ([]profile.Profile, error) {
	return n.scrapeDomainAt(ctx, domain, "https://"+domain)
}

// scrapeDomainAt separates the base URL from the domain so tests can point
// at a local server.
func (n *NewsSite) scrapeDomainAt(ctx context.Context, domain, base string) ([]profile.Profile, error) {
	publication := strings.TrimPrefix(domain, "www.")

	var found []profile.Profile
	for _, path := range authorPaths {
		body, err := n.client.Get(ctx, base+path)
		if err != nil {
			continue
		}
		authors, err := n.extractAuthors(body, publication)
		if err != nil {
			return nil, err
		}
		if len(authors) > 0 {
			found = append(found, authors...)
			break
		}
	}

	for _, path := range articlePaths {
		body, err := n.client.Get(ctx, base+path)
		if err != nil {
			continue
		}
		bylines, err := n.extractBylines(body, publication)
		if err != nil {
			return nil, err
		}
		found = append(found, bylines...)
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("no authors found on %s", domain)
	}
	return found, nil
}

// extractAuthors pulls journalist cards out of a staff listing page.
func (n *NewsSite) extractAuthors(body []byte, publication string) ([]profile.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse staff page: %w", err)
	}

	var found []profile.Profile
	for _, selector := range authorCardSelectors {
		doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
			p := extractAuthorCard(card, publication)
			if p != nil && coversTech(p) {
				found = append(found, *p)
			}
		})
		if len(found) > 0 {
			break
		}
	}
	return found, nil
}

func extractAuthorCard(card *goquery.Selection, publication string) *profile.Profile {
	name := firstText(card, "h1", "h2", "h3", ".name", ".author-name", "[class*=\"name\"]")
	if name == "" {
		return nil
	}

	p := &profile.Profile{
		Name:               name,
		Bio:                firstText(card, ".bio", ".description", ".about", "p"),
		JobTitle:           firstText(card, ".title", ".position", ".job-title", "[class*=\"title\"]"),
		CurrentPublication: publication,
		SourcePlatform:     profile.PlatformNewsSite,
	}

	if mailto, ok := card.Find(`a[href^="mailto:"]`).Attr("href"); ok {
		p.Email = strings.TrimPrefix(mailto, "mailto:")
	}

	card.Find(`a[href*="twitter.com"], a[href*="x.com"], a[href*="linkedin.com"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		switch {
		case strings.Contains(href, "linkedin.com"):
			p.LinkedInURL = href
		default:
			if m := twitterHandleRe.FindStringSubmatch(href); m != nil {
				p.TwitterHandle = m[1]
			}
		}
	})

	p.Specializations = extractSpecializations(p.Bio + " " + p.JobTitle)
	return p
}

// extractBylines collects author names from article listings in tech
// sections. Only name and publication are known here; relevance comes
// from the section itself.
func (n *NewsSite) extractBylines(body []byte, publication string) ([]profile.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse article listing: %w", err)
	}

	var found []profile.Profile
	doc.Find(`article, .article, .post`).Each(func(_ int, article *goquery.Selection) {
		name := firstText(article, ".author", ".byline", "[rel=\"author\"]", "[class*=\"author\"]")
		if name == "" {
			return
		}
		found = append(found, profile.Profile{
			Name:               name,
			CurrentPublication: publication,
			SourcePlatform:     profile.PlatformNewsSite,
			Specializations:    []string{"artificial intelligence", "technology"},
		})
	})
	return found, nil
}

func firstText(s *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(s.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func coversTech(p *profile.Profile) bool {
	text := strings.ToLower(p.Bio + " " + p.JobTitle + " " + strings.Join(p.Specializations, " "))
	for _, term := range techTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func extractSpecializations(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, entry := range specializationMap {
		for _, term := range entry.terms {
			if strings.Contains(lower, term) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		tags = []string{"technology"}
	}
	return tags
}

func dedupeByName(profiles []profile.Profile) []profile.Profile {
	seen := make(map[string]bool, len(profiles))
	var unique []profile.Profile
	for _, p := range profiles {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

// PublicationFromURL derives a publication name from an article URL.
func PublicationFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
