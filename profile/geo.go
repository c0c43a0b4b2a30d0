package profile

import (
	"regexp"
	"strings"
)

// countryEntry pairs a country label with the lower-case keywords that map
// free-text locations or affiliations onto it. Kept as an ordered slice so
// lookups are deterministic.
type countryEntry struct {
	country  string
	keywords []string
}

var locationCountries = []countryEntry{
	{"USA", []string{"usa", "united states", "america", "us"}},
	{"UK", []string{"uk", "united kingdom", "britain", "england", "london"}},
	{"Canada", []string{"canada", "toronto", "vancouver", "montreal"}},
	{"France", []string{"france", "paris", "lyon"}},
	{"Germany", []string{"germany", "berlin", "munich"}},
	{"Japan", []string{"japan", "tokyo", "osaka"}},
	{"Australia", []string{"australia", "sydney", "melbourne"}},
	{"China", []string{"china", "beijing", "shanghai"}},
	{"India", []string{"india", "mumbai", "delhi", "bangalore"}},
}

// Academic affiliations name institutions more often than cities, so this
// table leans on well-known universities and labs.
var affiliationCountries = []countryEntry{
	{"USA", []string{"usa", "united states", "america", "california", "new york", "stanford", "mit", "harvard"}},
	{"UK", []string{"uk", "united kingdom", "britain", "england", "london", "oxford", "cambridge"}},
	{"Canada", []string{"canada", "toronto", "university of toronto", "mcgill"}},
	{"France", []string{"france", "paris", "sorbonne", "inria"}},
	{"Germany", []string{"germany", "berlin", "munich", "max planck"}},
	{"Japan", []string{"japan", "tokyo", "kyoto university"}},
	{"Australia", []string{"australia", "sydney", "university of melbourne"}},
	{"China", []string{"china", "beijing", "tsinghua", "peking"}},
	{"India", []string{"india", "iit", "indian institute"}},
}

// CountryFromLocation maps a free-text location string ("Paris, France",
// "SF Bay Area") to a country label, or "" when nothing matches.
func CountryFromLocation(location string) string {
	return matchCountry(location, locationCountries)
}

// CountryFromAffiliation maps an academic affiliation string to a country
// label, or "" when nothing matches.
func CountryFromAffiliation(affiliation string) string {
	return matchCountry(affiliation, affiliationCountries)
}

func matchCountry(text string, table []countryEntry) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.country
			}
		}
	}
	return ""
}

// Affiliations commonly end in ", City, ST" or ", City".
var affiliationCityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*[A-Z]{2}`),
	regexp.MustCompile(`,\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)$`),
}

// CityFromAffiliation extracts a city name from an academic affiliation
// string, or "" when no pattern matches.
func CityFromAffiliation(affiliation string) string {
	if affiliation == "" {
		return ""
	}
	for _, pattern := range affiliationCityPatterns {
		if m := pattern.FindStringSubmatch(affiliation); m != nil {
			return m[1]
		}
	}
	return ""
}
