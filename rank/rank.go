// Package rank narrows and orders scored profiles against threshold
// criteria. Pure functions over in-memory records; the store applies the
// same criteria at query time for large result sets.
package rank

import (
	"sort"
	"strings"

	"specialist-finder/profile"
)

// Criteria are the filter bounds applied to a result set. Score bounds are
// inclusive; string filters are ignored when empty. Country supports
// comma-separated multi-value matching ("France,Germany").
type Criteria struct {
	MinReputation  float64
	MinRelevance   float64
	Specialization string
	Country        string
	Platform       string
}

// FilterAndRank excludes profiles failing the criteria and returns the
// remainder ordered by descending reputation score. Ties keep their input
// order (stable sort). The input slice is not modified.
func FilterAndRank(profiles []profile.Profile, c Criteria) []profile.Profile {
	countries := splitCountries(c.Country)
	specialization := strings.ToLower(c.Specialization)

	var result []profile.Profile
	for _, p := range profiles {
		if p.ReputationScore < c.MinReputation {
			continue
		}
		if p.AIRelevanceScore < c.MinRelevance {
			continue
		}
		if specialization != "" && !matchesSpecialization(p.Specializations, specialization) {
			continue
		}
		if len(countries) > 0 && !containsString(countries, p.Country) {
			continue
		}
		if c.Platform != "" && p.SourcePlatform != c.Platform {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ReputationScore > result[j].ReputationScore
	})

	return result
}

// matchesSpecialization reports whether any tag contains the wanted
// specialization, case-insensitively.
func matchesSpecialization(tags []string, wanted string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), wanted) {
			return true
		}
	}
	return false
}

func splitCountries(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	countries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			countries = append(countries, trimmed)
		}
	}
	return countries
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
