package storage

import "specialist-finder/profile"

// Merge folds an incoming raw record into an existing stored profile,
// in place, and reports whether anything changed. Rules:
//
//   - fields absent on the existing record (zero value) adopt the incoming
//     value: merging only ever fills gaps;
//   - the two computed scores adopt the incoming value only when strictly
//     greater, reflecting the best evidence seen so far;
//   - every other populated field keeps its existing value
//     (first-writer-wins).
func Merge(existing, incoming *profile.Profile) bool {
	changed := false

	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			changed = true
		}
	}
	fillInt := func(dst *int, src int) {
		if *dst == 0 && src != 0 {
			*dst = src
			changed = true
		}
	}

	fill(&existing.Email, incoming.Email)
	fill(&existing.Bio, incoming.Bio)
	fill(&existing.JobTitle, incoming.JobTitle)
	fill(&existing.CurrentPublication, incoming.CurrentPublication)
	fill(&existing.TwitterHandle, incoming.TwitterHandle)
	fill(&existing.LinkedInURL, incoming.LinkedInURL)
	fill(&existing.WebsiteURL, incoming.WebsiteURL)
	fill(&existing.Country, incoming.Country)
	fill(&existing.City, incoming.City)
	fill(&existing.Timezone, incoming.Timezone)
	fill(&existing.SourcePlatform, incoming.SourcePlatform)

	fillInt(&existing.ArticleCount, incoming.ArticleCount)
	fillInt(&existing.TwitterFollowers, incoming.TwitterFollowers)
	fillInt(&existing.LinkedInConnections, incoming.LinkedInConnections)
	fillInt(&existing.CitationCount, incoming.CitationCount)
	fillInt(&existing.HIndex, incoming.HIndex)
	fillInt(&existing.PublicationCount, incoming.PublicationCount)

	if len(existing.Specializations) == 0 && len(incoming.Specializations) > 0 {
		existing.Specializations = incoming.Specializations
		changed = true
	}
	if !existing.ProgrammingExpertise && incoming.ProgrammingExpertise {
		existing.ProgrammingExpertise = true
		changed = true
	}
	if !existing.IsVerified && incoming.IsVerified {
		existing.IsVerified = true
		changed = true
	}

	// Scores only ever increase via merge.
	if incoming.ReputationScore > existing.ReputationScore {
		existing.ReputationScore = incoming.ReputationScore
		changed = true
	}
	if incoming.AIRelevanceScore > existing.AIRelevanceScore {
		existing.AIRelevanceScore = incoming.AIRelevanceScore
		changed = true
	}

	return changed
}
