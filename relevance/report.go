package relevance

import "specialist-finder/profile"

// Report is a human-readable relevance assessment for one profile.
type Report struct {
	Name            string
	OverallScore    float64
	BioAnalysis     *ContentAnalysis
	Specializations []string
	Recommendations []string
}

// ProfileReport scores a profile and explains the result, including a
// content breakdown of the bio when one is present.
func (s *Scorer) ProfileReport(p *profile.Profile) Report {
	report := Report{
		Name:            p.Name,
		OverallScore:    s.Score(p),
		Specializations: p.Specializations,
	}

	if p.Bio != "" {
		analysis := s.AnalyzeContent(p.Bio)
		report.BioAnalysis = &analysis
	}

	switch {
	case report.OverallScore >= 0.8:
		report.Recommendations = append(report.Recommendations, "Excellent candidate for AI/tech interviews")
	case report.OverallScore >= 0.6:
		report.Recommendations = append(report.Recommendations, "Good candidate, verify specific AI expertise")
	case report.OverallScore >= 0.4:
		report.Recommendations = append(report.Recommendations, "Moderate relevance, may cover AI occasionally")
	default:
		report.Recommendations = append(report.Recommendations, "Low AI relevance, consider other candidates")
	}

	if report.BioAnalysis != nil {
		if len(report.BioAnalysis.Languages) == 0 {
			report.Recommendations = append(report.Recommendations, "No programming background evident")
		}
		if len(report.BioAnalysis.Concepts) == 0 {
			report.Recommendations = append(report.Recommendations, "Limited technical AI knowledge apparent")
		}
	}

	return report
}
