package engine

import (
	"math"

	"avialeads_backend/internal/scoring/domain"
)

// confidence measures data completeness: the fraction of an 18-point
// checklist of profile fields that is actually filled in, as a percentage.
// A high score on sparse data is worth less than the same score on a
// complete profile, and this number lets the sales team tell them apart.
func confidence(p domain.LeadProfile) int {
	checks := []bool{
		p.Email != "",
		p.Phone != "",
		p.Name != "",
		p.Demographics.Age != nil,
		p.Demographics.Location != "",
		p.Demographics.EducationLevel != "",
		p.Demographics.ExperienceLevel != "",
		p.Demographics.Role != "",
		p.Demographics.Industry != "",
		p.Demographics.IncomeBracket != "",
		len(p.Intent.CourseInterest) > 0,
		p.Intent.Urgency != domain.UrgencyExploring,
		p.Intent.Budget != "",
		p.Intent.Timeline != domain.TimelineUnknown && p.Intent.Timeline != "",
		p.Behavior.PageViews > 0,
		p.Behavior.TimeOnSite > 0,
		p.Behavior.TrafficSource != "",
		p.ToolInteractions.CompletedToolCount() > 0,
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(checks)) * 100))
}
