package engine

import (
	"avialeads_backend/internal/scoring/domain"
)

// qualityPlan is the base follow-up plan per quality tier.
type qualityPlan struct {
	strategy    domain.FollowUpStrategy
	priority    domain.Priority
	actions     []string
	probability int // conversion probability, percent
	daysToClose int
}

var qualityPlans = map[domain.Quality]qualityPlan{
	domain.QualityHot: {
		strategy: domain.FollowUpImmediate,
		priority: domain.PriorityHigh,
		actions: []string{
			"Call within the hour",
			"Send the full course prospectus and fee structure",
			"Offer a campus visit or simulator session",
		},
		probability: 70,
		daysToClose: 14,
	},
	domain.QualityWarm: {
		strategy: domain.FollowUpShortTerm,
		priority: domain.PriorityMedium,
		actions: []string{
			"Schedule a counselor call this week",
			"Send course comparison and financing options",
			"Invite to the next open-house webinar",
		},
		probability: 40,
		daysToClose: 30,
	},
	domain.QualityCold: {
		strategy: domain.FollowUpLongTerm,
		priority: domain.PriorityLow,
		actions: []string{
			"Add to the monthly newsletter",
			"Share student success stories",
			"Retarget with career-path content",
		},
		probability: 15,
		daysToClose: 60,
	},
	domain.QualityUnqualified: {
		strategy: domain.FollowUpNurture,
		priority: domain.PriorityLow,
		actions: []string{
			"Keep in the nurture drip campaign",
			"Re-evaluate after the next site visit",
		},
		probability: 5,
		daysToClose: 180,
	},
}

// Default course tracks when the lead has not named any.
var (
	beginnerCourses = []string{"CPL", "RTR"}
	advancedCourses = []string{"ATPL", "Type Rating"}
)

// recommend derives next-action guidance from the quality tier and profile.
func recommend(p domain.LeadProfile, quality domain.Quality) domain.Recommendations {
	plan := qualityPlans[quality]

	actions := append([]string(nil), plan.actions...)
	if !p.ToolInteractions.QuizCompleted {
		actions = append(actions, "Prompt to take the pilot career quiz")
	}
	if p.Intent.Urgency == domain.UrgencyImmediate && p.Intent.ConsultationRequests == 0 {
		actions = append(actions, "Proactively offer a consultation slot")
	}
	if p.Behavior.ReturnVisitor && p.Behavior.CTAClicks == 0 {
		actions = append(actions, "Test a different CTA on the next visit")
	}

	courses := append([]string(nil), p.Intent.CourseInterest...)
	if len(courses) == 0 {
		switch p.Demographics.ExperienceLevel {
		case domain.ExperienceNone, domain.ExperienceStudent:
			courses = append(courses, beginnerCourses...)
		default:
			courses = append(courses, advancedCourses...)
		}
	}

	probability := plan.probability
	days := plan.daysToClose
	switch p.Intent.Urgency {
	case domain.UrgencyImmediate:
		probability += 20
		days /= 2
		if days < 7 {
			days = 7
		}
	case domain.UrgencyWithin3Months:
		probability += 10
		if days > 90 {
			days = 90
		}
	}
	if probability > 95 {
		probability = 95
	}

	return domain.Recommendations{
		NextActions:               actions,
		FollowUpStrategy:          plan.strategy,
		Priority:                  plan.priority,
		ConversionProbability:     probability,
		EstimatedTimeToConversion: days,
		RecommendedCourses:        courses,
	}
}
