package engine

import (
	"avialeads_backend/internal/scoring/domain"
)

// Category thresholds for the strengths/weaknesses narrative.
const (
	demographicStrong = 120
	demographicWeak   = 60
	behavioralStrong  = 200
	behavioralWeak    = 100
	intentStrong      = 300
	intentWeak        = 150
	engagementStrong  = 70
	engagementWeak    = 40
)

// analyze derives the human-readable narrative from the sub-scores and the
// raw profile.
func analyze(p domain.LeadProfile, sub domain.SubScores) domain.Analysis {
	a := domain.Analysis{
		Strengths:     []string{},
		Weaknesses:    []string{},
		RiskFactors:   []string{},
		Opportunities: []string{},
	}

	if sub.Demographic > demographicStrong {
		a.Strengths = append(a.Strengths, "Strong demographic fit for pilot training")
	} else if sub.Demographic < demographicWeak {
		a.Weaknesses = append(a.Weaknesses, "Demographic profile is a weak fit")
	}

	if sub.Behavioral > behavioralStrong {
		a.Strengths = append(a.Strengths, "Highly engaged website behavior")
	} else if sub.Behavioral < behavioralWeak {
		a.Weaknesses = append(a.Weaknesses, "Limited website engagement so far")
	}

	if sub.Intent > intentStrong {
		a.Strengths = append(a.Strengths, "Clear enrollment intent signals")
	} else if sub.Intent < intentWeak {
		a.Weaknesses = append(a.Weaknesses, "Few enrollment intent signals")
	}

	if sub.Engagement > engagementStrong {
		a.Strengths = append(a.Strengths, "Deep content engagement")
	} else if sub.Engagement < engagementWeak {
		a.Weaknesses = append(a.Weaknesses, "Shallow content engagement")
	}

	if p.Intent.ComparisonShopping {
		a.RiskFactors = append(a.RiskFactors, "Actively comparing with competitor academies")
	}
	if p.Behavior.BounceRate > 0.7 {
		a.RiskFactors = append(a.RiskFactors, "High bounce rate suggests weak interest")
	}
	if p.Intent.Budget == domain.BudgetConscious {
		a.RiskFactors = append(a.RiskFactors, "Budget constraints may delay enrollment")
	}

	if p.ToolInteractions.QuizCompleted && !p.ToolInteractions.AssessmentCompleted {
		a.Opportunities = append(a.Opportunities, "Invite to complete the pilot aptitude assessment")
	}
	if p.Intent.Urgency == domain.UrgencyImmediate && p.Intent.ConsultationRequests == 0 {
		a.Opportunities = append(a.Opportunities, "Ready to enroll but has not booked a consultation")
	}
	if p.Behavior.ReturnVisitor && p.Behavior.CTAClicks == 0 {
		a.Opportunities = append(a.Opportunities, "Returning visitor who has not responded to any CTA")
	}

	return a
}

// qualify computes the binary sales-handoff verdict. A lead qualifies when
// it accumulates at least 60 qualification points, has no disqualifiers,
// and scores at least 300 overall.
func qualify(p domain.LeadProfile, total int) domain.Qualification {
	q := domain.Qualification{
		QualificationReasons:    []string{},
		DisqualificationReasons: []string{},
		MissingInformation:      []string{},
	}

	points := 0
	if p.Email != "" {
		points += 20
		q.QualificationReasons = append(q.QualificationReasons, "Email address on file")
	} else {
		q.MissingInformation = append(q.MissingInformation, "email")
	}
	if p.Phone != "" {
		points += 15
		q.QualificationReasons = append(q.QualificationReasons, "Phone number on file")
	} else {
		q.MissingInformation = append(q.MissingInformation, "phone")
	}
	if len(p.Intent.CourseInterest) > 0 {
		points += 25
		q.QualificationReasons = append(q.QualificationReasons, "Expressed interest in specific courses")
	} else {
		q.MissingInformation = append(q.MissingInformation, "course interest")
	}
	if p.Intent.Urgency != domain.UrgencyExploring {
		points += 20
		q.QualificationReasons = append(q.QualificationReasons, "Has an enrollment timeframe")
	}
	if p.Behavior.CTAClicks > 0 || p.Behavior.FormInteractions > 0 {
		points += 20
		q.QualificationReasons = append(q.QualificationReasons, "Responded to calls to action")
	}

	if p.Demographics.Age != nil {
		age := *p.Demographics.Age
		if age < 17 || age > 50 {
			q.DisqualificationReasons = append(q.DisqualificationReasons, "Age outside trainable range for commercial licensing")
		}
	}
	if p.Intent.Budget == domain.BudgetConscious && p.Behavior.TimeOnSite < 120 {
		q.DisqualificationReasons = append(q.DisqualificationReasons, "Budget constrained with minimal site engagement")
	}
	if p.Behavior.BounceRate > 0.8 && p.Behavior.SessionCount == 1 {
		q.DisqualificationReasons = append(q.DisqualificationReasons, "Single session with very high bounce rate")
	}

	q.IsQualified = points >= 60 && len(q.DisqualificationReasons) == 0 && total >= 300
	return q
}
