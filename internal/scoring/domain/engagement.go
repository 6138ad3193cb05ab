package domain

// Derived engagement fields. These are fixed-band computations, not tunable
// business policy, so the constants live here rather than in the rule table.

// ComputeEngagementQuality derives the 0-100 engagement quality score from
// time on site, discrete actions, page views, scroll depth, and return visits.
func ComputeEngagementQuality(p LeadProfile) int {
	score := 0

	switch {
	case p.Behavior.TimeOnSite > 600:
		score += 25
	case p.Behavior.TimeOnSite > 300:
		score += 15
	case p.Behavior.TimeOnSite > 120:
		score += 10
	}

	if p.Behavior.CTAClicks > 0 {
		score += 20
	}
	if p.Behavior.FormInteractions > 0 {
		score += 25
	}
	if p.Behavior.Downloads > 0 {
		score += 15
	}
	if p.Behavior.VideoWatches > 0 {
		score += 10
	}

	switch {
	case p.Behavior.PageViews > 5:
		score += 15
	case p.Behavior.PageViews > 2:
		score += 10
	}

	switch {
	case p.Behavior.ScrollDepth > 75:
		score += 10
	case p.Behavior.ScrollDepth > 50:
		score += 5
	}

	if p.Behavior.ReturnVisitor {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ComputeEngagementDepth classifies the lead's engagement into surface,
// moderate, or deep using a point system over page views, time on site,
// CTA clicks, and completed tools. Total >= 7 is deep, >= 4 is moderate.
func ComputeEngagementDepth(p LeadProfile) EngagementDepth {
	points := 0

	switch {
	case p.Behavior.PageViews > 10:
		points += 3
	case p.Behavior.PageViews > 5:
		points += 2
	case p.Behavior.PageViews > 2:
		points++
	}

	switch {
	case p.Behavior.TimeOnSite > 900:
		points += 3
	case p.Behavior.TimeOnSite > 300:
		points += 2
	case p.Behavior.TimeOnSite > 120:
		points++
	}

	switch {
	case p.Behavior.CTAClicks > 2:
		points += 2
	case p.Behavior.CTAClicks > 0:
		points++
	}

	switch tools := p.ToolInteractions.CompletedToolCount(); {
	case tools >= 3:
		points += 3
	case tools == 2:
		points += 2
	case tools == 1:
		points++
	}

	switch {
	case points >= 7:
		return DepthDeep
	case points >= 4:
		return DepthModerate
	default:
		return DepthSurface
	}
}

// ComputeInteractionPattern labels the lead's behavioral archetype.
// First match wins, checked in priority order.
func ComputeInteractionPattern(p LeadProfile) InteractionPattern {
	if p.Intent.Urgency == UrgencyImmediate && p.Intent.ConsultationRequests > 0 {
		return PatternDecisionMaker
	}
	if p.Behavior.PageViews > 8 && p.Behavior.Downloads > 1 &&
		(p.ToolInteractions.QuizCompleted || p.ToolInteractions.AssessmentCompleted) {
		return PatternResearcher
	}
	if p.Behavior.SocialShares > 0 && len(p.Intent.SpecificQuestions) > 2 {
		return PatternInfluencer
	}
	return PatternBrowser
}
