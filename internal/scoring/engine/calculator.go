// Package engine computes lead scores. Everything here is a pure function
// of (profile, rule table): no I/O, no clocks except the caller-supplied
// scoring timestamp, so results are deterministic and trivially testable.
package engine

import (
	"math"
	"sort"
	"time"

	"avialeads_backend/internal/scoring/domain"
	"avialeads_backend/internal/scoring/rules"
)

// Score runs the full scoring pipeline for a profile against a rule table.
func Score(p domain.LeadProfile, t rules.Table, now time.Time) domain.LeadScore {
	sub := domain.SubScores{
		Demographic: scoreDemographic(p, t.Demographic),
		Behavioral:  scoreBehavioral(p, t.Behavioral),
		Intent:      scoreIntent(p, t.Intent),
		Engagement:  scoreEngagement(p, t.Engagement),
	}
	total := sub.Total()
	quality := domain.QualityForScore(total)

	score := domain.LeadScore{
		UserID:     p.UserID,
		TotalScore: total,
		SubScores:  sub,
		Quality:    quality,
		Confidence: confidence(p),
		Analysis:   analyze(p, sub),
		ScoredAt:   now,
	}
	score.Qualification = qualify(p, total)
	score.Recommendations = recommend(p, quality)
	return score
}

// scoreDemographic scores who the lead is. Capped at 200.
func scoreDemographic(p domain.LeadProfile, r rules.DemographicRules) int {
	score := 0.0

	// Age contributes the full bonus inside the optimal window and decays
	// linearly by 2 points per year outside it, floored at zero.
	if p.Demographics.Age != nil {
		age := *p.Demographics.Age
		switch {
		case age >= r.AgeOptimal.Min && age <= r.AgeOptimal.Max:
			score += r.AgeBonus
		case age < r.AgeOptimal.Min:
			score += math.Max(0, r.AgeBonus-2*float64(r.AgeOptimal.Min-age))
		default:
			score += math.Max(0, r.AgeBonus-2*float64(age-r.AgeOptimal.Max))
		}
	}

	if w, ok := r.Education[p.Demographics.EducationLevel]; ok {
		score += w
	}
	if w, ok := r.Experience[p.Demographics.ExperienceLevel]; ok {
		score += w
	}
	if p.Demographics.Location != "" {
		if w, ok := r.Location[p.Demographics.Location]; ok {
			score += w
		} else {
			score += r.Location["Other"]
		}
	}
	if w, ok := r.Income[p.Demographics.IncomeBracket]; ok {
		score += w
	}

	return clamp(score, rules.DemographicCap)
}

// scoreBehavioral scores what the lead did on site. Capped at 300.
func scoreBehavioral(p domain.LeadProfile, r rules.BehavioralRules) int {
	b := p.Behavior
	score := 0.0

	score += ladderScore(float64(b.PageViews), r.PageViews)
	score += ladderScore(float64(b.TimeOnSite), r.TimeOnSite)

	score += float64(b.CTAClicks) * r.Actions.CTAClick
	score += float64(b.FormInteractions) * r.Actions.FormInteraction
	score += float64(b.Downloads) * r.Actions.Download
	score += float64(b.VideoWatches) * r.Actions.VideoWatch
	score += float64(b.SocialShares) * r.Actions.SocialShare

	score += r.TrafficSource[b.TrafficSource]
	score += r.Device[b.DeviceType]

	if b.ReturnVisitor {
		score += 20
	}
	score += math.Min(float64(b.SessionCount)*5, 25)

	switch {
	case b.ScrollDepth > 75:
		score += 15
	case b.ScrollDepth > 50:
		score += 10
	}

	switch {
	case b.BounceRate < 0.3:
		score += 20
	case b.BounceRate < 0.5:
		score += 10
	}

	return clamp(score, rules.BehavioralCap)
}

// scoreIntent scores purchase-readiness. Capped at 400.
func scoreIntent(p domain.LeadProfile, r rules.IntentRules) int {
	i := p.Intent
	score := 0.0

	score += r.Urgency[i.Urgency]
	score += r.Budget[i.Budget]

	for _, course := range i.CourseInterest {
		if w, ok := r.CourseInterest[course]; ok {
			score += w
		} else {
			score += r.DefaultCourseWeight
		}
	}

	score += float64(i.ConsultationRequests) * r.Consultation
	score += float64(i.DemoRequests) * r.Demo
	score += float64(i.BrochureDownloads) * r.Brochure
	score += float64(i.PriceInquiries) * r.PriceInquiry

	if i.ComparisonShopping {
		score += r.ComparisonShopping
	}

	score += math.Min(float64(len(i.SpecificQuestions))*10, 30)

	return clamp(score, rules.IntentCap)
}

// scoreEngagement scores the derived engagement classification. The three
// components are summed and normalized by 3. Capped at 100.
func scoreEngagement(p domain.LeadProfile, r rules.EngagementRules) int {
	e := p.Engagement
	sum := 0.0

	sum += ladderScore(float64(e.QualityScore), r.Quality)
	sum += r.Depth[e.Depth]
	sum += r.Pattern[e.InteractionPattern]
	if len(e.ContentPreferences) > 2 {
		sum += 10
	}

	return clamp(sum/3, rules.EngagementCap)
}

// ladderScore returns the score of the highest rung whose Min the value
// meets or exceeds, or 0 when no rung matches.
func ladderScore(value float64, ladder []rules.Threshold) float64 {
	sorted := append([]rules.Threshold(nil), ladder...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Min > sorted[b].Min })
	for _, rung := range sorted {
		if value >= rung.Min {
			return rung.Score
		}
	}
	return 0
}

func clamp(value float64, limit int) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > limit {
		return limit
	}
	return rounded
}
