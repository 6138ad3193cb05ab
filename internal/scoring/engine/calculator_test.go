package engine

import (
	"reflect"
	"testing"
	"time"

	"avialeads_backend/internal/scoring/domain"
	"avialeads_backend/internal/scoring/rules"
)

func intPtr(n int) *int { return &n }

func baseProfile() domain.LeadProfile {
	return domain.NewProfile("u-1", "s-1", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
}

func TestScore_Deterministic(t *testing.T) {
	p := baseProfile()
	p.Email = "lead@example.com"
	p.Demographics.Age = intPtr(24)
	p.Behavior.PageViews = 7
	p.Intent.Urgency = domain.UrgencyWithin3Months

	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	table := rules.Default()

	first := Score(p, table, now)
	second := Score(p, table, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical scores for identical input:\n%+v\n%+v", first, second)
	}
}

func TestScoreDemographic_FullFit(t *testing.T) {
	p := baseProfile()
	p.Demographics.Age = intPtr(25)                           // +50
	p.Demographics.EducationLevel = domain.EducationBachelors // +35
	p.Demographics.ExperienceLevel = domain.ExperienceStudent // +35
	p.Demographics.Location = "India"                         // +40
	p.Demographics.IncomeBracket = domain.IncomeUpperMiddle   // +30

	if got := scoreDemographic(p, rules.Default().Demographic); got != 190 {
		t.Fatalf("expected demographic 190, got %d", got)
	}
}

func TestScoreDemographic_AgeDecay(t *testing.T) {
	table := rules.Default().Demographic
	tests := []struct {
		age  int
		want int
	}{
		{18, 50},
		{35, 50},
		{40, 40}, // 50 - 2*5
		{16, 46}, // 50 - 2*2
		{60, 0},  // floored
	}

	for _, tt := range tests {
		p := baseProfile()
		p.Demographics.Age = intPtr(tt.age)
		if got := scoreDemographic(p, table); got != tt.want {
			t.Fatalf("age %d: expected %d, got %d", tt.age, tt.want, got)
		}
	}
}

func TestScoreDemographic_UnknownLocationFallsBackToOther(t *testing.T) {
	p := baseProfile()
	p.Demographics.Location = "Berlin"

	if got := scoreDemographic(p, rules.Default().Demographic); got != 15 {
		t.Fatalf("expected fallback location weight 15, got %d", got)
	}
}

func TestScoreBehavioral_SumsSignals(t *testing.T) {
	p := baseProfile()
	p.Behavior = domain.Behavior{
		PageViews:        12,        // ladder 35
		TimeOnSite:       700,       // ladder 40
		CTAClicks:        2,         // 30
		FormInteractions: 1,         // 20
		Downloads:        1,         // 10
		TrafficSource:    "organic", // 25
		DeviceType:       "desktop", // 15
		ReturnVisitor:    true,      // 20
		SessionCount:     3,         // 15
		ScrollDepth:      80,        // 15
		BounceRate:       0.2,       // 20
	}

	if got := scoreBehavioral(p, rules.Default().Behavioral); got != 245 {
		t.Fatalf("expected behavioral 245, got %d", got)
	}
}

func TestScoreBehavioral_SessionBonusCapped(t *testing.T) {
	p := baseProfile()
	p.Behavior.SessionCount = 20
	p.Behavior.BounceRate = 0.9 // no bounce bonus

	// min(20*5, 25) = 25 and nothing else contributes.
	if got := scoreBehavioral(p, rules.Default().Behavioral); got != 25 {
		t.Fatalf("expected behavioral 25, got %d", got)
	}
}

func TestScoreIntent_SumsAndClampsAt400(t *testing.T) {
	p := baseProfile()
	p.Intent = domain.Intent{
		Urgency:              domain.UrgencyImmediate,         // 120
		Budget:               domain.BudgetFlexible,           // 60
		CourseInterest:       []string{"CPL", "Drone Basics"}, // 60 + 30 default
		ConsultationRequests: 1,                               // 40
		BrochureDownloads:    2,                               // 30
		PriceInquiries:       1,                               // 10
		ComparisonShopping:   true,                            // 15
		SpecificQuestions:    []string{"a", "b", "c", "d"},    // capped at 30
	}

	if got := scoreIntent(p, rules.Default().Intent); got != 395 {
		t.Fatalf("expected intent 395, got %d", got)
	}

	p.Intent.DemoRequests = 1 // +30, pushing past the cap
	if got := scoreIntent(p, rules.Default().Intent); got != 400 {
		t.Fatalf("expected intent clamped to 400, got %d", got)
	}
}

func TestScoreEngagement_NormalizedByThree(t *testing.T) {
	p := baseProfile()
	p.Engagement.QualityScore = 50 // ladder 60
	p.Engagement.Depth = domain.DepthModerate
	p.Engagement.InteractionPattern = domain.PatternBrowser
	p.Engagement.ContentPreferences = []string{"videos"}

	// (60 + 50 + 20) / 3 = 43.33 -> 43
	if got := scoreEngagement(p, rules.Default().Engagement); got != 43 {
		t.Fatalf("expected engagement 43, got %d", got)
	}
}

func TestScoreEngagement_ClampsAt100(t *testing.T) {
	p := baseProfile()
	p.Engagement.QualityScore = 85 // ladder 120
	p.Engagement.Depth = domain.DepthDeep
	p.Engagement.InteractionPattern = domain.PatternDecisionMaker
	p.Engagement.ContentPreferences = []string{"a", "b", "c"}

	// (120 + 90 + 90 + 10) / 3 = 103.33 -> clamped
	if got := scoreEngagement(p, rules.Default().Engagement); got != 100 {
		t.Fatalf("expected engagement clamped to 100, got %d", got)
	}
}

func TestLadderScore_HighestMetRungWins(t *testing.T) {
	ladder := []rules.Threshold{
		{Min: 2, Score: 10},
		{Min: 20, Score: 50},
		{Min: 5, Score: 20},
	}

	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{4, 10},
		{5, 20},
		{19, 20},
		{20, 50},
		{100, 50},
	}

	for _, tt := range tests {
		if got := ladderScore(tt.value, ladder); got != tt.want {
			t.Fatalf("ladderScore(%v): expected %v, got %v", tt.value, tt.want, got)
		}
	}
}

func TestScore_SubScoresNeverExceedCaps(t *testing.T) {
	// A maximal profile must stay within every structural bound.
	p := baseProfile()
	p.Email = "lead@example.com"
	p.Phone = "+919812345678"
	p.Name = "Max"
	p.Demographics = domain.Demographics{
		Age:             intPtr(25),
		Location:        "India",
		EducationLevel:  domain.EducationMasters,
		ExperienceLevel: domain.ExperiencePrivate,
		Role:            "Engineer",
		Industry:        "Aviation",
		IncomeBracket:   domain.IncomeHigh,
	}
	p.Behavior = domain.Behavior{
		PageViews:        100,
		TimeOnSite:       10000,
		CTAClicks:        50,
		FormInteractions: 50,
		Downloads:        50,
		VideoWatches:     50,
		SocialShares:     50,
		SessionCount:     50,
		ScrollDepth:      100,
		BounceRate:       0.1,
		DeviceType:       "desktop",
		TrafficSource:    "referral",
		ReturnVisitor:    true,
	}
	p.Intent = domain.Intent{
		CourseInterest:       []string{"CPL", "ATPL", "Type Rating", "PPL", "RTR"},
		Urgency:              domain.UrgencyImmediate,
		Budget:               domain.BudgetPremium,
		SpecificQuestions:    []string{"a", "b", "c", "d", "e"},
		PriceInquiries:       20,
		BrochureDownloads:    20,
		ConsultationRequests: 20,
		DemoRequests:         20,
		ComparisonShopping:   true,
	}
	p.Engagement.QualityScore = 100
	p.Engagement.Depth = domain.DepthDeep
	p.Engagement.InteractionPattern = domain.PatternDecisionMaker
	p.Engagement.ContentPreferences = []string{"a", "b", "c"}

	score := Score(p, rules.Default(), time.Now())

	if score.SubScores.Demographic > rules.DemographicCap {
		t.Fatalf("demographic %d exceeds cap", score.SubScores.Demographic)
	}
	if score.SubScores.Behavioral > rules.BehavioralCap {
		t.Fatalf("behavioral %d exceeds cap", score.SubScores.Behavioral)
	}
	if score.SubScores.Intent > rules.IntentCap {
		t.Fatalf("intent %d exceeds cap", score.SubScores.Intent)
	}
	if score.SubScores.Engagement > rules.EngagementCap {
		t.Fatalf("engagement %d exceeds cap", score.SubScores.Engagement)
	}
	if score.TotalScore > 1000 {
		t.Fatalf("total %d exceeds 1000", score.TotalScore)
	}
	if score.TotalScore != score.SubScores.Total() {
		t.Fatalf("total %d does not match sub-score sum %d", score.TotalScore, score.SubScores.Total())
	}
	if score.Quality != domain.QualityHot {
		t.Fatalf("expected maximal profile to be hot, got %q", score.Quality)
	}
}

func TestScore_MoreSignalNeverLowersSubScore(t *testing.T) {
	p := baseProfile()
	p.Behavior.PageViews = 3
	table := rules.Default()

	before := scoreBehavioral(p, table.Behavioral)
	p.Behavior.CTAClicks = 2
	after := scoreBehavioral(p, table.Behavioral)

	if after < before {
		t.Fatalf("expected behavioral monotonic, got %d -> %d", before, after)
	}
}
