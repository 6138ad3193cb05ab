// Package rules holds the scoring rule table: the weights and threshold
// ladders that turn profile signals into sub-scores. These numbers are
// business policy, not algorithm, so they live in data that can be tuned
// at runtime (UpdateScoringRules) or overridden from a YAML file at boot.
package rules

import (
	"avialeads_backend/internal/scoring/domain"
)

// Sub-score caps. These are structural (they define the 0-1000 total) and
// are not tunable.
const (
	DemographicCap = 200
	BehavioralCap  = 300
	IntentCap      = 400
	EngagementCap  = 100
)

// Threshold is one rung of a "highest threshold met" ladder.
type Threshold struct {
	Min   float64 `yaml:"min" json:"min"`
	Score float64 `yaml:"score" json:"score"`
}

// AgeRange is the optimal enrollment age window.
type AgeRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// DemographicRules weights who the lead is.
type DemographicRules struct {
	AgeOptimal AgeRange                           `yaml:"ageOptimal" json:"ageOptimal"`
	AgeBonus   float64                            `yaml:"ageBonus" json:"ageBonus"`
	Education  map[domain.EducationLevel]float64  `yaml:"education" json:"education"`
	Experience map[domain.ExperienceLevel]float64 `yaml:"experience" json:"experience"`
	Location   map[string]float64                 `yaml:"location" json:"location"`
	Income     map[domain.IncomeBracket]float64   `yaml:"income" json:"income"`
}

// ActionMultipliers are per-count weights for discrete behavioral actions.
type ActionMultipliers struct {
	CTAClick        float64 `yaml:"ctaClick" json:"ctaClick"`
	FormInteraction float64 `yaml:"formInteraction" json:"formInteraction"`
	Download        float64 `yaml:"download" json:"download"`
	VideoWatch      float64 `yaml:"videoWatch" json:"videoWatch"`
	SocialShare     float64 `yaml:"socialShare" json:"socialShare"`
}

// BehavioralRules weights what the lead did on site.
type BehavioralRules struct {
	PageViews     []Threshold        `yaml:"pageViews" json:"pageViews"`
	TimeOnSite    []Threshold        `yaml:"timeOnSite" json:"timeOnSite"`
	Actions       ActionMultipliers  `yaml:"actions" json:"actions"`
	TrafficSource map[string]float64 `yaml:"trafficSource" json:"trafficSource"`
	Device        map[string]float64 `yaml:"device" json:"device"`
}

// IntentRules weights purchase-readiness signals.
type IntentRules struct {
	Urgency             map[domain.Urgency]float64 `yaml:"urgency" json:"urgency"`
	Budget              map[domain.Budget]float64  `yaml:"budget" json:"budget"`
	CourseInterest      map[string]float64         `yaml:"courseInterest" json:"courseInterest"`
	DefaultCourseWeight float64                    `yaml:"defaultCourseWeight" json:"defaultCourseWeight"`
	Consultation        float64                    `yaml:"consultation" json:"consultation"`
	Demo                float64                    `yaml:"demo" json:"demo"`
	Brochure            float64                    `yaml:"brochure" json:"brochure"`
	PriceInquiry        float64                    `yaml:"priceInquiry" json:"priceInquiry"`
	ComparisonShopping  float64                    `yaml:"comparisonShopping" json:"comparisonShopping"`
}

// EngagementRules weights the derived engagement classification.
type EngagementRules struct {
	Quality []Threshold                           `yaml:"quality" json:"quality"`
	Depth   map[domain.EngagementDepth]float64    `yaml:"depth" json:"depth"`
	Pattern map[domain.InteractionPattern]float64 `yaml:"pattern" json:"pattern"`
}

// Table is the full scoring rule table.
type Table struct {
	Demographic DemographicRules `yaml:"demographic" json:"demographic"`
	Behavioral  BehavioralRules  `yaml:"behavioral" json:"behavioral"`
	Intent      IntentRules      `yaml:"intent" json:"intent"`
	Engagement  EngagementRules  `yaml:"engagement" json:"engagement"`
}

// Patch is a partial rule table. A non-nil category replaces that category
// wholesale; nil categories are left untouched. The category granularity
// keeps the merge contract auditable.
type Patch struct {
	Demographic *DemographicRules `yaml:"demographic,omitempty" json:"demographic,omitempty"`
	Behavioral  *BehavioralRules  `yaml:"behavioral,omitempty" json:"behavioral,omitempty"`
	Intent      *IntentRules      `yaml:"intent,omitempty" json:"intent,omitempty"`
	Engagement  *EngagementRules  `yaml:"engagement,omitempty" json:"engagement,omitempty"`
}

// Merge returns a copy of the table with the patch applied.
func (t Table) Merge(p Patch) Table {
	out := t
	if p.Demographic != nil {
		out.Demographic = *p.Demographic
	}
	if p.Behavioral != nil {
		out.Behavioral = *p.Behavioral
	}
	if p.Intent != nil {
		out.Intent = *p.Intent
	}
	if p.Engagement != nil {
		out.Engagement = *p.Engagement
	}
	return out
}

// Default returns the production rule table for the academy's funnel.
func Default() Table {
	return Table{
		Demographic: DemographicRules{
			// DGCA medical and airline hiring realities make 18-35 the
			// prime enrollment window.
			AgeOptimal: AgeRange{Min: 18, Max: 35},
			AgeBonus:   50,
			Education: map[domain.EducationLevel]float64{
				domain.EducationHighSchool: 20,
				domain.EducationDiploma:    25,
				domain.EducationBachelors:  35,
				domain.EducationMasters:    40,
				domain.EducationOther:      10,
			},
			Experience: map[domain.ExperienceLevel]float64{
				domain.ExperienceNone:       20,
				domain.ExperienceStudent:    35,
				domain.ExperiencePrivate:    40,
				domain.ExperienceCommercial: 25,
				domain.ExperienceMilitary:   30,
			},
			Location: map[string]float64{
				"India":     40,
				"UAE":       30,
				"Nepal":     25,
				"Sri Lanka": 20,
				"Other":     15,
			},
			Income: map[domain.IncomeBracket]float64{
				domain.IncomeLow:         5,
				domain.IncomeMiddle:      20,
				domain.IncomeUpperMiddle: 30,
				domain.IncomeHigh:        35,
			},
		},
		Behavioral: BehavioralRules{
			PageViews: []Threshold{
				{Min: 20, Score: 50},
				{Min: 10, Score: 35},
				{Min: 5, Score: 20},
				{Min: 2, Score: 10},
			},
			TimeOnSite: []Threshold{
				{Min: 1800, Score: 60},
				{Min: 600, Score: 40},
				{Min: 300, Score: 25},
				{Min: 120, Score: 10},
			},
			Actions: ActionMultipliers{
				CTAClick:        15,
				FormInteraction: 20,
				Download:        10,
				VideoWatch:      8,
				SocialShare:     5,
			},
			TrafficSource: map[string]float64{
				"referral": 30,
				"organic":  25,
				"direct":   20,
				"email":    20,
				"social":   10,
				"paid":     5,
			},
			Device: map[string]float64{
				"desktop": 15,
				"tablet":  10,
				"mobile":  5,
			},
		},
		Intent: IntentRules{
			Urgency: map[domain.Urgency]float64{
				domain.UrgencyImmediate:     120,
				domain.UrgencyWithin3Months: 70,
				domain.UrgencyWithin6Months: 40,
				domain.UrgencyExploring:     10,
			},
			Budget: map[domain.Budget]float64{
				domain.BudgetPremium:   80,
				domain.BudgetFlexible:  60,
				domain.BudgetModerate:  40,
				domain.BudgetConscious: 20,
			},
			CourseInterest: map[string]float64{
				"CPL":         60,
				"ATPL":        70,
				"Type Rating": 65,
				"PPL":         35,
				"RTR":         40,
			},
			DefaultCourseWeight: 30,
			Consultation:        40,
			Demo:                30,
			Brochure:            15,
			PriceInquiry:        10,
			// Rewarding comparison shopping while analysis flags it as a
			// risk is deliberate: it mirrors the current business policy.
			ComparisonShopping: 15,
		},
		Engagement: EngagementRules{
			Quality: []Threshold{
				{Min: 80, Score: 120},
				{Min: 60, Score: 90},
				{Min: 40, Score: 60},
				{Min: 20, Score: 30},
			},
			Depth: map[domain.EngagementDepth]float64{
				domain.DepthDeep:     90,
				domain.DepthModerate: 50,
				domain.DepthSurface:  15,
			},
			Pattern: map[domain.InteractionPattern]float64{
				domain.PatternDecisionMaker: 90,
				domain.PatternResearcher:    70,
				domain.PatternInfluencer:    50,
				domain.PatternBrowser:       20,
			},
		},
	}
}
