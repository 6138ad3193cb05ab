package domain

import "time"

// Quality buckets a total score into a sales-facing temperature label.
type Quality string

const (
	QualityHot         Quality = "hot"
	QualityWarm        Quality = "warm"
	QualityCold        Quality = "cold"
	QualityUnqualified Quality = "unqualified"
)

// QualityForScore maps a total score to its quality bucket.
// hot >= 700, warm >= 500, cold >= 300, everything else unqualified.
func QualityForScore(total int) Quality {
	switch {
	case total >= 700:
		return QualityHot
	case total >= 500:
		return QualityWarm
	case total >= 300:
		return QualityCold
	default:
		return QualityUnqualified
	}
}

// FollowUpStrategy describes the recommended follow-up cadence.
type FollowUpStrategy string

const (
	FollowUpImmediate FollowUpStrategy = "immediate"
	FollowUpShortTerm FollowUpStrategy = "short_term"
	FollowUpLongTerm  FollowUpStrategy = "long_term"
	FollowUpNurture   FollowUpStrategy = "nurture"
)

// Priority ranks the lead for the sales queue.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Analysis holds the human-readable narrative derived from the sub-scores.
type Analysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	RiskFactors   []string `json:"riskFactors"`
	Opportunities []string `json:"opportunities"`
}

// Qualification is the binary sales-handoff verdict with its reasoning.
type Qualification struct {
	IsQualified             bool     `json:"isQualified"`
	QualificationReasons    []string `json:"qualificationReasons"`
	DisqualificationReasons []string `json:"disqualificationReasons"`
	MissingInformation      []string `json:"missingInformation"`
}

// Recommendations holds next-action guidance for the sales team.
type Recommendations struct {
	NextActions               []string         `json:"nextActions"`
	FollowUpStrategy          FollowUpStrategy `json:"followUpStrategy"`
	Priority                  Priority         `json:"priority"`
	ConversionProbability     int              `json:"conversionProbability"`     // percent, capped at 95
	EstimatedTimeToConversion int              `json:"estimatedTimeToConversion"` // days
	RecommendedCourses        []string         `json:"recommendedCourses"`
}

// SubScores holds the four bounded category scores.
type SubScores struct {
	Demographic int `json:"demographic"` // 0-200
	Behavioral  int `json:"behavioral"`  // 0-300
	Intent      int `json:"intent"`      // 0-400
	Engagement  int `json:"engagement"`  // 0-100
}

// Total sums the sub-scores into the 0-1000 total.
func (s SubScores) Total() int {
	return s.Demographic + s.Behavioral + s.Intent + s.Engagement
}

// LeadScore is the full result of one scoring invocation.
type LeadScore struct {
	UserID          string          `json:"userId"`
	TotalScore      int             `json:"totalScore"`
	SubScores       SubScores       `json:"subScores"`
	Quality         Quality         `json:"quality"`
	Confidence      int             `json:"confidence"` // 0-100, data completeness
	Analysis        Analysis        `json:"analysis"`
	Qualification   Qualification   `json:"qualification"`
	Recommendations Recommendations `json:"recommendations"`
	ScoredAt        time.Time       `json:"scoredAt"`
}
