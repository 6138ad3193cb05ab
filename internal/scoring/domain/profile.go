// Package domain defines the lead profile model and its merge semantics.
// A profile is the accumulated view of everything known about a single
// prospective trainee, built up incrementally from tracking signals.
package domain

import "time"

// EducationLevel classifies the lead's highest completed education.
type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationDiploma    EducationLevel = "diploma"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationOther      EducationLevel = "other"
)

// ExperienceLevel classifies prior aviation experience.
type ExperienceLevel string

const (
	ExperienceNone       ExperienceLevel = "none"
	ExperienceStudent    ExperienceLevel = "student"
	ExperiencePrivate    ExperienceLevel = "private_pilot"
	ExperienceCommercial ExperienceLevel = "commercial_pilot"
	ExperienceMilitary   ExperienceLevel = "military"
)

// IncomeBracket classifies self-reported or inferred household income.
type IncomeBracket string

const (
	IncomeLow         IncomeBracket = "low"
	IncomeMiddle      IncomeBracket = "middle"
	IncomeUpperMiddle IncomeBracket = "upper_middle"
	IncomeHigh        IncomeBracket = "high"
)

// Urgency describes how soon the lead intends to enroll.
type Urgency string

const (
	UrgencyImmediate     Urgency = "immediate"
	UrgencyWithin3Months Urgency = "within_3_months"
	UrgencyWithin6Months Urgency = "within_6_months"
	UrgencyExploring     Urgency = "exploring"
)

// Budget describes the lead's stated or inferred spending posture.
type Budget string

const (
	BudgetConscious Budget = "budget_conscious"
	BudgetModerate  Budget = "moderate"
	BudgetFlexible  Budget = "flexible"
	BudgetPremium   Budget = "premium"
)

// Timeline describes the lead's stated enrollment timeline.
type Timeline string

const (
	TimelineImmediate Timeline = "immediate"
	Timeline3Months   Timeline = "3_months"
	Timeline6Months   Timeline = "6_months"
	Timeline1Year     Timeline = "1_year"
	TimelineUnknown   Timeline = "unknown"
)

// EngagementDepth is a coarse three-level classification of how thoroughly
// a lead has interacted with content.
type EngagementDepth string

const (
	DepthSurface  EngagementDepth = "surface"
	DepthModerate EngagementDepth = "moderate"
	DepthDeep     EngagementDepth = "deep"
)

// InteractionPattern is a behavioral archetype used to tailor follow-up messaging.
type InteractionPattern string

const (
	PatternDecisionMaker InteractionPattern = "decision_maker"
	PatternResearcher    InteractionPattern = "researcher"
	PatternInfluencer    InteractionPattern = "influencer"
	PatternBrowser       InteractionPattern = "browser"
)

// Demographics holds who the lead is.
type Demographics struct {
	Age             *int            `json:"age,omitempty"`
	Location        string          `json:"location,omitempty"`
	EducationLevel  EducationLevel  `json:"educationLevel,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	Role            string          `json:"role,omitempty"`
	Industry        string          `json:"industry,omitempty"`
	IncomeBracket   IncomeBracket   `json:"incomeBracket,omitempty"`
}

// Behavior holds on-site behavioral counters and metrics.
type Behavior struct {
	PageViews        int      `json:"pageViews"`
	CTAClicks        int      `json:"ctaClicks"`
	FormInteractions int      `json:"formInteractions"`
	Downloads        int      `json:"downloads"`
	VideoWatches     int      `json:"videoWatches"`
	SocialShares     int      `json:"socialShares"`
	SessionCount     int      `json:"sessionCount"`
	TimeOnSite       int      `json:"timeOnSite"` // seconds, cumulative
	ScrollDepth      float64  `json:"scrollDepth"` // average, percent 0-100
	BounceRate       float64  `json:"bounceRate"`  // fraction 0-1
	DeviceType       string   `json:"deviceType,omitempty"`
	TrafficSource    string   `json:"trafficSource,omitempty"`
	ReturnVisitor    bool     `json:"returnVisitor"`
	BlogPostsRead    []string `json:"blogPostsRead,omitempty"`
}

// Intent holds purchase-readiness signals.
type Intent struct {
	CourseInterest       []string `json:"courseInterest,omitempty"`
	Urgency              Urgency  `json:"urgency"`
	Budget               Budget   `json:"budget,omitempty"`
	Timeline             Timeline `json:"timeline,omitempty"`
	SpecificQuestions    []string `json:"specificQuestions,omitempty"`
	PriceInquiries       int      `json:"priceInquiries"`
	BrochureDownloads    int      `json:"brochureDownloads"`
	ConsultationRequests int      `json:"consultationRequests"`
	DemoRequests         int      `json:"demoRequests"`
	ComparisonShopping   bool     `json:"comparisonShopping"`
}

// Engagement holds fields derived from the rest of the profile. They are
// recomputed on every merge so they never go stale relative to behavior.
type Engagement struct {
	QualityScore       int                `json:"qualityScore"`
	Depth              EngagementDepth    `json:"depth"`
	ContentPreferences []string           `json:"contentPreferences,omitempty"`
	InteractionPattern InteractionPattern `json:"interactionPattern"`
	PreferredChannel   string             `json:"preferredChannel,omitempty"`
}

// ToolInteractions tracks completion of the site's interactive tools.
type ToolInteractions struct {
	QuizCompleted        bool                   `json:"quizCompleted"`
	AssessmentCompleted  bool                   `json:"assessmentCompleted"`
	CalculatorCompleted  bool                   `json:"calculatorCompleted"`
	EligibilityCompleted bool                   `json:"eligibilityCompleted"`
	Results              map[string]interface{} `json:"results,omitempty"`
}

// LeadProfile is the merged view of a single lead, keyed by UserID.
type LeadProfile struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Name      string `json:"name,omitempty"`

	Demographics     Demographics     `json:"demographics"`
	Behavior         Behavior         `json:"behavior"`
	Intent           Intent           `json:"intent"`
	Engagement       Engagement       `json:"engagement"`
	ToolInteractions ToolInteractions `json:"toolInteractions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProfile creates a profile with zero counters and the enum defaults.
func NewProfile(userID, sessionID string, now time.Time) LeadProfile {
	return LeadProfile{
		UserID:    userID,
		SessionID: sessionID,
		Intent: Intent{
			Urgency:  UrgencyExploring,
			Timeline: TimelineUnknown,
		},
		Engagement: Engagement{
			Depth:              DepthSurface,
			InteractionPattern: PatternBrowser,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CompletedToolCount returns how many interactive tools the lead finished.
func (t ToolInteractions) CompletedToolCount() int {
	count := 0
	for _, done := range []bool{t.QuizCompleted, t.AssessmentCompleted, t.CalculatorCompleted, t.EligibilityCompleted} {
		if done {
			count++
		}
	}
	return count
}
