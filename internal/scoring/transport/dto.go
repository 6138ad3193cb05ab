// Package transport defines the HTTP request and response DTOs for the
// scoring module. Requests carry validation tags; domain conversion keeps
// the service layer free of transport concerns.
package transport

import (
	"avialeads_backend/internal/scoring/domain"
	"avialeads_backend/internal/scoring/rules"
)

// UpdateProfileRequest is a partial update to a lead profile. All fields
// are optional; omitted fields leave the stored value untouched.
type UpdateProfileRequest struct {
	SessionID string  `json:"sessionId" validate:"required,min=1,max=128"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`

	Demographics     *DemographicsRequest     `json:"demographics,omitempty"`
	Behavior         *BehaviorRequest         `json:"behavior,omitempty"`
	Intent           *IntentRequest           `json:"intent,omitempty"`
	Engagement       *EngagementRequest       `json:"engagement,omitempty"`
	ToolInteractions *ToolInteractionsRequest `json:"toolInteractions,omitempty"`
}

// DemographicsRequest carries the demographics block of a profile update.
type DemographicsRequest struct {
	Age             *int    `json:"age,omitempty" validate:"omitempty,min=0,max=120"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=100"`
	EducationLevel  *string `json:"educationLevel,omitempty" validate:"omitempty,oneof=high_school diploma bachelors masters other"`
	ExperienceLevel *string `json:"experienceLevel,omitempty" validate:"omitempty,oneof=none student private_pilot commercial_pilot military"`
	Role            *string `json:"role,omitempty" validate:"omitempty,max=100"`
	Industry        *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	IncomeBracket   *string `json:"incomeBracket,omitempty" validate:"omitempty,oneof=low middle upper_middle high"`
}

// BehaviorRequest carries the behavior block of a profile update. Counters
// are absolute values reported by the tracking client, not deltas.
type BehaviorRequest struct {
	PageViews        *int     `json:"pageViews,omitempty" validate:"omitempty,min=0"`
	CTAClicks        *int     `json:"ctaClicks,omitempty" validate:"omitempty,min=0"`
	FormInteractions *int     `json:"formInteractions,omitempty" validate:"omitempty,min=0"`
	Downloads        *int     `json:"downloads,omitempty" validate:"omitempty,min=0"`
	VideoWatches     *int     `json:"videoWatches,omitempty" validate:"omitempty,min=0"`
	SocialShares     *int     `json:"socialShares,omitempty" validate:"omitempty,min=0"`
	SessionCount     *int     `json:"sessionCount,omitempty" validate:"omitempty,min=0"`
	TimeOnSite       *int     `json:"timeOnSite,omitempty" validate:"omitempty,min=0"`
	ScrollDepth      *float64 `json:"scrollDepth,omitempty" validate:"omitempty,min=0,max=100"`
	BounceRate       *float64 `json:"bounceRate,omitempty" validate:"omitempty,min=0,max=1"`
	DeviceType       *string  `json:"deviceType,omitempty" validate:"omitempty,oneof=desktop tablet mobile"`
	TrafficSource    *string  `json:"trafficSource,omitempty" validate:"omitempty,oneof=organic paid social referral direct email"`
	ReturnVisitor    *bool    `json:"returnVisitor,omitempty"`
	BlogPostsRead    []string `json:"blogPostsRead,omitempty" validate:"omitempty,dive,max=300"`
}

// IntentRequest carries the intent block of a profile update.
type IntentRequest struct {
	CourseInterest       []string `json:"courseInterest,omitempty" validate:"omitempty,dive,max=100"`
	Urgency              *string  `json:"urgency,omitempty" validate:"omitempty,oneof=immediate within_3_months within_6_months exploring"`
	Budget               *string  `json:"budget,omitempty" validate:"omitempty,oneof=budget_conscious moderate flexible premium"`
	Timeline             *string  `json:"timeline,omitempty" validate:"omitempty,oneof=immediate 3_months 6_months 1_year unknown"`
	SpecificQuestions    []string `json:"specificQuestions,omitempty" validate:"omitempty,dive,max=500"`
	PriceInquiries       *int     `json:"priceInquiries,omitempty" validate:"omitempty,min=0"`
	BrochureDownloads    *int     `json:"brochureDownloads,omitempty" validate:"omitempty,min=0"`
	ConsultationRequests *int     `json:"consultationRequests,omitempty" validate:"omitempty,min=0"`
	DemoRequests         *int     `json:"demoRequests,omitempty" validate:"omitempty,min=0"`
	ComparisonShopping   *bool    `json:"comparisonShopping,omitempty"`
}

// EngagementRequest carries the caller-settable engagement fields. The
// derived fields (quality score, depth, interaction pattern) are computed
// server side and rejected if supplied.
type EngagementRequest struct {
	ContentPreferences []string `json:"contentPreferences,omitempty" validate:"omitempty,dive,max=100"`
	PreferredChannel   *string  `json:"preferredChannel,omitempty" validate:"omitempty,max=50"`
}

// ToolInteractionsRequest carries the interactive-tool block of a profile
// update.
type ToolInteractionsRequest struct {
	QuizCompleted        *bool                  `json:"quizCompleted,omitempty"`
	AssessmentCompleted  *bool                  `json:"assessmentCompleted,omitempty"`
	CalculatorCompleted  *bool                  `json:"calculatorCompleted,omitempty"`
	EligibilityCompleted *bool                  `json:"eligibilityCompleted,omitempty"`
	Results              map[string]interface{} `json:"results,omitempty"`
}

// ToDomain converts the request into a domain profile update.
func (r UpdateProfileRequest) ToDomain() domain.ProfileUpdate {
	update := domain.ProfileUpdate{
		Email: r.Email,
		Phone: r.Phone,
		Name:  r.Name,
	}

	if r.Demographics != nil {
		update.Demographics = &domain.DemographicsUpdate{
			Age:             r.Demographics.Age,
			Location:        r.Demographics.Location,
			EducationLevel:  educationPtr(r.Demographics.EducationLevel),
			ExperienceLevel: experiencePtr(r.Demographics.ExperienceLevel),
			Role:            r.Demographics.Role,
			Industry:        r.Demographics.Industry,
			IncomeBracket:   incomePtr(r.Demographics.IncomeBracket),
		}
	}
	if r.Behavior != nil {
		update.Behavior = &domain.BehaviorUpdate{
			PageViews:        r.Behavior.PageViews,
			CTAClicks:        r.Behavior.CTAClicks,
			FormInteractions: r.Behavior.FormInteractions,
			Downloads:        r.Behavior.Downloads,
			VideoWatches:     r.Behavior.VideoWatches,
			SocialShares:     r.Behavior.SocialShares,
			SessionCount:     r.Behavior.SessionCount,
			TimeOnSite:       r.Behavior.TimeOnSite,
			ScrollDepth:      r.Behavior.ScrollDepth,
			BounceRate:       r.Behavior.BounceRate,
			DeviceType:       r.Behavior.DeviceType,
			TrafficSource:    r.Behavior.TrafficSource,
			ReturnVisitor:    r.Behavior.ReturnVisitor,
			BlogPostsRead:    r.Behavior.BlogPostsRead,
		}
	}
	if r.Intent != nil {
		update.Intent = &domain.IntentUpdate{
			CourseInterest:       r.Intent.CourseInterest,
			Urgency:              urgencyPtr(r.Intent.Urgency),
			Budget:               budgetPtr(r.Intent.Budget),
			Timeline:             timelinePtr(r.Intent.Timeline),
			SpecificQuestions:    r.Intent.SpecificQuestions,
			PriceInquiries:       r.Intent.PriceInquiries,
			BrochureDownloads:    r.Intent.BrochureDownloads,
			ConsultationRequests: r.Intent.ConsultationRequests,
			DemoRequests:         r.Intent.DemoRequests,
			ComparisonShopping:   r.Intent.ComparisonShopping,
		}
	}
	if r.Engagement != nil {
		update.Engagement = &domain.EngagementUpdate{
			ContentPreferences: r.Engagement.ContentPreferences,
			PreferredChannel:   r.Engagement.PreferredChannel,
		}
	}
	if r.ToolInteractions != nil {
		update.ToolInteractions = &domain.ToolInteractionsUpdate{
			QuizCompleted:        r.ToolInteractions.QuizCompleted,
			AssessmentCompleted:  r.ToolInteractions.AssessmentCompleted,
			CalculatorCompleted:  r.ToolInteractions.CalculatorCompleted,
			EligibilityCompleted: r.ToolInteractions.EligibilityCompleted,
			Results:              r.ToolInteractions.Results,
		}
	}

	return update
}

func educationPtr(s *string) *domain.EducationLevel {
	if s == nil {
		return nil
	}
	v := domain.EducationLevel(*s)
	return &v
}

func experiencePtr(s *string) *domain.ExperienceLevel {
	if s == nil {
		return nil
	}
	v := domain.ExperienceLevel(*s)
	return &v
}

func incomePtr(s *string) *domain.IncomeBracket {
	if s == nil {
		return nil
	}
	v := domain.IncomeBracket(*s)
	return &v
}

func urgencyPtr(s *string) *domain.Urgency {
	if s == nil {
		return nil
	}
	v := domain.Urgency(*s)
	return &v
}

func budgetPtr(s *string) *domain.Budget {
	if s == nil {
		return nil
	}
	v := domain.Budget(*s)
	return &v
}

func timelinePtr(s *string) *domain.Timeline {
	if s == nil {
		return nil
	}
	v := domain.Timeline(*s)
	return &v
}

// UpdateRulesRequest is a partial update to the scoring rule table. Any
// category present replaces that category wholesale; absent categories are
// untouched.
type UpdateRulesRequest struct {
	Demographic *rules.DemographicRules `json:"demographic,omitempty"`
	Behavioral  *rules.BehavioralRules  `json:"behavioral,omitempty"`
	Intent      *rules.IntentRules      `json:"intent,omitempty"`
	Engagement  *rules.EngagementRules  `json:"engagement,omitempty"`
}

// ToPatch converts the request into a rules patch.
func (r UpdateRulesRequest) ToPatch() rules.Patch {
	return rules.Patch{
		Demographic: r.Demographic,
		Behavioral:  r.Behavioral,
		Intent:      r.Intent,
		Engagement:  r.Engagement,
	}
}

// ProfileResponse wraps the merged profile returned after an update.
type ProfileResponse struct {
	Profile domain.LeadProfile `json:"profile"`
}

// ScoreResponse wraps a computed lead score.
type ScoreResponse struct {
	Score domain.LeadScore `json:"score"`
}

// ScoreHistoryResponse is the lead's scoring history, oldest first.
type ScoreHistoryResponse struct {
	Items []domain.LeadScore `json:"items"`
}

// RulesResponse is the effective scoring rule table.
type RulesResponse struct {
	Rules rules.Table `json:"rules"`
}
