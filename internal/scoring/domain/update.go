package domain

import "time"

// ProfileUpdate is a partial update to a lead profile. Pointer fields
// distinguish "not supplied" from an explicit zero value; nil slices and
// maps mean "leave as is", non-nil ones replace the stored value.
type ProfileUpdate struct {
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Name  *string `json:"name,omitempty"`

	Demographics     *DemographicsUpdate     `json:"demographics,omitempty"`
	Behavior         *BehaviorUpdate         `json:"behavior,omitempty"`
	Intent           *IntentUpdate           `json:"intent,omitempty"`
	Engagement       *EngagementUpdate       `json:"engagement,omitempty"`
	ToolInteractions *ToolInteractionsUpdate `json:"toolInteractions,omitempty"`
}

// DemographicsUpdate is a partial update to the demographics block.
type DemographicsUpdate struct {
	Age             *int             `json:"age,omitempty"`
	Location        *string          `json:"location,omitempty"`
	EducationLevel  *EducationLevel  `json:"educationLevel,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experienceLevel,omitempty"`
	Role            *string          `json:"role,omitempty"`
	Industry        *string          `json:"industry,omitempty"`
	IncomeBracket   *IncomeBracket   `json:"incomeBracket,omitempty"`
}

// BehaviorUpdate is a partial update to the behavior block.
type BehaviorUpdate struct {
	PageViews        *int     `json:"pageViews,omitempty"`
	CTAClicks        *int     `json:"ctaClicks,omitempty"`
	FormInteractions *int     `json:"formInteractions,omitempty"`
	Downloads        *int     `json:"downloads,omitempty"`
	VideoWatches     *int     `json:"videoWatches,omitempty"`
	SocialShares     *int     `json:"socialShares,omitempty"`
	SessionCount     *int     `json:"sessionCount,omitempty"`
	TimeOnSite       *int     `json:"timeOnSite,omitempty"`
	ScrollDepth      *float64 `json:"scrollDepth,omitempty"`
	BounceRate       *float64 `json:"bounceRate,omitempty"`
	DeviceType       *string  `json:"deviceType,omitempty"`
	TrafficSource    *string  `json:"trafficSource,omitempty"`
	ReturnVisitor    *bool    `json:"returnVisitor,omitempty"`
	BlogPostsRead    []string `json:"blogPostsRead,omitempty"`
}

// IntentUpdate is a partial update to the intent block.
type IntentUpdate struct {
	CourseInterest       []string  `json:"courseInterest,omitempty"`
	Urgency              *Urgency  `json:"urgency,omitempty"`
	Budget               *Budget   `json:"budget,omitempty"`
	Timeline             *Timeline `json:"timeline,omitempty"`
	SpecificQuestions    []string  `json:"specificQuestions,omitempty"`
	PriceInquiries       *int      `json:"priceInquiries,omitempty"`
	BrochureDownloads    *int      `json:"brochureDownloads,omitempty"`
	ConsultationRequests *int      `json:"consultationRequests,omitempty"`
	DemoRequests         *int      `json:"demoRequests,omitempty"`
	ComparisonShopping   *bool     `json:"comparisonShopping,omitempty"`
}

// EngagementUpdate is a partial update to the caller-supplied engagement
// fields. The derived fields (quality score, depth, interaction pattern)
// are recomputed on merge and cannot be set directly.
type EngagementUpdate struct {
	ContentPreferences []string `json:"contentPreferences,omitempty"`
	PreferredChannel   *string  `json:"preferredChannel,omitempty"`
}

// ToolInteractionsUpdate is a partial update to the tool interactions block.
type ToolInteractionsUpdate struct {
	QuizCompleted        *bool                  `json:"quizCompleted,omitempty"`
	AssessmentCompleted  *bool                  `json:"assessmentCompleted,omitempty"`
	CalculatorCompleted  *bool                  `json:"calculatorCompleted,omitempty"`
	EligibilityCompleted *bool                  `json:"eligibilityCompleted,omitempty"`
	Results              map[string]interface{} `json:"results,omitempty"`
}

// Merge applies the update field by field. Known information is never
// discarded: only fields present in the update overwrite stored values.
// The derived engagement fields are recomputed from the merged result so
// they stay consistent with the latest behavior and intent data.
func (p *LeadProfile) Merge(sessionID string, update ProfileUpdate, now time.Time) {
	if sessionID != "" {
		p.SessionID = sessionID
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Name != nil {
		p.Name = *update.Name
	}

	if update.Demographics != nil {
		p.Demographics.merge(*update.Demographics)
	}
	if update.Behavior != nil {
		p.Behavior.merge(*update.Behavior)
	}
	if update.Intent != nil {
		p.Intent.merge(*update.Intent)
	}
	if update.Engagement != nil {
		p.Engagement.merge(*update.Engagement)
	}
	if update.ToolInteractions != nil {
		p.ToolInteractions.merge(*update.ToolInteractions)
	}

	p.Engagement.QualityScore = ComputeEngagementQuality(*p)
	p.Engagement.Depth = ComputeEngagementDepth(*p)
	p.Engagement.InteractionPattern = ComputeInteractionPattern(*p)

	p.UpdatedAt = now
}

func (d *Demographics) merge(u DemographicsUpdate) {
	if u.Age != nil {
		age := *u.Age
		d.Age = &age
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.EducationLevel != nil {
		d.EducationLevel = *u.EducationLevel
	}
	if u.ExperienceLevel != nil {
		d.ExperienceLevel = *u.ExperienceLevel
	}
	if u.Role != nil {
		d.Role = *u.Role
	}
	if u.Industry != nil {
		d.Industry = *u.Industry
	}
	if u.IncomeBracket != nil {
		d.IncomeBracket = *u.IncomeBracket
	}
}

func (b *Behavior) merge(u BehaviorUpdate) {
	if u.PageViews != nil {
		b.PageViews = *u.PageViews
	}
	if u.CTAClicks != nil {
		b.CTAClicks = *u.CTAClicks
	}
	if u.FormInteractions != nil {
		b.FormInteractions = *u.FormInteractions
	}
	if u.Downloads != nil {
		b.Downloads = *u.Downloads
	}
	if u.VideoWatches != nil {
		b.VideoWatches = *u.VideoWatches
	}
	if u.SocialShares != nil {
		b.SocialShares = *u.SocialShares
	}
	if u.SessionCount != nil {
		b.SessionCount = *u.SessionCount
	}
	if u.TimeOnSite != nil {
		b.TimeOnSite = *u.TimeOnSite
	}
	if u.ScrollDepth != nil {
		b.ScrollDepth = *u.ScrollDepth
	}
	if u.BounceRate != nil {
		b.BounceRate = *u.BounceRate
	}
	if u.DeviceType != nil {
		b.DeviceType = *u.DeviceType
	}
	if u.TrafficSource != nil {
		b.TrafficSource = *u.TrafficSource
	}
	if u.ReturnVisitor != nil {
		b.ReturnVisitor = *u.ReturnVisitor
	}
	if u.BlogPostsRead != nil {
		b.BlogPostsRead = append([]string(nil), u.BlogPostsRead...)
	}
}

func (i *Intent) merge(u IntentUpdate) {
	if u.CourseInterest != nil {
		i.CourseInterest = append([]string(nil), u.CourseInterest...)
	}
	if u.Urgency != nil {
		i.Urgency = *u.Urgency
	}
	if u.Budget != nil {
		i.Budget = *u.Budget
	}
	if u.Timeline != nil {
		i.Timeline = *u.Timeline
	}
	if u.SpecificQuestions != nil {
		i.SpecificQuestions = append([]string(nil), u.SpecificQuestions...)
	}
	if u.PriceInquiries != nil {
		i.PriceInquiries = *u.PriceInquiries
	}
	if u.BrochureDownloads != nil {
		i.BrochureDownloads = *u.BrochureDownloads
	}
	if u.ConsultationRequests != nil {
		i.ConsultationRequests = *u.ConsultationRequests
	}
	if u.DemoRequests != nil {
		i.DemoRequests = *u.DemoRequests
	}
	if u.ComparisonShopping != nil {
		i.ComparisonShopping = *u.ComparisonShopping
	}
}

func (e *Engagement) merge(u EngagementUpdate) {
	if u.ContentPreferences != nil {
		e.ContentPreferences = append([]string(nil), u.ContentPreferences...)
	}
	if u.PreferredChannel != nil {
		e.PreferredChannel = *u.PreferredChannel
	}
}

func (t *ToolInteractions) merge(u ToolInteractionsUpdate) {
	if u.QuizCompleted != nil {
		t.QuizCompleted = *u.QuizCompleted
	}
	if u.AssessmentCompleted != nil {
		t.AssessmentCompleted = *u.AssessmentCompleted
	}
	if u.CalculatorCompleted != nil {
		t.CalculatorCompleted = *u.CalculatorCompleted
	}
	if u.EligibilityCompleted != nil {
		t.EligibilityCompleted = *u.EligibilityCompleted
	}
	if u.Results != nil {
		// Copy-on-write: profile copies handed to background persistence
		// share the old map header, so it must never be written in place.
		merged := make(map[string]interface{}, len(t.Results)+len(u.Results))
		for k, v := range t.Results {
			merged[k] = v
		}
		for k, v := range u.Results {
			merged[k] = v
		}
		t.Results = merged
	}
}
