package domain

import (
	"testing"
	"time"
)

func TestComputeEngagementQuality_SumsBandsAndClampsAt100(t *testing.T) {
	p := NewProfile("u-1", "s-1", time.Now())
	p.Behavior = Behavior{
		TimeOnSite:       700, // +25
		CTAClicks:        1,   // +20
		FormInteractions: 1,   // +25
		Downloads:        1,   // +15
		VideoWatches:     1,   // +10
		PageViews:        6,   // +15
		ScrollDepth:      80,  // +10
		ReturnVisitor:    true,
	}

	if got := ComputeEngagementQuality(p); got != 100 {
		t.Fatalf("expected quality clamped to 100, got %d", got)
	}
}

func TestComputeEngagementQuality_MidBands(t *testing.T) {
	p := NewProfile("u-1", "s-1", time.Now())
	p.Behavior = Behavior{
		TimeOnSite:  400, // +15
		PageViews:   3,   // +10
		ScrollDepth: 60,  // +5
	}

	if got := ComputeEngagementQuality(p); got != 30 {
		t.Fatalf("expected quality 30, got %d", got)
	}
}

func TestComputeEngagementDepth(t *testing.T) {
	tests := []struct {
		name string
		mod  func(p *LeadProfile)
		want EngagementDepth
	}{
		{
			name: "fresh profile is surface",
			mod:  func(p *LeadProfile) {},
			want: DepthSurface,
		},
		{
			name: "moderate at four points",
			mod: func(p *LeadProfile) {
				p.Behavior.PageViews = 6    // +2
				p.Behavior.TimeOnSite = 400 // +2
			},
			want: DepthModerate,
		},
		{
			name: "deep at seven points",
			mod: func(p *LeadProfile) {
				p.Behavior.PageViews = 12    // +3
				p.Behavior.TimeOnSite = 1000 // +3
				p.Behavior.CTAClicks = 1     // +1
			},
			want: DepthDeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProfile("u-1", "s-1", time.Now())
			tt.mod(&p)
			if got := ComputeEngagementDepth(p); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestComputeInteractionPattern_PriorityOrder(t *testing.T) {
	p := NewProfile("u-1", "s-1", time.Now())

	// Satisfies both decision-maker and researcher conditions; decision
	// maker wins.
	p.Intent.Urgency = UrgencyImmediate
	p.Intent.ConsultationRequests = 1
	p.Behavior.PageViews = 9
	p.Behavior.Downloads = 2
	p.ToolInteractions.QuizCompleted = true

	if got := ComputeInteractionPattern(p); got != PatternDecisionMaker {
		t.Fatalf("expected decision_maker, got %q", got)
	}

	p.Intent.ConsultationRequests = 0
	if got := ComputeInteractionPattern(p); got != PatternResearcher {
		t.Fatalf("expected researcher, got %q", got)
	}

	p.Behavior.Downloads = 0
	p.Behavior.SocialShares = 1
	p.Intent.SpecificQuestions = []string{"a", "b", "c"}
	if got := ComputeInteractionPattern(p); got != PatternInfluencer {
		t.Fatalf("expected influencer, got %q", got)
	}

	p.Intent.SpecificQuestions = nil
	if got := ComputeInteractionPattern(p); got != PatternBrowser {
		t.Fatalf("expected browser, got %q", got)
	}
}

func TestQualityForScore_Boundaries(t *testing.T) {
	tests := []struct {
		total int
		want  Quality
	}{
		{700, QualityHot},
		{699, QualityWarm},
		{500, QualityWarm},
		{499, QualityCold},
		{300, QualityCold},
		{299, QualityUnqualified},
		{0, QualityUnqualified},
	}

	for _, tt := range tests {
		if got := QualityForScore(tt.total); got != tt.want {
			t.Fatalf("QualityForScore(%d): expected %q, got %q", tt.total, tt.want, got)
		}
	}
}
