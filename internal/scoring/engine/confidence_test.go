package engine

import (
	"testing"

	"avialeads_backend/internal/scoring/domain"
)

func TestConfidence_FreshProfileIsZero(t *testing.T) {
	if got := confidence(baseProfile()); got != 0 {
		t.Fatalf("expected 0 confidence for empty profile, got %d", got)
	}
}

func TestConfidence_CompleteProfileIsHundred(t *testing.T) {
	p := baseProfile()
	p.Email = "lead@example.com"
	p.Phone = "+919812345678"
	p.Name = "Asha"
	p.Demographics = domain.Demographics{
		Age:             intPtr(24),
		Location:        "India",
		EducationLevel:  domain.EducationBachelors,
		ExperienceLevel: domain.ExperienceStudent,
		Role:            "Engineer",
		Industry:        "IT",
		IncomeBracket:   domain.IncomeMiddle,
	}
	p.Intent.CourseInterest = []string{"CPL"}
	p.Intent.Urgency = domain.UrgencyWithin3Months
	p.Intent.Budget = domain.BudgetModerate
	p.Intent.Timeline = domain.Timeline3Months
	p.Behavior.PageViews = 5
	p.Behavior.TimeOnSite = 300
	p.Behavior.TrafficSource = "organic"
	p.ToolInteractions.QuizCompleted = true

	if got := confidence(p); got != 100 {
		t.Fatalf("expected 100 confidence, got %d", got)
	}
}

func TestConfidence_PartialProfile(t *testing.T) {
	p := baseProfile()
	p.Email = "lead@example.com"
	p.Name = "Asha"
	p.Behavior.PageViews = 3

	// 3 of 18 checks -> 16.67 -> 17.
	if got := confidence(p); got != 17 {
		t.Fatalf("expected 17 confidence, got %d", got)
	}
}
