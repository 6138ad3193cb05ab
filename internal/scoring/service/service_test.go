package service

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"avialeads_backend/internal/scoring/domain"
	"avialeads_backend/internal/scoring/repository"
	"avialeads_backend/internal/scoring/rules"
	"avialeads_backend/internal/scoring/store"
	"avialeads_backend/platform/apperr"
	"avialeads_backend/platform/logger"
)

// fakeRepo is an in-memory LeadScoreRepository. Writes arrive from
// fire-and-forget goroutines, so access is mutex-guarded.
type fakeRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.LeadProfile
	scores   map[string][]domain.LeadScore
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: make(map[string]domain.LeadProfile),
		scores:   make(map[string][]domain.LeadScore),
	}
}

func (f *fakeRepo) SaveProfile(_ context.Context, p domain.LeadProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeRepo) GetProfile(_ context.Context, userID string) (domain.LeadProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return domain.LeadProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) SaveScore(_ context.Context, score domain.LeadScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[score.UserID] = append(f.scores[score.UserID], score)
	return nil
}

func (f *fakeRepo) ListScores(_ context.Context, userID string, _ int) ([]domain.LeadScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.LeadScore(nil), f.scores[userID]...), nil
}

var _ repository.LeadScoreRepository = (*fakeRepo)(nil)

func newTestService(repo repository.LeadScoreRepository) *Service {
	return New(repo, store.New(50), rules.Default(), nil, logger.New("development"))
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdateProfile_RejectsMissingIdentifiers(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if _, err := svc.UpdateProfile(context.Background(), "", "s-1", domain.ProfileUpdate{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty userId, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), "  ", "s-1", domain.ProfileUpdate{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for blank userId, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), "u-1", "", domain.ProfileUpdate{}); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty sessionId, got %v", err)
	}
}

func TestUpdateProfile_CreatesThenMerges(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	first, err := svc.UpdateProfile(ctx, "u-1", "s-1", domain.ProfileUpdate{
		Email: strPtr("asha@example.com"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.UserID != "u-1" || first.Email != "asha@example.com" {
		t.Fatalf("unexpected profile: %+v", first)
	}

	second, err := svc.UpdateProfile(ctx, "u-1", "s-2", domain.ProfileUpdate{
		Demographics: &domain.DemographicsUpdate{Age: intPtr(24)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Email != "asha@example.com" {
		t.Fatalf("expected email retained across merges, got %q", second.Email)
	}
	if second.Demographics.Age == nil || *second.Demographics.Age != 24 {
		t.Fatalf("expected age merged, got %v", second.Demographics.Age)
	}
	if second.SessionID != "s-2" {
		t.Fatalf("expected latest session, got %q", second.SessionID)
	}
}

func TestUpdateProfile_NormalizesPhone(t *testing.T) {
	svc := newTestService(newFakeRepo())

	profile, err := svc.UpdateProfile(context.Background(), "u-1", "s-1", domain.ProfileUpdate{
		Phone: strPtr("98765 43210"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Phone != "+919876543210" {
		t.Fatalf("expected E.164 phone, got %q", profile.Phone)
	}
}

func TestCalculateScore_UnknownLeadIsNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	if _, err := svc.CalculateScore(context.Background(), "ghost"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCalculateScore_AppendsToHistory(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, "u-1", "s-1", domain.ProfileUpdate{
		Email: strPtr("asha@example.com"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	score, err := svc.CalculateScore(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.UserID != "u-1" {
		t.Fatalf("expected score for u-1, got %q", score.UserID)
	}
	if score.Quality == "" {
		t.Fatalf("expected quality assigned")
	}

	if _, err := svc.CalculateScore(ctx, "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := svc.ScoringHistory(ctx, "u-1")
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
}

func TestGetProfile_ReturnsLastMergedState(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	merged, err := svc.UpdateProfile(ctx, "u-1", "s-1", domain.ProfileUpdate{
		Email: strPtr("asha@example.com"),
		Intent: &domain.IntentUpdate{
			CourseInterest: []string{"CPL"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := svc.GetProfile(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(merged, fetched) {
		t.Fatalf("profile changed between update and get:\n%+v\n%+v", merged, fetched)
	}
}

func TestLoadProfile_FallsBackToRepository(t *testing.T) {
	repo := newFakeRepo()
	persisted := domain.NewProfile("u-9", "s-old", time.Now())
	persisted.Email = "cold@example.com"
	repo.profiles["u-9"] = persisted

	svc := newTestService(repo)

	profile, err := svc.GetProfile(context.Background(), "u-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Email != "cold@example.com" {
		t.Fatalf("expected rehydrated profile, got %+v", profile)
	}
}

func TestScoringHistory_ColdCacheReadsRepository(t *testing.T) {
	repo := newFakeRepo()
	repo.scores["u-9"] = []domain.LeadScore{
		{UserID: "u-9", TotalScore: 420},
	}

	svc := newTestService(repo)

	history := svc.ScoringHistory(context.Background(), "u-9")
	if len(history) != 1 || history[0].TotalScore != 420 {
		t.Fatalf("expected persisted history, got %+v", history)
	}
}

func TestUpdateRules_AffectsSubsequentScores(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, "u-1", "s-1", domain.ProfileUpdate{
		Intent: &domain.IntentUpdate{
			Urgency: urgencyPtr(domain.UrgencyImmediate),
		},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, err := svc.CalculateScore(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.UpdateRules(rules.Patch{
		Intent: &rules.IntentRules{
			Urgency: map[domain.Urgency]float64{
				domain.UrgencyImmediate: 400,
			},
		},
	})

	after, err := svc.CalculateScore(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if after.SubScores.Intent <= before.SubScores.Intent {
		t.Fatalf("expected patched rules to raise intent score, got %d -> %d", before.SubScores.Intent, after.SubScores.Intent)
	}
	if svc.Rules().Intent.Urgency[domain.UrgencyImmediate] != 400 {
		t.Fatalf("expected rules snapshot to reflect patch")
	}
}

func urgencyPtr(u domain.Urgency) *domain.Urgency { return &u }
