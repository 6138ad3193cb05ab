// Package service orchestrates the lead scoring engine: profile merges,
// score computation, history, rule updates, and best-effort persistence.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"avialeads_backend/internal/events"
	"avialeads_backend/internal/scoring/domain"
	"avialeads_backend/internal/scoring/engine"
	"avialeads_backend/internal/scoring/repository"
	"avialeads_backend/internal/scoring/rules"
	"avialeads_backend/internal/scoring/store"
	"avialeads_backend/platform/apperr"
	"avialeads_backend/platform/logger"
	"avialeads_backend/platform/phone"
)

// persistTimeout bounds background persistence writes so a stuck database
// cannot accumulate goroutines forever.
const persistTimeout = 5 * time.Second

// RescoreScheduler enqueues a deferred rescore for a lead. Optional; when
// absent, durable scores only update on explicit scoring calls.
type RescoreScheduler interface {
	ScheduleRescore(ctx context.Context, userID string, delay time.Duration) error
}

// Service is the scoring engine's public surface.
type Service struct {
	store *store.Store
	repo  repository.LeadScoreRepository
	bus   events.Bus
	log   *logger.Logger

	scheduler    RescoreScheduler
	rescoreDelay time.Duration

	rulesMu sync.RWMutex
	rules   rules.Table

	now func() time.Time
}

// New creates the scoring service.
func New(repo repository.LeadScoreRepository, st *store.Store, table rules.Table, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store: st,
		repo:  repo,
		bus:   bus,
		log:   log,
		rules: table,
		now:   time.Now,
	}
}

// SetRescoreScheduler wires the optional background rescore queue.
func (s *Service) SetRescoreScheduler(scheduler RescoreScheduler, delay time.Duration) {
	s.scheduler = scheduler
	s.rescoreDelay = delay
}

// UpdateProfile merges a partial update into the lead's profile, recomputes
// the derived engagement fields, and returns the merged profile. The write
// to the durable store is fire-and-forget: failure is logged, never
// surfaced, so a successful return does not imply durability.
func (s *Service) UpdateProfile(ctx context.Context, userID, sessionID string, update domain.ProfileUpdate) (domain.LeadProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.LeadProfile{}, apperr.Validation("userId is required")
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.LeadProfile{}, apperr.Validation("sessionId is required")
	}

	if update.Phone != nil {
		normalized := phone.NormalizeE164(*update.Phone)
		update.Phone = &normalized
	}

	now := s.now()
	profile, found := s.loadProfile(ctx, userID)
	if !found {
		profile = domain.NewProfile(userID, sessionID, now)
	}

	profile.Merge(sessionID, update, now)
	s.store.PutProfile(profile)

	s.persistAsync(ctx, "save_profile", userID, func(pctx context.Context) error {
		return s.repo.SaveProfile(pctx, profile)
	})

	if s.bus != nil {
		s.bus.Publish(ctx, events.ProfileUpdated{
			BaseEvent: events.NewBaseEvent(),
			UserID:    userID,
			SessionID: profile.SessionID,
		})
	}

	if s.scheduler != nil {
		if err := s.scheduler.ScheduleRescore(ctx, userID, s.rescoreDelay); err != nil {
			s.log.Warn("rescore enqueue failed", "lead_id", userID, "error", err)
		}
	}

	return profile, nil
}

// CalculateScore computes a full LeadScore for the lead and appends it to
// the score history. Returns a not-found error when no profile exists.
func (s *Service) CalculateScore(ctx context.Context, userID string) (domain.LeadScore, error) {
	profile, found := s.loadProfile(ctx, userID)
	if !found {
		return domain.LeadScore{}, apperr.NotFound("no lead profile found for user " + userID)
	}

	s.rulesMu.RLock()
	table := s.rules
	s.rulesMu.RUnlock()

	score := engine.Score(profile, table, s.now())
	s.store.AppendScore(score)

	s.persistAsync(ctx, "save_score", userID, func(pctx context.Context) error {
		return s.repo.SaveScore(pctx, score)
	})

	s.log.ScoreComputed(userID, score.TotalScore, string(score.Quality), score.Confidence)

	if s.bus != nil {
		s.bus.Publish(ctx, events.LeadScored{
			BaseEvent:   events.NewBaseEvent(),
			UserID:      userID,
			TotalScore:  score.TotalScore,
			Quality:     string(score.Quality),
			Confidence:  score.Confidence,
			IsQualified: score.Qualification.IsQualified,
		})

		if score.Quality == domain.QualityHot {
			s.bus.Publish(ctx, events.HotLeadDetected{
				BaseEvent:             events.NewBaseEvent(),
				UserID:                userID,
				Name:                  profile.Name,
				Email:                 profile.Email,
				Phone:                 profile.Phone,
				TotalScore:            score.TotalScore,
				ConversionProbability: score.Recommendations.ConversionProbability,
				RecommendedCourses:    score.Recommendations.RecommendedCourses,
			})
		}
	}

	return score, nil
}

// GetProfile returns the lead's current merged profile.
func (s *Service) GetProfile(ctx context.Context, userID string) (domain.LeadProfile, error) {
	profile, found := s.loadProfile(ctx, userID)
	if !found {
		return domain.LeadProfile{}, apperr.NotFound("no lead profile found for user " + userID)
	}
	return profile, nil
}

// ScoringHistory returns the lead's score history, oldest first. The
// in-memory history is authoritative for the working set; on a cold cache
// the durable log is consulted.
func (s *Service) ScoringHistory(ctx context.Context, userID string) []domain.LeadScore {
	history := s.store.History(userID)
	if len(history) > 0 {
		return history
	}

	persisted, err := s.repo.ListScores(ctx, userID, 0)
	if err != nil {
		s.log.DatabaseError("list_scores", err)
		return history
	}
	return persisted
}

// UpdateRules applies a partial rule-table update process-wide.
func (s *Service) UpdateRules(patch rules.Patch) {
	s.rulesMu.Lock()
	defer s.rulesMu.Unlock()
	s.rules = s.rules.Merge(patch)
}

// Rules returns a snapshot of the effective rule table.
func (s *Service) Rules() rules.Table {
	s.rulesMu.RLock()
	defer s.rulesMu.RUnlock()
	return s.rules
}

// loadProfile checks the working set first and falls back to the durable
// store, warming the cache on a hit.
func (s *Service) loadProfile(ctx context.Context, userID string) (domain.LeadProfile, bool) {
	if profile, ok := s.store.GetProfile(userID); ok {
		return profile, true
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.DatabaseError("get_profile", err)
		}
		return domain.LeadProfile{}, false
	}

	s.store.PutProfile(profile)
	return profile, true
}

// persistAsync dispatches a durable write off the request path. The write
// outlives request cancellation but not the persist timeout.
func (s *Service) persistAsync(ctx context.Context, operation, userID string, fn func(context.Context) error) {
	detached := context.WithoutCancel(ctx)
	go func() {
		pctx, cancel := context.WithTimeout(detached, persistTimeout)
		defer cancel()
		if err := fn(pctx); err != nil {
			s.log.PersistenceError(operation, userID, err)
		}
	}()
}
