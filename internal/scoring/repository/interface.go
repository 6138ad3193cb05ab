package repository

import (
	"context"

	"avialeads_backend/internal/scoring/domain"
)

// ProfileStore persists and loads lead profiles.
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile domain.LeadProfile) error
	GetProfile(ctx context.Context, userID string) (domain.LeadProfile, error)
}

// ScoreStore persists and loads the append-only score log.
type ScoreStore interface {
	SaveScore(ctx context.Context, score domain.LeadScore) error
	ListScores(ctx context.Context, userID string, limit int) ([]domain.LeadScore, error)
}

// LeadScoreRepository is the full durable-store contract used by the
// scoring service.
type LeadScoreRepository interface {
	ProfileStore
	ScoreStore
}
