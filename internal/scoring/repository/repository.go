package repository

import (
	"context"
	"encoding/json"
	"errors"

	"avialeads_backend/internal/scoring/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead profile not found")

// Repository is the Postgres-backed durable store. Profiles are stored as
// one JSONB document per lead; scores are an append-only JSONB log.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveProfile upserts the full profile document for a lead.
func (r *Repository) SaveProfile(ctx context.Context, profile domain.LeadProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO lead_profiles (user_id, session_id, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			profile    = EXCLUDED.profile,
			updated_at = EXCLUDED.updated_at
	`, profile.UserID, profile.SessionID, doc, profile.CreatedAt, profile.UpdatedAt)
	return err
}

// GetProfile loads the profile document for a lead.
func (r *Repository) GetProfile(ctx context.Context, userID string) (domain.LeadProfile, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `
		SELECT profile FROM lead_profiles WHERE user_id = $1
	`, userID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.LeadProfile{}, ErrNotFound
	}
	if err != nil {
		return domain.LeadProfile{}, err
	}

	var profile domain.LeadProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return domain.LeadProfile{}, err
	}
	return profile, nil
}

// SaveScore appends a score to the durable log.
func (r *Repository) SaveScore(ctx context.Context, score domain.LeadScore) error {
	doc, err := json.Marshal(score)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO lead_scores (id, user_id, total_score, quality, score, scored_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), score.UserID, score.TotalScore, string(score.Quality), doc, score.ScoredAt)
	return err
}

// ListScores returns the lead's most recent scores, oldest first.
// limit <= 0 returns the full log.
func (r *Repository) ListScores(ctx context.Context, userID string, limit int) ([]domain.LeadScore, error) {
	query := `
		SELECT score FROM lead_scores
		WHERE user_id = $1
		ORDER BY scored_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]domain.LeadScore, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var score domain.LeadScore
		if err := json.Unmarshal(doc, &score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	// Reverse into chronological order to match the in-memory history.
	for i, j := 0, len(scores)-1; i < j; i, j = i+1, j-1 {
		scores[i], scores[j] = scores[j], scores[i]
	}
	return scores, nil
}

var _ LeadScoreRepository = (*Repository)(nil)
