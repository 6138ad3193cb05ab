// Package store holds the in-memory working set of lead profiles and score
// history. It is a cache in front of the durable repository, not the system
// of record: entries are rehydrated from the repository on miss and can be
// dropped at any time.
package store

import (
	"sync"

	"avialeads_backend/internal/scoring/domain"
)

// Store is a keyed collection of profiles and per-lead score history.
// A single lock guards both maps; contention is negligible at this scale
// and it keeps concurrent merges for the same lead serialized.
type Store struct {
	mu         sync.RWMutex
	profiles   map[string]domain.LeadProfile
	history    map[string][]domain.LeadScore
	historyCap int
}

// New creates an empty store. historyCap bounds the per-lead score history
// kept in memory; 0 means unbounded. The durable log is always append-only
// regardless of this cap.
func New(historyCap int) *Store {
	return &Store{
		profiles:   make(map[string]domain.LeadProfile),
		history:    make(map[string][]domain.LeadScore),
		historyCap: historyCap,
	}
}

// GetProfile returns the cached profile for a lead, if present.
func (s *Store) GetProfile(userID string) (domain.LeadProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok
}

// PutProfile stores the merged profile.
func (s *Store) PutProfile(p domain.LeadProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
}

// AppendScore appends a score to the lead's history, trimming the oldest
// entries past the cap.
func (s *Store) AppendScore(score domain.LeadScore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.history[score.UserID], score)
	if s.historyCap > 0 && len(history) > s.historyCap {
		history = history[len(history)-s.historyCap:]
	}
	s.history[score.UserID] = history
}

// History returns a copy of the lead's score history, oldest first.
func (s *Store) History(userID string) []domain.LeadScore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.LeadScore(nil), s.history[userID]...)
}

// Len returns the number of cached profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
