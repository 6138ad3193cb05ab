// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"avialeads_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Scoring Domain Events
// =============================================================================

// ProfileUpdated is published after a lead profile merge completes.
type ProfileUpdated struct {
	BaseEvent
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

func (e ProfileUpdated) EventName() string { return "scoring.profile.updated" }

// LeadScored is published after every scoring invocation.
type LeadScored struct {
	BaseEvent
	UserID      string `json:"userId"`
	TotalScore  int    `json:"totalScore"`
	Quality     string `json:"quality"`
	Confidence  int    `json:"confidence"`
	IsQualified bool   `json:"isQualified"`
}

func (e LeadScored) EventName() string { return "scoring.lead.scored" }

// HotLeadDetected is published when a lead crosses into the hot tier.
// The notification module uses it to alert the sales inbox.
type HotLeadDetected struct {
	BaseEvent
	UserID                string   `json:"userId"`
	Name                  string   `json:"name,omitempty"`
	Email                 string   `json:"email,omitempty"`
	Phone                 string   `json:"phone,omitempty"`
	TotalScore            int      `json:"totalScore"`
	ConversionProbability int      `json:"conversionProbability"`
	RecommendedCourses    []string `json:"recommendedCourses"`
}

func (e HotLeadDetected) EventName() string { return "scoring.lead.hot" }
