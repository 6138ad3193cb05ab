// Package notification reacts to domain events with outbound alerts.
// It owns no HTTP routes; its only job is turning hot-lead events into
// sales inbox emails.
package notification

import (
	"context"

	"avialeads_backend/internal/email"
	"avialeads_backend/internal/events"
	"avialeads_backend/platform/logger"
)

// Module subscribes to lead events and dispatches notifications.
type Module struct {
	sender     email.Sender
	salesInbox string
	log        *logger.Logger
}

// NewModule wires the notification module onto the event bus. With an
// empty sales inbox the subscription is skipped entirely.
func NewModule(bus events.Bus, sender email.Sender, salesInbox string, log *logger.Logger) *Module {
	m := &Module{
		sender:     sender,
		salesInbox: salesInbox,
		log:        log,
	}

	if salesInbox != "" {
		bus.Subscribe(events.HotLeadDetected{}.EventName(), events.HandlerFunc(m.onHotLead))
	}

	return m
}

func (m *Module) onHotLead(ctx context.Context, event events.Event) error {
	e, ok := event.(events.HotLeadDetected)
	if !ok {
		return nil
	}

	alert := email.HotLeadAlert{
		UserID:                e.UserID,
		Name:                  e.Name,
		Email:                 e.Email,
		Phone:                 e.Phone,
		TotalScore:            e.TotalScore,
		ConversionProbability: e.ConversionProbability,
		RecommendedCourses:    e.RecommendedCourses,
	}

	if err := m.sender.SendHotLeadAlert(ctx, m.salesInbox, alert); err != nil {
		m.log.Error("hot lead alert failed", "error", err, "lead_id", e.UserID)
		return err
	}

	m.log.Info("hot lead alert sent", "lead_id", e.UserID, "score", e.TotalScore)
	return nil
}
