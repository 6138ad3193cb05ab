package notification

import (
	"context"
	"errors"
	"testing"

	"avialeads_backend/internal/email"
	"avialeads_backend/internal/events"
	"avialeads_backend/platform/logger"
)

type captureSender struct {
	to     string
	alerts []email.HotLeadAlert
	err    error
}

func (c *captureSender) SendHotLeadAlert(_ context.Context, toEmail string, alert email.HotLeadAlert) error {
	c.to = toEmail
	c.alerts = append(c.alerts, alert)
	return c.err
}

func TestModule_SendsHotLeadAlert(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("development"))
	sender := &captureSender{}
	NewModule(bus, sender, "sales@avialeads.example", logger.New("development"))

	err := bus.PublishSync(context.Background(), events.HotLeadDetected{
		BaseEvent:             events.NewBaseEvent(),
		UserID:                "u-1",
		Name:                  "Asha",
		TotalScore:            780,
		ConversionProbability: 90,
		RecommendedCourses:    []string{"CPL"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.to != "sales@avialeads.example" {
		t.Fatalf("expected alert to sales inbox, got %q", sender.to)
	}
	if len(sender.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(sender.alerts))
	}
	if sender.alerts[0].UserID != "u-1" || sender.alerts[0].TotalScore != 780 {
		t.Fatalf("unexpected alert payload: %+v", sender.alerts[0])
	}
}

func TestModule_EmptyInboxSkipsSubscription(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("development"))
	sender := &captureSender{}
	NewModule(bus, sender, "", logger.New("development"))

	if err := bus.PublishSync(context.Background(), events.HotLeadDetected{
		BaseEvent: events.NewBaseEvent(),
		UserID:    "u-1",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.alerts) != 0 {
		t.Fatalf("expected no alerts without a sales inbox, got %d", len(sender.alerts))
	}
}

func TestModule_SenderFailureSurfacesOnSyncPublish(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("development"))
	failure := errors.New("smtp down")
	NewModule(bus, &captureSender{err: failure}, "sales@avialeads.example", logger.New("development"))

	err := bus.PublishSync(context.Background(), events.HotLeadDetected{
		BaseEvent: events.NewBaseEvent(),
		UserID:    "u-1",
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected sender failure, got %v", err)
	}
}
