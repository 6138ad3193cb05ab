// Package email delivers transactional mail for the lead engine. The
// Sender interface keeps delivery pluggable: SMTP in production, noop
// when mail is disabled.
package email

import (
	"context"

	"avialeads_backend/platform/config"
)

// HotLeadAlert carries the data for a hot-lead notification to sales.
type HotLeadAlert struct {
	UserID                string
	Name                  string
	Email                 string
	Phone                 string
	TotalScore            int
	ConversionProbability int
	RecommendedCourses    []string
}

// Sender delivers notification emails.
type Sender interface {
	// SendHotLeadAlert notifies the sales inbox that a lead crossed into
	// the hot tier.
	SendHotLeadAlert(ctx context.Context, toEmail string, alert HotLeadAlert) error
}

// NoopSender is used when email delivery is disabled. All sends succeed
// without doing anything.
type NoopSender struct{}

func (NoopSender) SendHotLeadAlert(ctx context.Context, toEmail string, alert HotLeadAlert) error {
	return nil
}

// NewSender builds the configured Sender: SMTP when email is enabled,
// noop otherwise.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	), nil
}
