package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/avialeads_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default HTTP addr, got %q", cfg.HTTPAddr)
	}
	if cfg.SMTPPort != 587 {
		t.Fatalf("expected default SMTP port, got %d", cfg.SMTPPort)
	}
	if cfg.RescoreDelay != 30*time.Second {
		t.Fatalf("expected default rescore delay, got %v", cfg.RescoreDelay)
	}
	if cfg.ScoreHistoryCap != 50 {
		t.Fatalf("expected default history cap, got %d", cfg.ScoreHistoryCap)
	}
}

func TestLoad_RejectsInvalidNumericValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SMTP_PORT", "five-eight-seven"},
		{"ASYNQ_CONCURRENCY", "many"},
		{"SCORE_HISTORY_CAP", "12.5"},
		{"RESCORE_DELAY", "30 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost:5432/avialeads_test")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Fatalf("expected error to name %s, got %v", tt.key, err)
			}
		})
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DATABASE_URL")
	}
}
