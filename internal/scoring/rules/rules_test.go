package rules

import (
	"os"
	"path/filepath"
	"testing"

	"avialeads_backend/internal/scoring/domain"
)

func TestMerge_NilCategoriesUntouched(t *testing.T) {
	table := Default()

	merged := table.Merge(Patch{
		Intent: &IntentRules{
			Urgency: map[domain.Urgency]float64{
				domain.UrgencyImmediate: 150,
			},
		},
	})

	if merged.Intent.Urgency[domain.UrgencyImmediate] != 150 {
		t.Fatalf("expected patched urgency weight 150, got %v", merged.Intent.Urgency[domain.UrgencyImmediate])
	}
	// The patch replaces the intent category wholesale.
	if merged.Intent.Consultation != 0 {
		t.Fatalf("expected consultation reset by category replace, got %v", merged.Intent.Consultation)
	}
	// Other categories stay intact.
	if merged.Demographic.AgeBonus != 50 {
		t.Fatalf("expected demographic untouched, got age bonus %v", merged.Demographic.AgeBonus)
	}
	if merged.Behavioral.Actions.CTAClick != 15 {
		t.Fatalf("expected behavioral untouched, got CTA weight %v", merged.Behavioral.Actions.CTAClick)
	}
}

func TestMerge_DoesNotMutateReceiver(t *testing.T) {
	table := Default()

	table.Merge(Patch{
		Demographic: &DemographicRules{AgeBonus: 99},
	})

	if table.Demographic.AgeBonus != 50 {
		t.Fatalf("expected original table unchanged, got age bonus %v", table.Demographic.AgeBonus)
	}
}

func TestLoadOverrides_EmptyPathReturnsDefaults(t *testing.T) {
	table, err := LoadOverrides("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Demographic.AgeBonus != 50 {
		t.Fatalf("expected default table, got age bonus %v", table.Demographic.AgeBonus)
	}
}

func TestLoadOverrides_AppliesYAMLPatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
demographic:
  ageOptimal:
    min: 20
    max: 40
  ageBonus: 60
  location:
    India: 45
    Other: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	table, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Demographic.AgeBonus != 60 {
		t.Fatalf("expected overridden age bonus 60, got %v", table.Demographic.AgeBonus)
	}
	if table.Demographic.AgeOptimal.Min != 20 || table.Demographic.AgeOptimal.Max != 40 {
		t.Fatalf("expected overridden age window, got %+v", table.Demographic.AgeOptimal)
	}
	if table.Demographic.Location["India"] != 45 {
		t.Fatalf("expected overridden location weight, got %v", table.Demographic.Location["India"])
	}
	// Untouched categories keep their defaults.
	if table.Intent.Urgency[domain.UrgencyImmediate] != 120 {
		t.Fatalf("expected default intent weights, got %v", table.Intent.Urgency[domain.UrgencyImmediate])
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
