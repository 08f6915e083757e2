package config

import (
	"testing"

	"hypotest/domain/stats"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HYPOTEST_ALPHA", "")
	t.Setenv("HYPOTEST_TAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Alpha != 0.05 || cfg.Tail != stats.TwoTailed {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HYPOTEST_ALPHA", "0.01")
	t.Setenv("HYPOTEST_TAIL", "one-tailed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Alpha != 0.01 || cfg.Tail != stats.OneTailed {
		t.Fatalf("overrides: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HYPOTEST_ALPHA", "1.5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for alpha out of range")
	}

	t.Setenv("HYPOTEST_ALPHA", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric alpha")
	}

	t.Setenv("HYPOTEST_ALPHA", "0.05")
	t.Setenv("HYPOTEST_TAIL", "sideways")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown tail")
	}
}
