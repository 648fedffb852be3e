package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) unexpected error: %v", path, err)
		}
		if cfg.Timezone != DefaultTimezone {
			t.Errorf("Timezone = %q, want %q", cfg.Timezone, DefaultTimezone)
		}
		if cfg.Output != DefaultOutput {
			t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
		}
		if cfg.Duration() != time.Hour {
			t.Errorf("Duration() = %v, want 1h", cfg.Duration())
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "timezone: America/New_York\noutput: talks.ics\nduration_minutes: 90\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", cfg.Timezone)
	}
	if cfg.Output != "talks.ics" {
		t.Errorf("Output = %q, want talks.ics", cfg.Output)
	}
	if cfg.Duration() != 90*time.Minute {
		t.Errorf("Duration() = %v, want 90m", cfg.Duration())
	}
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: talks.ics\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want default %q", cfg.Timezone, DefaultTimezone)
	}
	if cfg.DurationMinutes != DefaultDurationMinutes {
		t.Errorf("DurationMinutes = %d, want %d", cfg.DurationMinutes, DefaultDurationMinutes)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for unresolvable timezone")
	}
}
