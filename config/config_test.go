package config_test

import (
	"os"
	"testing"

	"smart-reminders/config"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore Chdir: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("HTTPServer.Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Parser.MinPreviewLength != 3 {
		t.Errorf("Parser.MinPreviewLength = %d, want 3", cfg.Parser.MinPreviewLength)
	}
	if cfg.Parser.InferPriorityFromDueDate {
		t.Errorf("Parser.InferPriorityFromDueDate should default to false")
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMin != 120 {
		t.Errorf("RateLimit = %+v, want enabled at 120/min", cfg.RateLimit)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PARSER_TIMEZONE", "Europe/Berlin")
	t.Setenv("PARSER_MAX_BULK_SEGMENTS", "5")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Parser.Timezone != "Europe/Berlin" {
		t.Errorf("Parser.Timezone = %q, want Europe/Berlin", cfg.Parser.Timezone)
	}
	if cfg.Parser.MaxBulkSegments != 5 {
		t.Errorf("Parser.MaxBulkSegments = %d, want 5", cfg.Parser.MaxBulkSegments)
	}
	if cfg.RateLimit.RequestsPerMin != 30 {
		t.Errorf("RateLimit.RequestsPerMin = %d, want 30", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "0")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for zero rate limit with rate limiting enabled")
	}
}
