package config

import (
	"os"
	"path/filepath"
	"testing"
)

// --- Load / defaults ---

func TestLoadReturnsDefaults(t *testing.T) {
	os.Unsetenv("EDGARAI_SEC_USER_AGENT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SEC.UserAgent == "" {
		t.Error("SEC.UserAgent default must not be empty")
	}
	if cfg.SEC.TimeoutSec != 30 {
		t.Errorf("SEC.TimeoutSec: got %d, want 30", cfg.SEC.TimeoutSec)
	}
	if cfg.SEC.RatePerSec != 10 {
		t.Errorf("SEC.RatePerSec: got %d, want 10", cfg.SEC.RatePerSec)
	}
	if cfg.SEC.DataBaseURL != "https://data.sec.gov" {
		t.Errorf("SEC.DataBaseURL: got %q", cfg.SEC.DataBaseURL)
	}
	if cfg.SEC.ArchiveBaseURL != "https://www.sec.gov/Archives/edgar/data" {
		t.Errorf("SEC.ArchiveBaseURL: got %q", cfg.SEC.ArchiveBaseURL)
	}

	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts: got %d, want 3", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.BaseWaitMS != 1000 {
		t.Errorf("Retry.BaseWaitMS: got %d, want 1000", cfg.Retry.BaseWaitMS)
	}
	if cfg.Retry.MaxWaitMS != 10000 {
		t.Errorf("Retry.MaxWaitMS: got %d, want 10000", cfg.Retry.MaxWaitMS)
	}
	if cfg.Retry.RateLimitCooldownMS != 1000 {
		t.Errorf("Retry.RateLimitCooldownMS: got %d, want 1000", cfg.Retry.RateLimitCooldownMS)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("EDGARAI_SEC_USER_AGENT", "TestCo research (contact@testco.example)")
	defer os.Unsetenv("EDGARAI_SEC_USER_AGENT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SEC.UserAgent != "TestCo research (contact@testco.example)" {
		t.Errorf("env override not applied: got %q", cfg.SEC.UserAgent)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("sec:\n  timeout_sec: 5\n  rate_per_sec: 2\nretry:\n  max_attempts: 7\napi:\n  port: 9999\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.SEC.TimeoutSec != 5 {
		t.Errorf("SEC.TimeoutSec: got %d, want 5", cfg.SEC.TimeoutSec)
	}
	if cfg.SEC.RatePerSec != 2 {
		t.Errorf("SEC.RatePerSec: got %d, want 2", cfg.SEC.RatePerSec)
	}
	if cfg.Retry.MaxAttempts != 7 {
		t.Errorf("Retry.MaxAttempts: got %d, want 7", cfg.Retry.MaxAttempts)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port: got %d, want 9999", cfg.API.Port)
	}
	// Values not in the file keep their defaults.
	if cfg.Retry.BaseWaitMS != 1000 {
		t.Errorf("Retry.BaseWaitMS default lost: got %d", cfg.Retry.BaseWaitMS)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDefaultTimeoutHelper(t *testing.T) {
	cfg := Default()
	if cfg.SEC.Timeout().Seconds() != 30 {
		t.Errorf("Timeout(): got %v", cfg.SEC.Timeout())
	}
}
