package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LAUNCHPAD_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResponseDelayMS != 1000 {
		t.Errorf("response delay = %d", cfg.ResponseDelayMS)
	}
	if cfg.SuggestLimit != 5 {
		t.Errorf("suggest limit = %d", cfg.SuggestLimit)
	}
	if cfg.HistoryDisplayLimit != 20 {
		t.Errorf("history display limit = %d", cfg.HistoryDisplayLimit)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	content := "response_delay_ms: 10\nsuggest_limit: 3\ndb_path: /tmp/test.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LAUNCHPAD_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResponseDelayMS != 10 || cfg.SuggestLimit != 3 || cfg.DBPath != "/tmp/test.db" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.CourseListDelayMS != 500 {
		t.Errorf("course list delay = %d", cfg.CourseListDelayMS)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	if err := os.WriteFile(path, []byte("suggest_limit: 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LAUNCHPAD_CONFIG", path)
	t.Setenv("LAUNCHPAD_SUGGEST_LIMIT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SuggestLimit != 7 {
		t.Errorf("env override lost: %d", cfg.SuggestLimit)
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("LAUNCHPAD_CONFIG", "")
	t.Setenv("LAUNCHPAD_SUGGEST_LIMIT", "0")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for zero suggest_limit")
	}
}

func TestAssistConfig(t *testing.T) {
	cfg := New()
	ac := cfg.AssistConfig()
	if ac.ResponseDelay != time.Second {
		t.Errorf("response delay = %v", ac.ResponseDelay)
	}
	if ac.ListDelay != 500*time.Millisecond || ac.SearchDelay != 300*time.Millisecond {
		t.Errorf("course delays = %v / %v", ac.ListDelay, ac.SearchDelay)
	}
}
