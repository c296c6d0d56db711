package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CalendarID != "primary" || cfg.SchedulesDir != "." {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	offset := -5
	want := &Config{
		CalendarID:     "work@example.com",
		SchedulesDir:   "/tmp/schedules",
		UTCOffsetHours: &offset,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got.CalendarID != want.CalendarID || got.SchedulesDir != want.SchedulesDir {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
	if got.UTCOffsetHours == nil || *got.UTCOffsetHours != -5 {
		t.Errorf("UTCOffsetHours = %v, want -5", got.UTCOffsetHours)
	}
	if got.UTCOffset() != -5*time.Hour {
		t.Errorf("UTCOffset() = %v, want -5h", got.UTCOffset())
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar_id: \"\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CalendarID != "primary" || cfg.SchedulesDir != "." {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\nnot yaml: ["), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should have failed on malformed yaml")
	}
}
