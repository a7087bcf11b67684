package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Keywords.TopN != 10 {
		t.Errorf("expected top_n 10, got %d", cfg.Keywords.TopN)
	}
	if cfg.Keywords.MinTokenLen != 2 {
		t.Errorf("expected min_token_length 2, got %d", cfg.Keywords.MinTokenLen)
	}
	if cfg.Analysis.TrendThreshold != 0.05 {
		t.Errorf("expected trend_threshold 0.05, got %v", cfg.Analysis.TrendThreshold)
	}
	if cfg.Analysis.TimeGranularity != "month" {
		t.Errorf("expected granularity 'month', got %q", cfg.Analysis.TimeGranularity)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
lexicon:
  positive: [stellar]
  negative: [meltdown]
analysis:
  time_granularity: week
server:
  port: 9000
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if len(cfg.Lexicon.Positive) != 1 || cfg.Lexicon.Positive[0] != "stellar" {
		t.Errorf("unexpected lexicon additions: %v", cfg.Lexicon.Positive)
	}
	if cfg.Analysis.TimeGranularity != "week" {
		t.Errorf("expected granularity 'week', got %q", cfg.Analysis.TimeGranularity)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	// Defaults should still be set for unspecified fields
	if cfg.Keywords.TopN != 10 {
		t.Errorf("expected default top_n, got %d", cfg.Keywords.TopN)
	}
	if cfg.Goals.MonthlyRecords != 10 {
		t.Errorf("expected default monthly goal, got %d", cfg.Goals.MonthlyRecords)
	}
}

func TestParseRejectsBadGranularity(t *testing.T) {
	_, err := parse([]byte("analysis:\n  time_granularity: hourly\n"))
	if err == nil {
		t.Fatal("expected error for unknown granularity")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Keywords.TopN != 10 {
		t.Error("expected defaults applied when loading from file")
	}
}

func TestGetDataDir(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDataDir() == "" {
		t.Error("expected non-empty default data dir")
	}

	cfg.Output.DataDir = "/tmp/feedlens-test"
	if cfg.GetDataDir() != "/tmp/feedlens-test" {
		t.Errorf("expected configured dir, got %q", cfg.GetDataDir())
	}
}
