package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/test.db\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Workers)
	}
	if cfg.MinReputation != 0.15 || cfg.MinRelevance != 0.02 {
		t.Errorf("thresholds = %v/%v, want defaults 0.15/0.02", cfg.MinReputation, cfg.MinRelevance)
	}
	if len(cfg.NewsSites) == 0 {
		t.Error("default news sites missing")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/x.db
workers: 8
min_reputation: 0.5
news_sites:
  - example.com
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.MinReputation != 0.5 {
		t.Errorf("MinReputation = %v, want 0.5", cfg.MinReputation)
	}
	if len(cfg.NewsSites) != 1 || cfg.NewsSites[0] != "example.com" {
		t.Errorf("NewsSites = %v", cfg.NewsSites)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "db_path: /tmp/x.db\n")

	t.Setenv("FINDER_DB", "/tmp/override.db")
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("SERPER_API_KEY", "serper-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/override.db" {
		t.Errorf("DBPath = %q, want env override", cfg.DBPath)
	}
	if cfg.NewsAPIKey != "news-key" || cfg.SerperAPIKey != "serper-key" {
		t.Errorf("api keys = %q/%q", cfg.NewsAPIKey, cfg.SerperAPIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"missing db path", func(c *Config) { c.DBPath = "" }, false},
		{"reputation above one", func(c *Config) { c.MinReputation = 1.5 }, false},
		{"negative relevance", func(c *Config) { c.MinRelevance = -0.1 }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, false},
		{"bad schedule", func(c *Config) { c.ScheduleTime = "25:00" }, false},
		{"good schedule", func(c *Config) { c.ScheduleTime = "08:30" }, true},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestApplyThresholdPreset(t *testing.T) {
	cfg := Defaults()

	if err := cfg.ApplyThresholdPreset("strict"); err != nil {
		t.Fatalf("strict preset: %v", err)
	}
	if cfg.MinReputation != 0.5 || cfg.MinRelevance != 0.5 {
		t.Errorf("strict = %v/%v, want 0.5/0.5", cfg.MinReputation, cfg.MinRelevance)
	}

	if err := cfg.ApplyThresholdPreset("all"); err != nil {
		t.Fatalf("all preset: %v", err)
	}
	if cfg.MinReputation != 0 || cfg.MinRelevance != 0 {
		t.Errorf("all = %v/%v, want 0/0", cfg.MinReputation, cfg.MinRelevance)
	}

	if err := cfg.ApplyThresholdPreset("nonsense"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestValidateTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, v := range valid {
		if err := ValidateTime(v); err != nil {
			t.Errorf("ValidateTime(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "ab:cd", "12-30"}
	for _, v := range invalid {
		if err := ValidateTime(v); err == nil {
			t.Errorf("ValidateTime(%q) = nil, want error", v)
		}
	}
}
