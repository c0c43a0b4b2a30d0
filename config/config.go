// Package config loads and validates application configuration from a
// YAML file, a .env file, and environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DBPath    string   `yaml:"db_path"`
	LogLevel  string   `yaml:"log_level"`
	NewsSites []string `yaml:"news_sites"`

	// API credentials, normally supplied through the environment.
	NewsAPIKey   string `yaml:"newsapi_key"`
	SerperAPIKey string `yaml:"serper_api_key"`
	ClearbitKey  string `yaml:"clearbit_key"`

	// Quality thresholds applied to search results. Preset names from
	// Thresholds() can replace both at once.
	MinReputation float64 `yaml:"min_reputation"`
	MinRelevance  float64 `yaml:"min_relevance"`

	Workers         int `yaml:"workers"`
	FetchTimeoutSec int `yaml:"fetch_timeout_secs"`

	// Daily batch schedule, HH:MM in the configured timezone. Empty
	// disables scheduling.
	ScheduleTime string `yaml:"schedule_time"`
	Timezone     string `yaml:"timezone"`
}

// Defaults returns a Config with all default values set. The default
// thresholds are deliberately permissive so early corpora are not
// filtered to nothing.
func Defaults() Config {
	return Config{
		DBPath:   "./journalists.db",
		LogLevel: "info",
		NewsSites: []string{
			"techcrunch.com",
			"wired.com",
			"arstechnica.com",
			"theverge.com",
			"venturebeat.com",
			"zdnet.com",
			"engadget.com",
			"mashable.com",
			"axios.com",
			"actuia.com",
			"larevueia.fr",
			"rtbf.be",
			"ictjournal.ch",
		},
		MinReputation:   0.15,
		MinRelevance:    0.02,
		Workers:         4,
		FetchTimeoutSec: 30,
		Timezone:        "UTC",
	}
}

// Threshold presets for common filtering strictness levels.
var thresholdPresets = map[string][2]float64{
	"strict":    {0.5, 0.5},
	"moderate":  {0.25, 0.15},
	"inclusive": {0.15, 0.02},
	"all":       {0, 0},
}

// ApplyThresholdPreset replaces both quality thresholds with a named
// preset.
func (c *Config) ApplyThresholdPreset(name string) error {
	preset, ok := thresholdPresets[name]
	if !ok {
		return fmt.Errorf("unknown threshold preset %q", name)
	}
	c.MinReputation = preset[0]
	c.MinRelevance = preset[1]
	return nil
}

// Load reads a YAML config file and returns a validated Config. A .env
// file in the working directory is loaded first if present. Environment
// variables FINDER_CONFIG and FINDER_DB override the config path and db
// path; NEWSAPI_KEY, SERPER_API_KEY and CLEARBIT_KEY override the
// corresponding credentials.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	if envPath := os.Getenv("FINDER_CONFIG"); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FINDER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NEWSAPI_KEY"); v != "" {
		cfg.NewsAPIKey = v
	}
	if v := os.Getenv("SERPER_API_KEY"); v != "" {
		cfg.SerperAPIKey = v
	}
	if v := os.Getenv("CLEARBIT_KEY"); v != "" {
		cfg.ClearbitKey = v
	}
}

// Validate checks that values are in range and consistent.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MinReputation < 0 || c.MinReputation > 1 {
		return fmt.Errorf("min_reputation %v out of range [0,1]", c.MinReputation)
	}
	if c.MinRelevance < 0 || c.MinRelevance > 1 {
		return fmt.Errorf("min_relevance %v out of range [0,1]", c.MinRelevance)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.FetchTimeoutSec < 1 {
		return fmt.Errorf("fetch_timeout_secs must be at least 1, got %d", c.FetchTimeoutSec)
	}

	if c.ScheduleTime != "" {
		if err := ValidateTime(c.ScheduleTime); err != nil {
			return err
		}
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	return nil
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// ValidateTime checks that a time string is in valid HH:MM 24-hour format.
func ValidateTime(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("invalid time format %q: must be HH:MM", t)
	}

	if t[0] < '0' || t[0] > '9' || t[1] < '0' || t[1] > '9' ||
		t[3] < '0' || t[3] > '9' || t[4] < '0' || t[4] > '9' {
		return fmt.Errorf("invalid time format %q: must be HH:MM", t)
	}

	hour := (int(t[0]-'0') * 10) + int(t[1]-'0')
	minute := (int(t[3]-'0') * 10) + int(t[4]-'0')

	if hour > 23 {
		return fmt.Errorf("invalid time %q: hour must be 0-23", t)
	}
	if minute > 59 {
		return fmt.Errorf("invalid time %q: minute must be 0-59", t)
	}

	return nil
}
