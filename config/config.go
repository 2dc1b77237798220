package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents a complete forecast scenario: the profiles to simulate,
// the batch shape shared by all of them, and where to put the output.
type Config struct {
	Profiles []ProfileConfig `json:"profiles" yaml:"profiles"`
	Batch    BatchConfig     `json:"batch" yaml:"batch"`
	Output   OutputConfig    `json:"output" yaml:"output"`
}

// ProfileConfig describes one return model. All values are percentages.
type ProfileConfig struct {
	Name         string  `json:"name" yaml:"name"`
	MeanPct      float64 `json:"mean_pct" yaml:"mean_pct"`
	StdDevPct    float64 `json:"std_dev_pct" yaml:"std_dev_pct"`
	InflationPct float64 `json:"inflation_pct" yaml:"inflation_pct"`
}

// BatchConfig contains the batch parameters applied to every profile.
type BatchConfig struct {
	Sims    int     `json:"sims" yaml:"sims"`
	Periods int     `json:"periods" yaml:"periods"`
	Start   float64 `json:"start" yaml:"start"`
}

// OutputConfig contains optional output destinations.
type OutputConfig struct {
	CSVDir string `json:"csv_dir,omitempty" yaml:"csv_dir,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads a scenario from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the scenario to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks the scenario against the same rules the engine enforces,
// so a bad file fails before any simulation starts.
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("at least one profile is required")
	}

	seen := map[string]bool{}
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profiles[%d].name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate profile name: %s", p.Name)
		}
		seen[p.Name] = true
		if p.StdDevPct < 0 {
			return fmt.Errorf("profile %s: std_dev_pct cannot be negative", p.Name)
		}
	}

	if c.Batch.Sims < 1 {
		return fmt.Errorf("batch.sims must be positive")
	}
	if c.Batch.Periods < 1 {
		return fmt.Errorf("batch.periods must be positive")
	}
	if c.Batch.Start <= 0 {
		return fmt.Errorf("batch.start must be positive")
	}
	return nil
}

// Default returns the built-in scenario: an aggressive and a very
// conservative profile, 10000 runs of 20 periods from 100000.
func Default() *Config {
	return &Config{
		Profiles: []ProfileConfig{
			{
				Name:         "aggressive",
				MeanPct:      9.4324,
				StdDevPct:    15.675,
				InflationPct: 3.5,
			},
			{
				Name:         "conservative",
				MeanPct:      6.189,
				StdDevPct:    6.3438,
				InflationPct: 3.5,
			},
		},
		Batch: BatchConfig{
			Sims:    10000,
			Periods: 20,
			Start:   100000,
		},
	}
}
