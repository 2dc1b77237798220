package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	require.Len(t, cfg.Profiles, 2)

	assert.Equal(t, "aggressive", cfg.Profiles[0].Name)
	assert.InDelta(t, 9.4324, cfg.Profiles[0].MeanPct, 0.0001)
	assert.InDelta(t, 15.675, cfg.Profiles[0].StdDevPct, 0.0001)

	assert.Equal(t, "conservative", cfg.Profiles[1].Name)
	assert.InDelta(t, 6.189, cfg.Profiles[1].MeanPct, 0.0001)
	assert.InDelta(t, 6.3438, cfg.Profiles[1].StdDevPct, 0.0001)

	assert.Equal(t, 10000, cfg.Batch.Sims)
	assert.Equal(t, 20, cfg.Batch.Periods)
	assert.Equal(t, 100000.0, cfg.Batch.Start)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return Default() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "no profiles",
			mutate:  func(c *Config) { c.Profiles = nil },
			wantErr: "at least one profile is required",
		},
		{
			name:    "unnamed profile",
			mutate:  func(c *Config) { c.Profiles[0].Name = "" },
			wantErr: "profiles[0].name is required",
		},
		{
			name:    "duplicate profile names",
			mutate:  func(c *Config) { c.Profiles[1].Name = c.Profiles[0].Name },
			wantErr: "duplicate profile name",
		},
		{
			name:    "negative std dev",
			mutate:  func(c *Config) { c.Profiles[0].StdDevPct = -1 },
			wantErr: "std_dev_pct cannot be negative",
		},
		{
			name:    "zero sims",
			mutate:  func(c *Config) { c.Batch.Sims = 0 },
			wantErr: "batch.sims must be positive",
		},
		{
			name:    "zero periods",
			mutate:  func(c *Config) { c.Batch.Periods = 0 },
			wantErr: "batch.periods must be positive",
		},
		{
			name:    "zero start",
			mutate:  func(c *Config) { c.Batch.Start = 0 },
			wantErr: "batch.start must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	data := `
profiles:
  - name: retirement
    mean_pct: 7.0
    std_dev_pct: 12.0
    inflation_pct: 2.5
batch:
  sims: 5000
  periods: 30
  start: 250000
output:
  db_path: runs.sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, "retirement", cfg.Profiles[0].Name)
	assert.InDelta(t, 7.0, cfg.Profiles[0].MeanPct, 0.0001)
	assert.Equal(t, 5000, cfg.Batch.Sims)
	assert.Equal(t, 30, cfg.Batch.Periods)
	assert.Equal(t, 250000.0, cfg.Batch.Start)
	assert.Equal(t, "runs.sqlite", cfg.Output.DBPath)
}

func TestLoadFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")

	data := `{
  "profiles": [
    {"name": "steady", "mean_pct": 5.0, "std_dev_pct": 8.0, "inflation_pct": 3.0}
  ],
  "batch": {"sims": 1000, "periods": 10, "start": 50000}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, cfg.Profiles, 1)
	assert.Equal(t, "steady", cfg.Profiles[0].Name)
	assert.Equal(t, 1000, cfg.Batch.Sims)
}

func TestLoadFromFileInvalid(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "nope.yaml")
	_, err := LoadFromFile(missing)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("{{{not a config"), 0644))
	_, err = LoadFromFile(garbage)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("profiles: []\nbatch: {sims: 1, periods: 1, start: 1}\n"), 0644))
	_, err = LoadFromFile(invalid)
	assert.ErrorContains(t, err, "at least one profile")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"scenario.yaml", "scenario.json"} {
		path := filepath.Join(dir, name)

		cfg := Default()
		cfg.Output.CSVDir = "./trajectories"
		require.NoError(t, cfg.SaveToFile(path))

		got, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, got, name)
	}
}
