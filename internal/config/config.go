// Package config loads runtime configuration from .orbitledger.yaml,
// ORBITLEDGER_* environment variables, and CLI flags, with defaults that
// reproduce the tool's fixed baseline filenames.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/tmarsden/orbitledger/internal/reconcile"
)

// Config holds all runtime configuration for an orbitledger run.
type Config struct {
	// Primary input tables.
	TripsFile    string `mapstructure:"trips_file"`
	MissionsFile string `mapstructure:"missions_file"`

	// External reconciliation tables.
	ExternalMissionsFile string `mapstructure:"external_missions_file"`
	ExternalRidesFile    string `mapstructure:"external_rides_file"`

	// ChecklistFile is the flat text name checklist.
	ChecklistFile string `mapstructure:"checklist_file"`

	// Epoch is the cross-check series start, in DD/MM/YYYY form.
	Epoch string `mapstructure:"epoch"`
	// StepDays is the cross-check sampling interval in days.
	StepDays int `mapstructure:"step_days"`

	// LongestTrips is how many trips the longest-trips report shows.
	LongestTrips int `mapstructure:"longest_trips"`

	// TelemetryPath enables the JSONL event stream when non-empty.
	TelemetryPath string `mapstructure:"telemetry_path"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("trips_file", "astronauts.csv")
	viper.SetDefault("missions_file", "missions.csv")
	viper.SetDefault("external_missions_file", "ext_missions.tsv")
	viper.SetDefault("external_rides_file", "ext_rides.tsv")
	viper.SetDefault("checklist_file", "checklist.txt")
	viper.SetDefault("epoch", "01/01/1961")
	viper.SetDefault("step_days", 30)
	viper.SetDefault("longest_trips", 10)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// EpochTime resolves the configured epoch, falling back to the fixed
// default when the value does not parse.
func (c Config) EpochTime() time.Time {
	if t, err := time.Parse("02/01/2006", c.Epoch); err == nil {
		return t
	}
	return reconcile.DefaultEpoch
}

// Step resolves the configured sampling interval.
func (c Config) Step() time.Duration {
	if c.StepDays <= 0 {
		return reconcile.DefaultStep
	}
	return time.Duration(c.StepDays) * 24 * time.Hour
}
