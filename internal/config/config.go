//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for warehousegen.
// Configuration is loaded from config files and CLI flags; CLI flags take
// precedence over config file values.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the layout used for all date-valued configuration.
const DateFormat = "2006-01-02"

// Config holds all configuration for warehousegen.
type Config struct {
	// Connection is the destination store connection string.
	Connection string `mapstructure:"connection"`

	// Dataset is the destination schema (dataset) that holds all
	// generated tables.
	Dataset string `mapstructure:"dataset"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds settings shared by both run modes.
	Generate GenerateConfig `mapstructure:"generate"`

	// Seed holds configuration for the initial historical backfill.
	Seed SeedConfig `mapstructure:"seed"`

	// Append holds configuration for incremental runs.
	Append AppendConfig `mapstructure:"append"`
}

// GenerateConfig holds settings common to dimension and fact generation.
type GenerateConfig struct {
	// FoundingDate is the earliest date any dimension row may be valid
	// from. No employee is hired and no product is created before it.
	FoundingDate string `mapstructure:"founding_date"`

	// AvailabilityCutoff bounds the historical fallback window: when no
	// dimension rows are eligible anywhere in a requested fact window,
	// all rows are treated as available for dates at or before this date.
	AvailabilityCutoff string `mapstructure:"availability_cutoff"`

	// SalesTolerance is the accepted relative deviation between the
	// requested sales target and the generated total (0.15 = ±15%).
	SalesTolerance float64 `mapstructure:"sales_tolerance"`

	// MinTransactionValue and MaxTransactionValue bound the per-sale
	// amount sampled while distributing the target.
	MinTransactionValue float64 `mapstructure:"min_transaction_value"`
	MaxTransactionValue float64 `mapstructure:"max_transaction_value"`

	// Initial dimension row counts.
	Products        int `mapstructure:"products"`
	ActiveEmployees int `mapstructure:"active_employees"`
	TotalEmployees  int `mapstructure:"total_employees"`
	Retailers       int `mapstructure:"retailers"`
	Campaigns       int `mapstructure:"campaigns"`

	// StageBudget is the wall-clock budget in minutes for a run. Once
	// exceeded, no new generator stage is started (0 = unlimited).
	StageBudget int `mapstructure:"stage_budget"`

	// KeyCeiling is the largest surrogate key the destination store can
	// represent. Allocated keys never exceed it.
	KeyCeiling int64 `mapstructure:"key_ceiling"`
}

// SeedConfig holds configuration for the initial historical backfill.
type SeedConfig struct {
	// SalesTarget is the total currency amount to distribute across the
	// historical window.
	SalesTarget float64 `mapstructure:"sales_target"`

	// StartDate is the first day of the historical window. The window
	// ends yesterday.
	StartDate string `mapstructure:"start_date"`
}

// AppendConfig holds configuration for incremental runs.
type AppendConfig struct {
	// SalesTarget is the currency amount to distribute across the
	// incremental day.
	SalesTarget float64 `mapstructure:"sales_target"`

	// NewProductsMax and NewHiresMax bound how many new dimension rows
	// an incremental run may add (a random count in [1, max] and
	// [2, max] respectively; 0 disables).
	NewProductsMax int `mapstructure:"new_products_max"`
	NewHiresMax    int `mapstructure:"new_hires_max"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dataset:  "fmcg_analytics",
		LogLevel: "info",
		Generate: GenerateConfig{
			FoundingDate:        "2015-01-01",
			AvailabilityCutoff:  "2025-01-01",
			SalesTolerance:      0.15,
			MinTransactionValue: 800,
			MaxTransactionValue: 2000,
			Products:            150,
			ActiveEmployees:     250,
			TotalEmployees:      900,
			Retailers:           500,
			Campaigns:           50,
			StageBudget:         0,
			KeyCeiling:          math.MaxInt64,
		},
		Seed: SeedConfig{
			SalesTarget: 8_000_000_000,
			StartDate:   "2015-01-01",
		},
		Append: AppendConfig{
			SalesTarget:    2_000_000,
			NewProductsMax: 5,
			NewHiresMax:    12,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./warehousegen.yaml
// 3. ~/.config/warehousegen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("warehousegen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "warehousegen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if _, err := c.FoundingDate(); err != nil {
		return err
	}
	if _, err := c.AvailabilityCutoff(); err != nil {
		return err
	}
	if c.Generate.SalesTolerance < 0 || c.Generate.SalesTolerance > 1 {
		return fmt.Errorf("sales_tolerance must be between 0 and 1")
	}
	if c.Generate.MinTransactionValue <= 0 ||
		c.Generate.MaxTransactionValue < c.Generate.MinTransactionValue {
		return fmt.Errorf("transaction value bounds must be positive and ordered")
	}
	if c.Generate.KeyCeiling < 1 {
		return fmt.Errorf("key_ceiling must be positive")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Seed.SalesTarget <= 0 {
		return fmt.Errorf("seed sales_target must be positive")
	}
	if _, err := parseDate("seed start_date", c.Seed.StartDate); err != nil {
		return err
	}
	return nil
}

// ValidateAppend checks configuration required for the append command.
func (c *Config) ValidateAppend() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Append.SalesTarget <= 0 {
		return fmt.Errorf("append sales_target must be positive")
	}
	return nil
}

// FoundingDate returns the parsed founding date.
func (c *Config) FoundingDate() (time.Time, error) {
	return parseDate("founding_date", c.Generate.FoundingDate)
}

// AvailabilityCutoff returns the parsed availability fallback cutoff.
func (c *Config) AvailabilityCutoff() (time.Time, error) {
	return parseDate("availability_cutoff", c.Generate.AvailabilityCutoff)
}

// SeedStartDate returns the parsed start of the historical window.
func (c *Config) SeedStartDate() (time.Time, error) {
	return parseDate("seed start_date", c.Seed.StartDate)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return t, nil
}
