// Package config loads tracker configuration from HCL. Thresholds that are
// heuristics rather than documented platform rules (the tournament cash
// line above all) live here so deployments can tune them.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tracker configuration.
type Config struct {
	Parser     ParserSettings    `hcl:"parser,block"`
	Thresholds ThresholdSettings `hcl:"thresholds,block"`
	Logging    LoggingSettings   `hcl:"logging,block"`
}

// ParserSettings tunes batch parsing.
type ParserSettings struct {
	// Workers caps the goroutines used for parallel batch parsing.
	Workers int `hcl:"workers,optional"`
	// HeroName, when set, discards hands dealt to any other account. Useful
	// when exports from several accounts land in one directory.
	HeroName string `hcl:"hero_name,optional"`
}

// ThresholdSettings tunes the statistics heuristics.
type ThresholdSettings struct {
	// CashFraction approximates the paid share of a tournament field.
	CashFraction float64 `hcl:"cash_fraction,optional"`
	// FinalTableSize is the seat count of a final table.
	FinalTableSize int `hcl:"final_table_size,optional"`
	// MinPositionSample is the qualifying-hand floor for positional stats.
	MinPositionSample int `hcl:"min_position_sample,optional"`
	// ShortStackBB marks ICM pressure spots.
	ShortStackBB float64 `hcl:"short_stack_bb,optional"`
}

// LoggingSettings configures the CLI logger.
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Parser: ParserSettings{Workers: 4},
		Thresholds: ThresholdSettings{
			CashFraction:      0.15,
			FinalTableSize:    9,
			MinPositionSample: 5,
			ShortStackBB:      10,
		},
		Logging: LoggingSettings{Level: "info"},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist and filling defaults for omitted values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Parser.Workers == 0 {
		cfg.Parser.Workers = defaults.Parser.Workers
	}
	if cfg.Thresholds.CashFraction == 0 {
		cfg.Thresholds.CashFraction = defaults.Thresholds.CashFraction
	}
	if cfg.Thresholds.FinalTableSize == 0 {
		cfg.Thresholds.FinalTableSize = defaults.Thresholds.FinalTableSize
	}
	if cfg.Thresholds.MinPositionSample == 0 {
		cfg.Thresholds.MinPositionSample = defaults.Thresholds.MinPositionSample
	}
	if cfg.Thresholds.ShortStackBB == 0 {
		cfg.Thresholds.ShortStackBB = defaults.Thresholds.ShortStackBB
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects thresholds outside their meaningful ranges.
func (c *Config) Validate() error {
	if c.Parser.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", c.Parser.Workers)
	}
	if c.Thresholds.CashFraction <= 0 || c.Thresholds.CashFraction > 1 {
		return fmt.Errorf("cash_fraction must be in (0,1], got %g", c.Thresholds.CashFraction)
	}
	if c.Thresholds.FinalTableSize < 2 {
		return fmt.Errorf("invalid final_table_size: %d", c.Thresholds.FinalTableSize)
	}
	if c.Thresholds.MinPositionSample < 1 {
		return fmt.Errorf("invalid min_position_sample: %d", c.Thresholds.MinPositionSample)
	}
	return nil
}
