package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds the tunable parameters of the corridor generation pipeline
type Options struct {
	// Douglas-Peucker tolerance in decimal degrees applied to each
	// consolidated path before buffering (~5m at default)
	SimplifyTolerance float64 `yaml:"simplify_tolerance"`

	// Maximum endpoint gap in meters for two route segments to be
	// consolidated into one continuous path
	ConnectionThresholdMeters float64 `yaml:"connection_threshold_meters"`

	// Cap on the miter extension factor at sharp turns
	MiterLimit float64 `yaml:"miter_limit"`
}

// DefaultOptions returns the default pipeline options
func DefaultOptions() Options {
	return Options{
		SimplifyTolerance:         0.00005,
		ConnectionThresholdMeters: 1.0,
		MiterLimit:                3.0,
	}
}

// Load reads options from a YAML file, applying defaults for absent fields
func Load(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file: %w", err)
	}

	return opts, nil
}
