package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fraudmatrix/internal/models"
	"fraudmatrix/internal/validation"
)

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	Matrix MatrixConfig `yaml:"matrix"`
}

// MatrixConfig controls which axis values are classified and which scenario
// fields are shown on detail cards.
type MatrixConfig struct {
	BusinessValues []string `yaml:"business_values"` // Iterated rows, in order
	Feasibilities  []string `yaml:"feasibilities"`   // Iterated columns, in order
	DetailFields   []string `yaml:"detail_fields"`   // Columns listed on scenario cards
}

// DefaultDetailFields is the order of descriptive columns on a scenario card.
var DefaultDetailFields = []string{
	models.ColObjective,
	models.ColMechanic,
	models.ColLoopholes,
	models.ColDetectionRule,
	models.ColMustHaveData,
	models.ColDataFields,
}

// DefaultMatrixConfig returns the built-in domains. Low business value is
// deliberately absent from the iterated rows.
func DefaultMatrixConfig() MatrixConfig {
	return MatrixConfig{
		BusinessValues: []string{models.LevelHigh, models.LevelMedium},
		Feasibilities:  []string{models.LevelHigh, models.LevelMedium, models.LevelLow},
		DetailFields:   append([]string(nil), DefaultDetailFields...),
	}
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration from path.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Matrix.validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix config in %s: %w", path, err)
	}

	return &cfg, nil
}

// validate rejects axis values that could not round-trip through a
// "BV-Feas" quadrant key.
func (m MatrixConfig) validate() error {
	for _, list := range [][]string{m.BusinessValues, m.Feasibilities} {
		for _, v := range list {
			if v == "" {
				return errors.New("axis values must not be empty")
			}
			if !validation.LevelPattern.MatchString(v) {
				return fmt.Errorf("axis value %q may only contain letters, digits, spaces and '_'", v)
			}
		}
	}
	return nil
}

// Apply overlays non-empty YAML settings onto the runtime config.
func (c *YAMLConfig) Apply(cfg *Config) {
	if c == nil {
		return
	}
	if len(c.Matrix.BusinessValues) > 0 {
		cfg.Matrix.BusinessValues = c.Matrix.BusinessValues
	}
	if len(c.Matrix.Feasibilities) > 0 {
		cfg.Matrix.Feasibilities = c.Matrix.Feasibilities
	}
	if len(c.Matrix.DetailFields) > 0 {
		cfg.Matrix.DetailFields = c.Matrix.DetailFields
	}
}
