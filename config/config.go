// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the lvtad command: caller
// parameters, output and logging. Values come from code defaults, then an
// optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtad/tad"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config is the in-memory form of an lvtad YAML file.
type Config struct {
	Levels        int     `yaml:"levels" validate:"min=1,max=16"`
	MinSize       int     `yaml:"min_size" validate:"min=1"`
	Eigenvalues   int     `yaml:"eigenvalues" validate:"min=2"`
	WindowSize    int     `yaml:"window_size" validate:"min=0"`
	GapThreshold  float64 `yaml:"gap_threshold" validate:"gte=0,lte=1"`
	Policy        string  `yaml:"policy" validate:"oneof=zscore silhouette"`
	QualityFilter bool    `yaml:"quality_filter"`
	Resolution    int64   `yaml:"resolution" validate:"min=0,max=200000"`
	Workers       int     `yaml:"workers" validate:"min=0"`
	Output        Output  `yaml:"output"`
	Log           Log     `yaml:"log"`
}

// Output selects the result format and destination.
type Output struct {
	Format string `yaml:"format" validate:"oneof=bed bedpe"`
	Path   string `yaml:"path,omitempty"` // empty = stdout
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := tad.DefaultParams("")

	return &Config{
		Levels:       1,
		MinSize:      p.MinSize,
		Eigenvalues:  p.Eigenvalues,
		GapThreshold: p.GapThreshold,
		Policy:       p.Policy.String(),
		Output:       Output{Format: "bed"},
		Log:          Log{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}

	return nil
}

// Validate checks every field against its tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// Params returns the caller parameters for chrom.
func (c *Config) Params(chrom string) (tad.Params, error) {
	policy, err := tad.ParsePolicy(c.Policy)
	if err != nil {
		return tad.Params{}, err
	}

	return tad.Params{
		Chrom:         chrom,
		Policy:        policy,
		MinSize:       c.MinSize,
		Eigenvalues:   c.Eigenvalues,
		WindowSize:    c.WindowSize,
		GapThreshold:  c.GapThreshold,
		QualityFilter: c.QualityFilter,
	}, nil
}

// formatValidationError joins field errors into one ErrInvalid.
func formatValidationError(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, 0, len(fields))
	for _, e := range fields {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	field = strings.ToLower(field)

	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
