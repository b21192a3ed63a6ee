package config

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"reportkit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Results ResultsConfig
	Figure  FigureConfig
	Log     LogConfig
}

// ResultsConfig holds where and how run output is written
type ResultsConfig struct {
	Dir   string `env:"REPORTKIT_RESULTS_DIR" envDefault:"Results"`
	Codec string `env:"REPORTKIT_CODEC" envDefault:"msgpack"`
}

// FigureConfig holds raster sizes in pixels
type FigureConfig struct {
	Width            int `env:"REPORTKIT_FIGURE_WIDTH" envDefault:"1600"`
	PanelHeight      int `env:"REPORTKIT_PANEL_HEIGHT" envDefault:"400"`
	ComparisonWidth  int `env:"REPORTKIT_COMPARISON_WIDTH" envDefault:"800"`
	ComparisonHeight int `env:"REPORTKIT_COMPARISON_HEIGHT" envDefault:"600"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"INFO"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
	File   string `env:"LOG_FILE"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrap(err, "failed to parse environment"))
	}

	config.Results.Codec = strings.ToLower(config.Results.Codec)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Results.Dir) == "" {
		return errors.ConfigInvalid("results directory is required")
	}
	switch config.Results.Codec {
	case "msgpack", "json":
	default:
		return errors.ConfigInvalid("unsupported codec " + config.Results.Codec)
	}
	if config.Figure.Width <= 0 || config.Figure.PanelHeight <= 0 {
		return errors.ConfigInvalid("figure width and panel height must be positive")
	}
	if config.Figure.ComparisonWidth <= 0 || config.Figure.ComparisonHeight <= 0 {
		return errors.ConfigInvalid("comparison figure size must be positive")
	}
	switch config.Log.Format {
	case "console", "json":
	default:
		return errors.ConfigInvalid("unsupported log format " + config.Log.Format)
	}
	return nil
}
