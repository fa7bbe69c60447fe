package datavalidator

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/datavalidator/pkg/config"
	"github.com/dmitrymomot/datavalidator/pkg/environment"
	"github.com/dmitrymomot/datavalidator/pkg/logger"
)

// ServiceName tags log records written by loggers built from Config.
const ServiceName = "datavalidator"

// Config is the environment configuration of a Validator.
type Config struct {
	// CatalogPath points to a JSON or YAML message catalog.
	// Empty selects the bundled catalog.
	CatalogPath string `env:"DATAVALIDATOR_CATALOG"`
	SingleFail  bool   `env:"DATAVALIDATOR_SINGLE_FAIL" envDefault:"false"`
	LogLevel    string `env:"DATAVALIDATOR_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"DATAVALIDATOR_LOG_FORMAT" envDefault:"text"`
	Env         string `env:"APP_ENV" envDefault:"development"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds a logger writing to w according to the configured
// environment, level and format.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(environment.Parse(c.Env), ServiceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}

// NewFromConfig creates a validator from cfg. Logs are written to w.
// Options are applied after the configuration and override it.
func NewFromConfig(cfg Config, w io.Writer, opts ...Option) (*Validator, error) {
	log, err := cfg.Logger(w)
	if err != nil {
		return nil, err
	}

	base := []Option{WithLogger(log)}
	if cfg.CatalogPath != "" {
		base = append(base, WithCatalogFile(cfg.CatalogPath))
	}
	return New(append(base, opts...)...), nil
}
